package cmd

import (
	"strings"
	"time"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/config"
	"socialcal/forms"
	"socialcal/fs"
	"socialcal/term"
	"socialcal/types"

	"github.com/spf13/cobra"
)

var cfg = &config.Config{
	ApiBaseUrl:     config.DefaultApiBaseUrl,
	WebUrl:         config.DefaultWebUrl,
	RequestTimeout: config.DefaultRequestTimeout,
	RedirectDelay:  config.DefaultRedirectDelay,
}

var apiHostFlag string
var noPersist bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `socialcal [command] [flags]`,
	Short: "socialcal: schedule social content and manage your inbox",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initClient()
	},
	Run: func(cmd *cobra.Command, args []string) {
		term.PrintCustomHelp()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&apiHostFlag, "api", "", "Backend base url (overrides SOCIALCAL_API_BASE_URL)")
	RootCmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "Keep the session in memory for this run only")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(c *config.Config) {
	cfg = c

	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

func initClient() {
	host := cfg.ApiBaseUrl
	if apiHostFlag != "" {
		host = strings.TrimRight(apiHostFlag, "/")
	}

	var store types.SessionStore
	if noPersist {
		store = auth.NewMemoryStore(nil)
	} else {
		store = auth.NewFileStore(fs.HomeAuthPath)
	}

	api.Client = api.New(host, store,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithDebug(cfg.Debug),
		api.WithOnUnauthorized(auth.OnUnauthorized),
	)

	// inter-package dependency injections to avoid circular imports
	auth.SetApiClient(api.Client)
	auth.SetApiHost(host)
	auth.SetStore(store)
	auth.SetFormOptions(forms.Options{
		Clock:         time.Now,
		RedirectDelay: cfg.RedirectDelay,
	})
}
