package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/format"
	"socialcal/shared"
	"socialcal/term"

	"github.com/fatih/color"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
)

var disconnectYes bool

var accountsCmd = &cobra.Command{
	Use:     "accounts",
	Aliases: []string{"acc"},
	Short:   "List connected social accounts",
	Args:    cobra.NoArgs,
	Run:     listAccounts,
}

var listAccountsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List connected social accounts",
	Args:    cobra.NoArgs,
	Run:     listAccounts,
}

var connectAccountCmd = &cobra.Command{
	Use:   "connect [platform] [username]",
	Short: "Connect a social account",
	Args:  cobra.MaximumNArgs(2),
	Run:   connectAccount,
}

var disconnectAccountCmd = &cobra.Command{
	Use:     "disconnect <id|username>",
	Aliases: []string{"rm"},
	Short:   "Disconnect a social account",
	Args:    cobra.ExactArgs(1),
	Run:     disconnectAccount,
}

func init() {
	RootCmd.AddCommand(accountsCmd)
	accountsCmd.AddCommand(listAccountsCmd)
	accountsCmd.AddCommand(connectAccountCmd)
	accountsCmd.AddCommand(disconnectAccountCmd)

	disconnectAccountCmd.Flags().BoolVarP(&disconnectYes, "yes", "y", false, "Skip confirmation")
}

func listAccounts(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	accounts, apiErr := api.Client.ListAccounts()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(accounts) == 0 {
		fmt.Println("🤷‍♂️ No connected accounts")
		fmt.Println()
		term.PrintCmds("", "accounts connect")
		return
	}

	table := newTable("ID", "Platform", "Username", "Connected", "Added")
	for _, acc := range accounts {
		connected := color.New(term.ColorHiGreen).Sprint("✓")
		if !acc.IsConnected {
			connected = color.New(term.ColorHiRed).Sprint("✗")
		}
		table.Append([]string{
			strconv.FormatInt(acc.AccountId, 10),
			format.PlatformLabel(acc.Platform),
			"@" + acc.Username,
			connected,
			format.Time(acc.CreatedAt.Time),
		})
	}
	table.Render()

	fmt.Println()
	term.PrintCmds("", "accounts connect", "accounts disconnect", "analytics")
}

func connectAccount(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	var platformArg, username string
	if len(args) > 0 {
		platformArg = args[0]
	}
	if len(args) > 1 {
		username = args[1]
	}

	if platformArg == "" {
		selected, err := term.SelectFromList("Platform", shared.AllPlatforms, format.PlatformLabel)
		if err != nil {
			term.OutputErrorAndExit("Error selecting platform: %v", err)
		}
		platformArg = string(selected)
	}

	platform, err := parsePlatform(platformArg)
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	if username == "" {
		username, err = term.GetRequiredUserStringInput("Username:")
		if err != nil {
			term.OutputErrorAndExit("Error reading username: %v", err)
		}
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")

	req := shared.ConnectAccountRequest{Platform: platform, Username: username}
	if err := shared.ValidateStruct(req); err != nil {
		term.OutputErrorAndExit("Invalid account: %v", err)
	}

	term.StartSpinner("Connecting...")
	acc, apiErr := api.Client.ConnectAccount(req)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Connected %s %s\n", format.PlatformLabel(acc.Platform), color.New(color.Bold).Sprint("@"+acc.Username))
}

func disconnectAccount(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	accounts, apiErr := api.Client.ListAccounts()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	acc, err := matchAccount(args[0], accounts)
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	if !disconnectYes {
		ok, err := term.ConfirmYesNo("Disconnect %s @%s?", format.PlatformLabel(acc.Platform), acc.Username)
		if err != nil {
			term.OutputErrorAndExit("Error getting confirmation: %v", err)
		}
		if !ok {
			fmt.Println("🤷‍♂️ Nothing disconnected")
			return
		}
	}

	term.StartSpinner("Disconnecting...")
	apiErr = api.Client.DisconnectAccount(acc.AccountId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Disconnected %s @%s\n", format.PlatformLabel(acc.Platform), acc.Username)
}

// matchAccount resolves an account id or a username. An exact username wins;
// otherwise the closest fuzzy match is used when it is unambiguous.
func matchAccount(query string, accounts []*shared.SocialAccount) (*shared.SocialAccount, error) {
	query = strings.TrimPrefix(strings.TrimSpace(query), "@")

	if id, err := strconv.ParseInt(strings.TrimPrefix(query, "#"), 10, 64); err == nil {
		for _, acc := range accounts {
			if acc.AccountId == id {
				return acc, nil
			}
		}
	}

	usernames := make([]string, len(accounts))
	for i, acc := range accounts {
		if strings.EqualFold(acc.Username, query) {
			return acc, nil
		}
		usernames[i] = acc.Username
	}

	ranks := fuzzy.RankFindFold(query, usernames)
	if len(ranks) == 0 {
		return nil, fmt.Errorf("no account matches %q", query)
	}
	sort.Sort(ranks)

	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		var names []string
		for _, r := range ranks {
			names = append(names, "@"+r.Target)
		}
		return nil, fmt.Errorf("%q matches more than one account: %s", query, strings.Join(names, ", "))
	}

	return accounts[ranks[0].OriginalIndex], nil
}
