package cmd

import (
	"fmt"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/term"

	"github.com/spf13/cobra"
)

var demoYes bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo accounts, messages and analytics",
	Args:  cobra.NoArgs,
	Run:   demo,
}

func init() {
	RootCmd.AddCommand(demoCmd)

	demoCmd.Flags().BoolVarP(&demoYes, "yes", "y", false, "Skip confirmation")
}

func demo(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	if !demoYes {
		ok, err := term.ConfirmYesNo("Add demo data to %s's account?", auth.CurrentSession().DisplayName())
		if err != nil {
			term.OutputErrorAndExit("Error getting confirmation: %v", err)
		}
		if !ok {
			return
		}
	}

	term.StartSpinner("Generating demo data...")
	res, apiErr := api.Client.GenerateDemoData()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	msg := res.Message
	if msg == "" {
		msg = "Demo data generated"
	}
	fmt.Println("✅ " + msg)
	fmt.Println()
	term.PrintCmds("", "dashboard", "accounts", "inbox", "calendar")
}
