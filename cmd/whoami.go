package cmd

import (
	"fmt"
	"time"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/format"
	"socialcal/shared"
	"socialcal/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed in account",
	Args:  cobra.NoArgs,
	Run:   whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()
	session := auth.CurrentSession()

	term.StartSpinner("")
	user, apiErr := api.Client.GetMe()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	name := shared.StrVal(user.FullName)
	if name == "" {
		name = session.DisplayName()
	}

	fmt.Printf("You are signed in as %s <%s>\n", color.New(color.Bold, term.ColorHiGreen).Sprint(name), user.Email)
	if !user.CreatedAt.IsZero() {
		fmt.Printf("Member since %s\n", format.DateTime(user.CreatedAt.Time))
	}
	if session.Host != "" {
		fmt.Printf("Backend %s\n", session.Host)
	}
	if exp, ok := auth.TokenExpiry(session.Token); ok {
		fmt.Printf("Session expires %s\n", format.When(exp, time.Now()))
	}
}
