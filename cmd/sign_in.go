package cmd

import (
	"fmt"

	"socialcal/auth"
	"socialcal/forms"
	"socialcal/term"

	"github.com/spf13/cobra"
)

var signInEmail string

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to your account",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

var signUpCmd = &cobra.Command{
	Use:   "sign-up",
	Short: "Create a new account",
	Args:  cobra.NoArgs,
	Run:   signUp,
}

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out and forget the saved session",
	Args:  cobra.NoArgs,
	Run:   signOut,
}

func init() {
	RootCmd.AddCommand(signInCmd)
	RootCmd.AddCommand(signUpCmd)
	RootCmd.AddCommand(signOutCmd)

	signInCmd.Flags().StringVar(&signInEmail, "email", "", "Account email")
}

func signIn(cmd *cobra.Command, args []string) {
	route, err := auth.SignIn(signInEmail)
	if err != nil {
		term.OutputErrorAndExit("Error signing in: %v", err)
	}

	followRoute(route)
}

func signUp(cmd *cobra.Command, args []string) {
	route, err := auth.SignUp()
	if err != nil {
		term.OutputErrorAndExit("Error creating account: %v", err)
	}

	followRoute(route)
}

func signOut(cmd *cobra.Command, args []string) {
	if err := auth.SignOut(); err != nil {
		term.OutputErrorAndExit("Error signing out: %v", err)
	}

	fmt.Println("👋 Signed out")
	fmt.Println()
	term.PrintCmds("", "sign-in")
}

// followRoute shows the screen a finished form redirected to.
func followRoute(route forms.Route) {
	switch route {
	case forms.RouteDashboard:
		showDashboard()
	case forms.RouteSignIn:
		term.PrintCmds("", "sign-in")
	}
}
