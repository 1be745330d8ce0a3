package auth

import (
	"fmt"
	"time"

	"socialcal/forms"
	"socialcal/term"

	"github.com/fatih/color"
)

const (
	SignInOption = "Sign in"
	SignUpOption = "Create an account"
)

func promptInitialAuth() error {
	selected, err := term.SelectFromList("👋 Hey there!\nYou're not signed in on this computer.\nWhat would you like to do?", []string{SignInOption, SignUpOption}, nil)
	if err != nil {
		return fmt.Errorf("error selecting auth option: %v", err)
	}

	switch selected {
	case SignInOption:
		_, err = SignIn("")
	case SignUpOption:
		_, err = SignUp()
	}

	return err
}

// SignIn prompts for credentials and submits the login form until it
// succeeds or the user gives up. It returns the route to show next.
func SignIn(email string) (forms.Route, error) {
	setInAuthFlow(true)
	defer setInAuthFlow(false)

	form := forms.NewLogin(apiClient, store, formOpts)

	for {
		var err error
		if email == "" {
			email, err = term.GetRequiredUserStringInput("Your email:")
			if err != nil {
				return "", fmt.Errorf("error prompting email: %v", err)
			}
		}

		password, err := term.GetUserPasswordInput("Your password:")
		if err != nil {
			return "", fmt.Errorf("error prompting password: %v", err)
		}

		form.Email = email
		form.Password = password

		term.StartSpinner(forms.LoginSubmittingMsg)
		err = form.Submit()
		term.StopSpinner()

		if err == nil {
			break
		}

		term.OutputSimpleError("%s", form.Status())

		retry, err := term.ConfirmYesNo("Try again?")
		if err != nil {
			return "", fmt.Errorf("error getting confirmation: %v", err)
		}
		if !retry {
			return "", fmt.Errorf("%s", form.Status())
		}
		email = ""
	}

	fmt.Println("✅ " + color.New(color.Bold, term.ColorHiGreen).Sprint(form.Status()))

	session, err := store.Load()
	if err != nil {
		return "", fmt.Errorf("error loading session: %v", err)
	}
	if session == nil {
		return "", fmt.Errorf("error loading session: not saved")
	}

	if apiHost != "" {
		session.Host = apiHost
		if err := store.Save(session); err != nil {
			return "", fmt.Errorf("error saving session: %v", err)
		}
	}
	setCurrent(session)

	route, _ := form.WaitForRedirect(time.Sleep)

	fmt.Printf("Signed in as %s\n\n", color.New(color.Bold, term.ColorHiCyan).Sprint(session.DisplayName()))

	return route, nil
}

// SignUp creates an account, then continues to sign-in with the new email.
func SignUp() (forms.Route, error) {
	setInAuthFlow(true)
	defer setInAuthFlow(false)

	form := forms.NewSignUp(apiClient, formOpts)

	for {
		email, err := term.GetRequiredUserStringInput("Your email:")
		if err != nil {
			return "", fmt.Errorf("error prompting email: %v", err)
		}

		password, err := term.GetUserPasswordInput("Choose a password (at least 8 characters):")
		if err != nil {
			return "", fmt.Errorf("error prompting password: %v", err)
		}

		firstName, err := term.GetRequiredUserStringInput("First name:")
		if err != nil {
			return "", fmt.Errorf("error prompting first name: %v", err)
		}

		lastName, err := term.GetRequiredUserStringInput("Last name:")
		if err != nil {
			return "", fmt.Errorf("error prompting last name: %v", err)
		}

		form.Email = email
		form.Password = password
		form.FirstName = firstName
		form.LastName = lastName

		term.StartSpinner(forms.SignUpSubmittingMsg)
		err = form.Submit()
		term.StopSpinner()

		if err == nil {
			break
		}

		term.OutputSimpleError("%s", form.Status())

		retry, err := term.ConfirmYesNo("Try again?")
		if err != nil {
			return "", fmt.Errorf("error getting confirmation: %v", err)
		}
		if !retry {
			return "", fmt.Errorf("%s", form.Status())
		}
	}

	fmt.Println("✅ " + color.New(color.Bold, term.ColorHiGreen).Sprint(form.Status()))

	route, _ := form.WaitForRedirect(time.Sleep)

	if route == forms.RouteSignIn {
		fmt.Println()
		return SignIn(form.Email)
	}
	return route, nil
}
