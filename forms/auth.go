package forms

import (
	"fmt"
	"log"
	"strings"
	"time"

	"socialcal/shared"
	"socialcal/types"
)

const (
	LoginSubmittingMsg = "Signing in..."
	LoginSuccessMsg    = "Logged in successfully."
	LoginFailedMsg     = "Login failed"

	SignUpSubmittingMsg = "Creating account..."
	SignUpSuccessMsg    = "Account created. You can now log in."
	SignUpFailedMsg     = "Registration failed"
)

type Options struct {
	Clock         Clock
	RedirectDelay time.Duration
}

type Login struct {
	*Submission

	Email    string
	Password string

	client types.ApiClient
	store  types.SessionStore
}

func NewLogin(client types.ApiClient, store types.SessionStore, opts Options) *Login {
	return &Login{
		Submission: NewSubmission("sign-in", opts.Clock, opts.RedirectDelay),
		client:     client,
		store:      store,
	}
}

// Submit sends the credentials once. The returned error is also reflected
// in Status().
func (f *Login) Submit() error {
	req := shared.LoginRequest{
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
	}

	if err := shared.ValidateStruct(req); err != nil {
		f.setStatus(err.Error())
		return err
	}

	if err := f.begin(LoginSubmittingMsg); err != nil {
		return err
	}

	res, apiErr := f.client.Login(req)
	if apiErr != nil {
		msg := failureMessage(apiErr, LoginFailedMsg)
		f.fail(msg)
		return fmt.Errorf("%s", msg)
	}

	userName := res.UserName
	if userName == "" {
		userName = req.Email
	}

	err := f.store.Save(&shared.Session{
		Token:    res.AccessToken,
		UserName: userName,
		Email:    req.Email,
	})
	if err != nil {
		log.Printf("error saving session: %v\n", err)
		f.fail(LoginFailedMsg)
		return fmt.Errorf("error saving session: %v", err)
	}

	f.succeed(LoginSuccessMsg, RouteDashboard)
	return nil
}

type SignUp struct {
	*Submission

	Email     string
	Password  string
	FirstName string
	LastName  string

	client types.ApiClient
}

func NewSignUp(client types.ApiClient, opts Options) *SignUp {
	return &SignUp{
		Submission: NewSubmission("sign-up", opts.Clock, opts.RedirectDelay),
		client:     client,
	}
}

func (f *SignUp) Submit() error {
	req := shared.RegisterRequest{
		Email:     strings.TrimSpace(f.Email),
		Password:  f.Password,
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
	}

	if err := shared.ValidateStruct(req); err != nil {
		f.setStatus(err.Error())
		return err
	}

	if err := f.begin(SignUpSubmittingMsg); err != nil {
		return err
	}

	_, apiErr := f.client.Register(req)
	if apiErr != nil {
		msg := failureMessage(apiErr, SignUpFailedMsg)
		f.fail(msg)
		return fmt.Errorf("%s", msg)
	}

	f.succeed(SignUpSuccessMsg, RouteSignIn)
	return nil
}

func failureMessage(apiErr *shared.ApiError, fallback string) string {
	if apiErr.Type == shared.ApiErrorTypeNetwork {
		return shared.NetworkErrorMsg
	}
	// no backend detail
	if apiErr.Msg == "" || apiErr.Msg == shared.RequestFailedMsg || apiErr.Msg == shared.UnauthorizedMsg {
		return fallback
	}
	return apiErr.Msg
}
