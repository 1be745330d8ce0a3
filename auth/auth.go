package auth

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"socialcal/forms"
	"socialcal/shared"
	"socialcal/term"
	"socialcal/types"
)

// mu guards current, inAuthFlow and quiet; the unauthorized hook runs on
// request goroutines.
var mu sync.Mutex

// current is the session resolved for this invocation.
var current *shared.Session

var apiClient types.ApiClient
var apiHost string
var store types.SessionStore
var formOpts forms.Options

// set while a sign-in or sign-up form is on screen
var inAuthFlow bool

// set while a full-screen UI owns the terminal
var quiet bool

func SetApiClient(client types.ApiClient) {
	apiClient = client
}

func SetApiHost(host string) {
	apiHost = host
}

func SetStore(s types.SessionStore) {
	store = s
}

func SetFormOptions(opts forms.Options) {
	formOpts = opts
}

// MustResolveAuth loads the saved session, sending the user through
// sign-in when there is none.
func MustResolveAuth() {
	if apiClient == nil || store == nil {
		term.OutputErrorAndExit("error resolving auth: api client not set")
	}

	session, err := store.Load()
	if err != nil {
		term.OutputErrorAndExit("error loading session: %v", err)
	}

	if session == nil {
		err = promptInitialAuth()
		if err != nil {
			term.OutputErrorAndExit("error resolving auth: %v", err)
		}
		return
	}

	if TokenExpired(session.Token, time.Now()) {
		log.Println("saved session token has expired")
		if err := store.Clear(); err != nil {
			term.OutputErrorAndExit("error clearing session: %v", err)
		}
		term.OutputSimpleError("Your session has expired. Please sign in again.")
		err = promptInitialAuth()
		if err != nil {
			term.OutputErrorAndExit("error resolving auth: %v", err)
		}
		return
	}

	if session.Host != "" && apiHost != "" && session.Host != apiHost {
		log.Printf("session was created against %s, now using %s\n", session.Host, apiHost)
		term.OutputSimpleError("Your saved session is for %s, not %s", session.Host, apiHost)
		term.PrintCmds("", "sign-in")
		os.Exit(1)
	}

	setCurrent(session)
}

// CurrentSession is the session resolved for this invocation, or nil once
// the backend has rejected it.
func CurrentSession() *shared.Session {
	mu.Lock()
	defer mu.Unlock()
	return current
}

func setCurrent(session *shared.Session) {
	mu.Lock()
	defer mu.Unlock()
	current = session
}

func setInAuthFlow(v bool) {
	mu.Lock()
	defer mu.Unlock()
	inAuthFlow = v
}

func SignOut() error {
	if store == nil {
		return fmt.Errorf("error signing out: session store not set")
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("error clearing session: %v", err)
	}
	setCurrent(nil)
	return nil
}

// OnUnauthorized runs after the api client has cleared the session on a
// 401. Outside the sign-in flow it sends the user back to sign in.
func OnUnauthorized() {
	mu.Lock()
	current = nil
	silent := inAuthFlow || quiet
	mu.Unlock()

	log.Println("session cleared after unauthorized response")

	if silent {
		return
	}

	term.StopSpinner()
	term.OutputSimpleError("Your session has expired. Please sign in again.")
	term.PrintCmds("", "sign-in")
}

// RunQuietly holds back the session expired notice while fn runs, for
// callers that own the screen and report it themselves afterwards.
func RunQuietly(fn func() error) error {
	mu.Lock()
	quiet = true
	mu.Unlock()

	defer func() {
		mu.Lock()
		quiet = false
		mu.Unlock()
	}()
	return fn()
}
