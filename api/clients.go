package api

import (
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"socialcal/types"

	"github.com/google/uuid"
)

const dialTimeout = 10 * time.Second
const defaultReqTimeout = 30 * time.Second

// Client is the process-wide client, set up by the root command.
var Client types.ApiClient

type Api struct {
	host           string
	store          types.SessionStore
	client         *http.Client
	onUnauthorized func()
	debug          bool

	unauthorizedMu sync.Mutex
}

var _ types.ApiClient = (*Api)(nil)

type Option func(a *Api)

func WithTimeout(d time.Duration) Option {
	return func(a *Api) {
		if d > 0 {
			a.client.Timeout = d
		}
	}
}

// WithOnUnauthorized registers what happens after a 401 has cleared the
// session; the CLI uses it to send the user back to sign-in.
func WithOnUnauthorized(fn func()) Option {
	return func(a *Api) {
		a.onUnauthorized = fn
	}
}

func WithDebug(debug bool) Option {
	return func(a *Api) {
		a.debug = debug
	}
}

// WithTransport swaps the underlying round tripper; the auth header is
// still added on top of it.
func WithTransport(rt http.RoundTripper) Option {
	return func(a *Api) {
		a.client.Transport = &authenticatedTransport{
			underlyingTransport: rt,
			store:               a.store,
		}
	}
}

func New(host string, store types.SessionStore, opts ...Option) *Api {
	a := &Api{
		host:  host,
		store: store,
	}

	a.client = &http.Client{
		Transport: &authenticatedTransport{
			underlyingTransport: &http.Transport{
				DialContext: netDialer.DialContext,
			},
			store: store,
		},
		Timeout: defaultReqTimeout,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Api) Host() string {
	return a.host
}

func (a *Api) SetOnUnauthorized(fn func()) {
	a.onUnauthorized = fn
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
	store               types.SessionStore
}

// RoundTrip attaches the bearer token, when one is stored, plus a request id
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request
	req = req.Clone(req.Context())

	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.New().String())
	}

	session, err := t.store.Load()
	if err != nil {
		log.Printf("error loading session for %s %s: %v\n", req.Method, req.URL.Path, err)
	} else if session != nil && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}
