package forms

import (
	"testing"
	"time"

	"socialcal/shared"
	"socialcal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	types.ApiClient

	loginCalls    int
	registerCalls int
	loginRes      *shared.LoginResponse
	registerRes   *shared.User
	err           *shared.ApiError

	onLogin func()
}

func (c *fakeClient) Login(req shared.LoginRequest) (*shared.LoginResponse, *shared.ApiError) {
	c.loginCalls++
	if c.onLogin != nil {
		c.onLogin()
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.loginRes, nil
}

func (c *fakeClient) Register(req shared.RegisterRequest) (*shared.User, *shared.ApiError) {
	c.registerCalls++
	if c.err != nil {
		return nil, c.err
	}
	return c.registerRes, nil
}

type memStore struct {
	session *shared.Session
}

func newStore() *memStore { return &memStore{} }

func (s *memStore) Load() (*shared.Session, error) { return s.session, nil }

func (s *memStore) Save(session *shared.Session) error {
	s.session = session
	return nil
}

func (s *memStore) Clear() error {
	s.session = nil
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestLoginSuccessStoresSessionAndRedirects(t *testing.T) {
	clock := newClock()
	store := newStore()
	client := &fakeClient{loginRes: &shared.LoginResponse{AccessToken: "tok", UserName: "Ana"}}

	form := NewLogin(client, store, Options{Clock: clock.Now, RedirectDelay: 1500 * time.Millisecond})
	form.Email = " ana@example.com "
	form.Password = "secret"

	require.NoError(t, form.Submit())
	assert.Equal(t, STATE_SUCCESS, form.Current())
	assert.Equal(t, LoginSuccessMsg, form.Status())

	session, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, "Ana", session.UserName)
	assert.Equal(t, "ana@example.com", session.Email)

	at, ok := form.RedirectAt()
	require.True(t, ok)
	assert.Equal(t, clock.now.Add(1500*time.Millisecond), at)

	_, fired := form.Tick(clock.now.Add(time.Second))
	assert.False(t, fired)
	assert.Equal(t, STATE_SUCCESS, form.Current())

	route, fired := form.Tick(at)
	assert.True(t, fired)
	assert.Equal(t, RouteDashboard, route)
	assert.Equal(t, STATE_REDIRECTED, form.Current())

	_, fired = form.Tick(at.Add(time.Minute))
	assert.False(t, fired, "redirect fires once")
}

func TestLoginFallsBackToEmailForDisplayName(t *testing.T) {
	store := newStore()
	client := &fakeClient{loginRes: &shared.LoginResponse{AccessToken: "tok"}}

	form := NewLogin(client, store, Options{})
	form.Email = "ana@example.com"
	form.Password = "secret"
	require.NoError(t, form.Submit())

	session, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", session.UserName)
}

func TestLoginFailureMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *shared.ApiError
		want string
	}{
		{"backend detail", &shared.ApiError{Type: shared.ApiErrorTypeUnauthorized, Status: 401, Msg: "Invalid email or password"}, "Invalid email or password"},
		{"no detail", &shared.ApiError{Type: shared.ApiErrorTypeUnauthorized, Status: 401, Msg: shared.UnauthorizedMsg}, LoginFailedMsg},
		{"server error", &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: shared.RequestFailedMsg}, LoginFailedMsg},
		{"network", &shared.ApiError{Type: shared.ApiErrorTypeNetwork, Msg: shared.NetworkErrorMsg}, shared.NetworkErrorMsg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			form := NewLogin(&fakeClient{err: tt.err}, store, Options{})
			form.Email = "ana@example.com"
			form.Password = "wrong"

			err := form.Submit()
			require.Error(t, err)
			assert.Equal(t, tt.want, form.Status())
			assert.Equal(t, STATE_FAILED, form.Current())

			session, loadErr := store.Load()
			require.NoError(t, loadErr)
			assert.Nil(t, session)

			_, ok := form.RedirectAt()
			assert.False(t, ok)
		})
	}
}

func TestLoginRetryAfterFailure(t *testing.T) {
	client := &fakeClient{err: &shared.ApiError{Type: shared.ApiErrorTypeNetwork, Msg: shared.NetworkErrorMsg}}
	form := NewLogin(client, newStore(), Options{})
	form.Email = "ana@example.com"
	form.Password = "secret"

	require.Error(t, form.Submit())
	assert.Equal(t, STATE_FAILED, form.Current())

	client.err = nil
	client.loginRes = &shared.LoginResponse{AccessToken: "tok"}
	require.NoError(t, form.Submit())
	assert.Equal(t, STATE_SUCCESS, form.Current())
	assert.Equal(t, 2, client.loginCalls)
}

func TestLoginRejectsSubmitWhileInFlight(t *testing.T) {
	var form *Login
	var nestedErr error

	client := &fakeClient{loginRes: &shared.LoginResponse{AccessToken: "tok"}}
	client.onLogin = func() {
		nestedErr = form.Submit()
	}

	form = NewLogin(client, newStore(), Options{})
	form.Email = "ana@example.com"
	form.Password = "secret"

	require.NoError(t, form.Submit())
	require.Error(t, nestedErr)
	assert.Equal(t, 1, client.loginCalls)
}

func TestLoginInputChecksSkipNetwork(t *testing.T) {
	client := &fakeClient{}
	form := NewLogin(client, newStore(), Options{})
	form.Email = "not-an-email"
	form.Password = "secret"

	err := form.Submit()
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email", form.Status())
	assert.Equal(t, STATE_IDLE, form.Current())
	assert.Equal(t, 0, client.loginCalls)
}

func TestSignUpSuccessRedirectsToSignIn(t *testing.T) {
	clock := newClock()
	start := clock.now
	client := &fakeClient{registerRes: &shared.User{UserId: 1, Email: "ana@example.com"}}

	form := NewSignUp(client, Options{Clock: clock.Now, RedirectDelay: 1500 * time.Millisecond})
	form.Email = "ana@example.com"
	form.Password = "longenough"
	form.FirstName = "Ana"
	form.LastName = "Silva"

	require.NoError(t, form.Submit())
	assert.Equal(t, SignUpSuccessMsg, form.Status())

	route, fired := form.WaitForRedirect(clock.Sleep)
	assert.True(t, fired)
	assert.Equal(t, RouteSignIn, route)
	assert.Equal(t, start.Add(1500*time.Millisecond), clock.now)
}

func TestSignUpErrors(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		client := &fakeClient{}
		form := NewSignUp(client, Options{})
		form.Email = "ana@example.com"
		form.Password = "short"
		form.FirstName = "Ana"
		form.LastName = "Silva"

		require.Error(t, form.Submit())
		assert.Equal(t, "password must be at least 8 characters", form.Status())
		assert.Equal(t, 0, client.registerCalls)
	})

	t.Run("duplicate email", func(t *testing.T) {
		client := &fakeClient{err: &shared.ApiError{Type: shared.ApiErrorTypeValidation, Status: 400, Msg: "Email already registered"}}
		form := NewSignUp(client, Options{})
		form.Email = "ana@example.com"
		form.Password = "longenough"
		form.FirstName = "Ana"
		form.LastName = "Silva"

		require.Error(t, form.Submit())
		assert.Equal(t, "Email already registered", form.Status())
		assert.Equal(t, STATE_FAILED, form.Current())
	})
}

func TestResetReturnsToIdle(t *testing.T) {
	client := &fakeClient{err: &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: shared.RequestFailedMsg}}
	form := NewSignUp(client, Options{})
	form.Email = "ana@example.com"
	form.Password = "longenough"
	form.FirstName = "Ana"
	form.LastName = "Silva"

	require.Error(t, form.Submit())
	assert.Equal(t, SignUpFailedMsg, form.Status())

	form.Reset()
	assert.Equal(t, STATE_IDLE, form.Current())
	assert.Equal(t, "", form.Status())
}
