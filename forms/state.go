package forms

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/looplab/fsm"
)

const EVENT_SUBMIT = "submit"
const EVENT_SUCCEED = "succeed"
const EVENT_FAIL = "fail"
const EVENT_REDIRECT = "redirect"
const EVENT_RESET = "reset"

const STATE_IDLE = "idle"
const STATE_SUBMITTING = "submitting"
const STATE_SUCCESS = "success"
const STATE_FAILED = "failed"
const STATE_REDIRECTED = "redirected"

// Route is where a form sends the user once it has succeeded.
type Route string

const (
	RouteDashboard Route = "dashboard"
	RouteSignIn    Route = "sign-in"
)

type Clock func() time.Time

func NewSubmissionState(name string) *fsm.FSM {
	return fsm.NewFSM(
		STATE_IDLE,
		fsm.Events{
			{Name: EVENT_SUBMIT, Src: []string{STATE_IDLE, STATE_FAILED}, Dst: STATE_SUBMITTING},
			{Name: EVENT_SUCCEED, Src: []string{STATE_SUBMITTING}, Dst: STATE_SUCCESS},
			{Name: EVENT_FAIL, Src: []string{STATE_SUBMITTING}, Dst: STATE_FAILED},
			{Name: EVENT_REDIRECT, Src: []string{STATE_SUCCESS}, Dst: STATE_REDIRECTED},
			{Name: EVENT_RESET, Src: []string{STATE_SUCCESS, STATE_FAILED, STATE_REDIRECTED}, Dst: STATE_IDLE},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Printf("%s form: %s -> %s\n", name, e.Src, e.Dst)
			},
		},
	)
}

// Submission tracks one form's lifecycle:
// idle -> submitting -> success(redirectAt) -> redirected, with failed
// looping back to submitting when the user tries again.
type Submission struct {
	mu        sync.Mutex
	state     *fsm.FSM
	clock     Clock
	delay     time.Duration
	status    string
	successAt time.Time
	target    Route
}

func NewSubmission(name string, clock Clock, delay time.Duration) *Submission {
	if clock == nil {
		clock = time.Now
	}
	return &Submission{
		state: NewSubmissionState(name),
		clock: clock,
		delay: delay,
	}
}

func (s *Submission) event(name string) error {
	return s.state.Event(context.Background(), name)
}

func (s *Submission) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Current()
}

func (s *Submission) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Submission) begin(status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Can(EVENT_SUBMIT) {
		return fmt.Errorf("cannot submit while %s", s.state.Current())
	}
	if err := s.event(EVENT_SUBMIT); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Submission) succeed(status string, target Route) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.event(EVENT_SUCCEED); err != nil {
		log.Printf("error moving form to success: %v\n", err)
		return
	}
	s.status = status
	s.successAt = s.clock()
	s.target = target
}

func (s *Submission) fail(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.event(EVENT_FAIL); err != nil {
		log.Printf("error moving form to failed: %v\n", err)
		return
	}
	s.status = status
}

// setStatus updates the message without a transition, used when local
// input checks reject a submit before it starts.
func (s *Submission) setStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// RedirectAt reports when a successful form navigates away.
func (s *Submission) RedirectAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current() != STATE_SUCCESS && s.state.Current() != STATE_REDIRECTED {
		return time.Time{}, false
	}
	return s.successAt.Add(s.delay), true
}

// Tick fires the redirect once the delay has elapsed. It returns the
// target route the first time the redirect happens.
func (s *Submission) Tick(now time.Time) (Route, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current() != STATE_SUCCESS {
		return "", false
	}
	if now.Before(s.successAt.Add(s.delay)) {
		return "", false
	}
	if err := s.event(EVENT_REDIRECT); err != nil {
		log.Printf("error redirecting form: %v\n", err)
		return "", false
	}
	return s.target, true
}

// WaitForRedirect blocks, using sleep, until the redirect fires.
func (s *Submission) WaitForRedirect(sleep func(time.Duration)) (Route, bool) {
	at, ok := s.RedirectAt()
	if !ok {
		return "", false
	}

	if d := at.Sub(s.clock()); d > 0 {
		sleep(d)
	}
	return s.Tick(s.clock())
}

func (s *Submission) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Can(EVENT_RESET) {
		if err := s.event(EVENT_RESET); err != nil {
			log.Printf("error resetting form: %v\n", err)
		}
	}
	s.status = ""
	s.successAt = time.Time{}
	s.target = ""
}
