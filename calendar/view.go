package calendar

import (
	"fmt"
	"log"
	"sync"
	"time"

	"socialcal/shared"
	"socialcal/types"
)

const (
	DeleteConfirmMsg = "Are you sure you want to delete this scheduled content?"
	CreateFailedMsg  = "Failed to create scheduled content"
)

// State is a read-only copy of the view for rendering.
type State struct {
	Month     time.Time
	Selected  time.Time
	Accounts  []*shared.SocialAccount
	Events    []*shared.CalendarEvent
	Scheduled []*shared.ScheduledContent
	Draft     Draft
	ModalOpen bool
	Loading   bool
	Loaded    bool
	Err       error
}

func (s State) Grid(loc *time.Location) Grid {
	return Bucket(MonthGrid(s.Month), s.Events, loc)
}

func (s State) Upcoming() []*shared.ScheduledContent {
	return Upcoming(s.Scheduled, UpcomingLimit)
}

func (s State) Reminders(now time.Time) []*shared.ScheduledContent {
	return DueWithin(s.Scheduled, now, ReminderWindow)
}

type View struct {
	mu     sync.Mutex
	client types.ApiClient
	loc    *time.Location
	now    func() time.Time
	state  State
}

type ViewOption func(*View)

func WithLocation(loc *time.Location) ViewOption {
	return func(v *View) {
		v.loc = loc
	}
}

func WithClock(now func() time.Time) ViewOption {
	return func(v *View) {
		v.now = now
	}
}

func NewView(client types.ApiClient, opts ...ViewOption) *View {
	v := &View{
		client: client,
		loc:    time.Local,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	today := v.now().In(v.loc)
	v.state.Selected = startOfDay(today)
	v.state.Month = startOfMonth(today)
	v.state.Draft = NewDraft()
	return v
}

func (v *View) Location() *time.Location {
	return v.loc
}

func (v *View) Now() time.Time {
	return v.now()
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load fetches accounts, the displayed month's events and scheduled items
// concurrently. All three must succeed; otherwise the previous snapshot is
// kept and the first error is returned.
func (v *View) Load() error {
	v.mu.Lock()
	v.state.Loading = true
	month := v.state.Month
	v.mu.Unlock()

	start, end := MonthGrid(month).Range(v.loc)

	var (
		accounts  []*shared.SocialAccount
		calView   *shared.CalendarView
		scheduled []*shared.ScheduledContent
	)

	errCh := make(chan *shared.ApiError, 3)

	go func() {
		res, apiErr := v.client.ListAccounts()
		if apiErr != nil {
			errCh <- apiErr
			return
		}
		accounts = res
		errCh <- nil
	}()

	go func() {
		res, apiErr := v.client.GetCalendar(shared.CalendarRange{Start: &start, End: &end})
		if apiErr != nil {
			errCh <- apiErr
			return
		}
		calView = res
		errCh <- nil
	}()

	go func() {
		res, apiErr := v.client.ListScheduledContent(shared.ScheduleFilter{})
		if apiErr != nil {
			errCh <- apiErr
			return
		}
		scheduled = res
		errCh <- nil
	}()

	var firstErr *shared.ApiError
	for i := 0; i < 3; i++ {
		apiErr := <-errCh
		if apiErr != nil && firstErr == nil {
			firstErr = apiErr
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// the user moved to another month while this load was in flight; its own load owns the state now
	if !month.Equal(v.state.Month) {
		log.Printf("Discarding calendar data for %s, now showing %s\n", month.Format("2006-01"), v.state.Month.Format("2006-01"))
		return nil
	}

	v.state.Loading = false

	if firstErr != nil {
		log.Printf("Failed to load calendar data: %v\n", firstErr.Msg)
		v.state.Err = firstErr
		return firstErr
	}

	events := make([]*shared.CalendarEvent, len(calView.Events))
	for i := range calView.Events {
		events[i] = &calView.Events[i]
	}

	v.state.Accounts = accounts
	v.state.Events = events
	v.state.Scheduled = scheduled
	v.state.Loaded = true
	v.state.Err = nil
	return nil
}

func (v *View) SetDraft(d Draft) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Draft = d
}

// Create submits the draft. On success the modal closes, the draft resets
// and everything is re-fetched.
func (v *View) Create() (*shared.ScheduledContent, error) {
	v.mu.Lock()
	draft := v.state.Draft
	v.mu.Unlock()

	req, err := draft.Request(v.loc)
	if err != nil {
		return nil, err
	}

	created, apiErr := v.client.CreateScheduledContent(*req)
	if apiErr != nil {
		log.Printf("Failed to create schedule: %v\n", apiErr.Msg)
		v.setErr(apiErr)
		return nil, apiErr
	}

	v.mu.Lock()
	v.state.ModalOpen = false
	v.state.Draft = NewDraft()
	v.mu.Unlock()

	if err := v.Load(); err != nil {
		return created, err
	}
	return created, nil
}

// Delete removes a scheduled item once confirm agrees. It reports whether
// the item was deleted.
func (v *View) Delete(scheduleId int64, confirm func() bool) (bool, error) {
	if confirm == nil || !confirm() {
		return false, nil
	}

	if apiErr := v.client.DeleteScheduledContent(scheduleId); apiErr != nil {
		log.Printf("Failed to delete: %v\n", apiErr.Msg)
		v.setErr(apiErr)
		return false, apiErr
	}

	if err := v.Load(); err != nil {
		return true, err
	}
	return true, nil
}

func (v *View) Update(scheduleId int64, req shared.UpdateScheduledContentRequest) (*shared.ScheduledContent, error) {
	updated, apiErr := v.client.UpdateScheduledContent(scheduleId, req)
	if apiErr != nil {
		log.Printf("Failed to update schedule %d: %v\n", scheduleId, apiErr.Msg)
		v.setErr(apiErr)
		return nil, apiErr
	}

	if err := v.Load(); err != nil {
		return updated, err
	}
	return updated, nil
}

func (v *View) setErr(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Err = err
}

func (v *View) NextMonth() {
	v.shiftMonth(1)
}

func (v *View) PrevMonth() {
	v.shiftMonth(-1)
}

func (v *View) shiftMonth(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Month = v.state.Month.AddDate(0, n, 0)

	// keep the selected day inside the displayed month
	day := v.state.Selected.Day()
	if last := DaysIn(v.state.Month.Year(), v.state.Month.Month()); day > last {
		day = last
	}
	v.state.Selected = time.Date(v.state.Month.Year(), v.state.Month.Month(), day, 0, 0, 0, 0, v.loc)
}

func (v *View) Today() {
	v.mu.Lock()
	defer v.mu.Unlock()

	today := v.now().In(v.loc)
	v.state.Selected = startOfDay(today)
	v.state.Month = startOfMonth(today)
}

func (v *View) GoToMonth(year int, month time.Month) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Month = time.Date(year, month, 1, 0, 0, 0, 0, v.loc)
	v.state.Selected = v.state.Month
}

// SelectDay selects a day of the displayed month.
func (v *View) SelectDay(day int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	m := v.state.Month
	if day < 1 || day > DaysIn(m.Year(), m.Month()) {
		return fmt.Errorf("day %d is not in %s %d", day, m.Month(), m.Year())
	}
	v.state.Selected = time.Date(m.Year(), m.Month(), day, 0, 0, 0, 0, v.loc)
	return nil
}

// MoveSelection moves the selected day by n days, following it into the
// next or previous month. It reports whether the displayed month changed.
func (v *View) MoveSelection(n int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Selected = v.state.Selected.AddDate(0, 0, n)
	month := startOfMonth(v.state.Selected)
	if month.Equal(v.state.Month) {
		return false
	}
	v.state.Month = month
	return true
}

func (v *View) OpenModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ModalOpen = true
}

func (v *View) CloseModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ModalOpen = false
}

func (v *View) ScheduledById(scheduleId int64) *shared.ScheduledContent {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, item := range v.state.Scheduled {
		if item.ScheduleId == scheduleId {
			return item
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
