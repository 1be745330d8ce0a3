package calendar

import (
	"sync"
	"testing"
	"time"

	"socialcal/shared"
	"socialcal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	types.ApiClient

	mu        sync.Mutex
	calls     map[string]int
	ranges    []shared.CalendarRange
	accounts  []*shared.SocialAccount
	events    []shared.CalendarEvent
	scheduled []*shared.ScheduledContent
	failOn    map[string]*shared.ApiError
	created   []shared.CreateScheduledContentRequest

	// calendarFn overrides events per requested range when set
	calendarFn func(r shared.CalendarRange) []shared.CalendarEvent
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		calls:  map[string]int{},
		failOn: map[string]*shared.ApiError{},
	}
}

func (c *fakeClient) record(name string) *shared.ApiError {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[name]++
	return c.failOn[name]
}

func (c *fakeClient) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

func (c *fakeClient) ListAccounts() ([]*shared.SocialAccount, *shared.ApiError) {
	if apiErr := c.record("accounts"); apiErr != nil {
		return nil, apiErr
	}
	return c.accounts, nil
}

func (c *fakeClient) GetCalendar(r shared.CalendarRange) (*shared.CalendarView, *shared.ApiError) {
	if apiErr := c.record("calendar"); apiErr != nil {
		return nil, apiErr
	}
	c.mu.Lock()
	c.ranges = append(c.ranges, r)
	fn := c.calendarFn
	c.mu.Unlock()
	if fn != nil {
		return &shared.CalendarView{Events: fn(r)}, nil
	}
	return &shared.CalendarView{Events: c.events}, nil
}

func (c *fakeClient) ListScheduledContent(filter shared.ScheduleFilter) ([]*shared.ScheduledContent, *shared.ApiError) {
	if apiErr := c.record("scheduled"); apiErr != nil {
		return nil, apiErr
	}
	return c.scheduled, nil
}

func (c *fakeClient) CreateScheduledContent(req shared.CreateScheduledContentRequest) (*shared.ScheduledContent, *shared.ApiError) {
	if apiErr := c.record("create"); apiErr != nil {
		return nil, apiErr
	}
	c.created = append(c.created, req)
	return &shared.ScheduledContent{ScheduleId: 99, Platform: req.Platform, ContentType: req.ContentType, ScheduledTime: req.ScheduledTime, Status: shared.ScheduleStatusPending}, nil
}

func (c *fakeClient) UpdateScheduledContent(scheduleId int64, req shared.UpdateScheduledContentRequest) (*shared.ScheduledContent, *shared.ApiError) {
	if apiErr := c.record("update"); apiErr != nil {
		return nil, apiErr
	}
	return &shared.ScheduledContent{ScheduleId: scheduleId, Status: shared.ScheduleStatusPending}, nil
}

func (c *fakeClient) DeleteScheduledContent(scheduleId int64) *shared.ApiError {
	return c.record("delete")
}

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestView(c *fakeClient) *View {
	return NewView(c, WithLocation(time.UTC), WithClock(func() time.Time { return fixedNow }))
}

func TestLoadFetchesAllThree(t *testing.T) {
	c := newFakeClient()
	c.accounts = []*shared.SocialAccount{{AccountId: 1, Platform: shared.PlatformInstagram, Username: "ana"}}
	c.events = []shared.CalendarEvent{{ScheduleId: 7, ScheduledTime: shared.NewTimestamp(fixedNow)}}
	c.scheduled = []*shared.ScheduledContent{scheduledAt(7, shared.ScheduleStatusPending, fixedNow.Add(2*time.Hour))}

	v := newTestView(c)
	require.NoError(t, v.Load())

	s := v.State()
	assert.True(t, s.Loaded)
	assert.False(t, s.Loading)
	assert.Len(t, s.Accounts, 1)
	require.Len(t, s.Events, 1)
	assert.Equal(t, int64(7), s.Events[0].ScheduleId)
	assert.Len(t, s.Scheduled, 1)
	assert.Len(t, s.Reminders(fixedNow), 1)
	assert.Len(t, s.Grid(time.UTC).Cell(15).Events, 1)

	require.Len(t, c.ranges, 1)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *c.ranges[0].Start)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), *c.ranges[0].End)
}

func TestLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	c := newFakeClient()
	c.scheduled = []*shared.ScheduledContent{scheduledAt(1, shared.ScheduleStatusPending, fixedNow.Add(time.Hour))}

	v := newTestView(c)
	require.NoError(t, v.Load())

	c.scheduled = nil
	c.failOn["calendar"] = &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: "boom"}

	err := v.Load()
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())

	s := v.State()
	assert.Len(t, s.Scheduled, 1, "previous snapshot kept")
	assert.Equal(t, err, s.Err)
	assert.Equal(t, 2, c.count("accounts"))
	assert.Equal(t, 2, c.count("scheduled"))
}

func TestCreateWithoutTimeSkipsNetwork(t *testing.T) {
	c := newFakeClient()
	v := newTestView(c)
	v.OpenModal()

	_, err := v.Create()
	assert.ErrorIs(t, err, ErrMissingTime)
	assert.Equal(t, 0, c.count("create"))
	assert.True(t, v.State().ModalOpen)
}

func TestCreateClosesModalResetsDraftAndReloads(t *testing.T) {
	c := newFakeClient()
	v := newTestView(c)
	v.OpenModal()

	d := NewDraft()
	d.Platform = shared.PlatformTiktok
	d.ContentType = shared.ContentTypeReel
	d.Caption = "dance"
	d.ScheduledLocal = "2024-06-16T18:00"
	v.SetDraft(d)

	created, err := v.Create()
	require.NoError(t, err)
	assert.Equal(t, int64(99), created.ScheduleId)

	require.Len(t, c.created, 1)
	assert.Equal(t, shared.PlatformTiktok, c.created[0].Platform)
	assert.Equal(t, time.Date(2024, 6, 16, 18, 0, 0, 0, time.UTC), c.created[0].ScheduledTime.Time)

	s := v.State()
	assert.False(t, s.ModalOpen)
	assert.Equal(t, NewDraft(), s.Draft)
	assert.Equal(t, 1, c.count("accounts"))
	assert.Equal(t, 1, c.count("calendar"))
	assert.Equal(t, 1, c.count("scheduled"))
}

func TestCreateFailureKeepsModalOpen(t *testing.T) {
	c := newFakeClient()
	c.failOn["create"] = &shared.ApiError{Type: shared.ApiErrorTypeValidation, Status: 400, Msg: "Account not found"}
	v := newTestView(c)
	v.OpenModal()

	d := NewDraft()
	d.ScheduledLocal = "2024-06-16T18:00"
	v.SetDraft(d)

	_, err := v.Create()
	require.Error(t, err)
	assert.True(t, v.State().ModalOpen)
	assert.Equal(t, d, v.State().Draft)
	assert.Equal(t, 0, c.count("scheduled"))
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	c := newFakeClient()
	v := newTestView(c)

	deleted, err := v.Delete(5, func() bool { return false })
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 0, c.count("delete"))

	deleted, err = v.Delete(5, func() bool { return true })
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, c.count("delete"))
	assert.Equal(t, 1, c.count("scheduled"))
}

func TestUpdateReloads(t *testing.T) {
	c := newFakeClient()
	v := newTestView(c)

	caption := "new"
	updated, err := v.Update(3, shared.UpdateScheduledContentRequest{Caption: &caption})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ScheduleId)
	assert.Equal(t, 1, c.count("scheduled"))
}

func TestMonthNavigation(t *testing.T) {
	v := NewView(newFakeClient(), WithLocation(time.UTC), WithClock(func() time.Time {
		return time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	}))

	v.NextMonth()
	s := v.State()
	assert.Equal(t, time.February, s.Month.Month())
	assert.Equal(t, 29, s.Selected.Day())

	v.PrevMonth()
	v.PrevMonth()
	s = v.State()
	assert.Equal(t, 2023, s.Month.Year())
	assert.Equal(t, time.December, s.Month.Month())

	v.Today()
	s = v.State()
	assert.Equal(t, time.January, s.Month.Month())
	assert.Equal(t, 31, s.Selected.Day())

	assert.True(t, v.MoveSelection(1))
	assert.Equal(t, time.February, v.State().Month.Month())
	assert.False(t, v.MoveSelection(7))
	assert.Equal(t, 8, v.State().Selected.Day())

	require.NoError(t, v.SelectDay(29))
	assert.Error(t, v.SelectDay(30))

	v.GoToMonth(2024, time.March)
	assert.Equal(t, time.March, v.State().Month.Month())
	assert.Equal(t, 1, v.State().Selected.Day())
}
