package calendar

import (
	"testing"
	"time"

	"socialcal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledAt(id int64, status shared.ScheduleStatus, t time.Time) *shared.ScheduledContent {
	return &shared.ScheduledContent{
		ScheduleId:    id,
		Platform:      shared.PlatformInstagram,
		ContentType:   shared.ContentTypePost,
		Status:        status,
		ScheduledTime: shared.NewTimestamp(t),
	}
}

func ids(items []*shared.ScheduledContent) []int64 {
	var res []int64
	for _, item := range items {
		res = append(res, item.ScheduleId)
	}
	return res
}

func TestUpcomingOnlyPendingSortedAscending(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []*shared.ScheduledContent{
		scheduledAt(1, shared.ScheduleStatusPending, base.Add(5*time.Hour)),
		scheduledAt(2, shared.ScheduleStatusPublished, base.Add(time.Hour)),
		scheduledAt(3, shared.ScheduleStatusPending, base.Add(2*time.Hour)),
		scheduledAt(4, shared.ScheduleStatusFailed, base.Add(3*time.Hour)),
		scheduledAt(5, shared.ScheduleStatusPending, base.Add(-time.Hour)),
	}

	assert.Equal(t, []int64{5, 3, 1}, ids(Upcoming(items, UpcomingLimit)))
}

func TestUpcomingTruncatesToLimit(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var items []*shared.ScheduledContent
	for i := 15; i > 0; i-- {
		items = append(items, scheduledAt(int64(i), shared.ScheduleStatusPending, base.Add(time.Duration(i)*time.Hour)))
	}

	res := Upcoming(items, UpcomingLimit)
	require.Len(t, res, 10)
	assert.Equal(t, int64(1), res[0].ScheduleId)
	assert.Equal(t, int64(10), res[9].ScheduleId)
}

func TestDueWithin(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []*shared.ScheduledContent{
		scheduledAt(1, shared.ScheduleStatusPending, now.Add(2*time.Hour)),
		scheduledAt(2, shared.ScheduleStatusPending, now.Add(30*time.Hour)),
		scheduledAt(3, shared.ScheduleStatusPublished, now.Add(time.Hour)),
		scheduledAt(4, shared.ScheduleStatusPending, now.Add(-time.Minute)),
		scheduledAt(5, shared.ScheduleStatusPending, now),
		scheduledAt(6, shared.ScheduleStatusPending, now.Add(24*time.Hour)),
	}

	assert.Equal(t, []int64{1}, ids(DueWithin(items, now, ReminderWindow)))
}
