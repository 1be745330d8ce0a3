package notify

import (
	"errors"
	"testing"
	"time"

	"socialcal/calendar"
	"socialcal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubNotify(t *testing.T, fn func(title, message string, appIcon string) error) {
	orig := notifyFn
	notifyFn = fn
	t.Cleanup(func() { notifyFn = orig })
}

func item(id int64, at time.Time) *shared.ScheduledContent {
	return &shared.ScheduledContent{
		ScheduleId:    id,
		Platform:      shared.PlatformFacebook,
		ContentType:   shared.ContentTypeStory,
		Status:        shared.ScheduleStatusPending,
		ScheduledTime: shared.NewTimestamp(at),
	}
}

func TestRemindersOnlyForDueItems(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []*shared.ScheduledContent{item(1, now.Add(2*time.Hour)), item(2, now.Add(30*time.Hour))}

	var bodies []string
	stubNotify(t, func(title, message string, appIcon string) error {
		assert.Equal(t, ReminderTitle, title)
		bodies = append(bodies, message)
		return nil
	})

	sent := Reminders(calendar.DueWithin(items, now, calendar.ReminderWindow), now)
	assert.Equal(t, 1, sent)
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "story on facebook")
	assert.Contains(t, bodies[0], "in 2h")
}

func TestRemindersFailuresAreNotFatal(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	stubNotify(t, func(title, message string, appIcon string) error {
		calls++
		if calls == 1 {
			return errors.New("no notification daemon")
		}
		return nil
	})

	sent := Reminders([]*shared.ScheduledContent{item(1, now.Add(time.Hour)), item(2, now.Add(3*time.Hour))}, now)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, sent)
}

func TestCopyCaption(t *testing.T) {
	stubNotify(t, func(title, message string, appIcon string) error { return nil })

	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	defer func() { writeClipboard = orig }()

	it := item(3, time.Now())
	it.Caption = shared.StrPtr("Summer drop")
	it.Hashtags = shared.StrPtr("#summer #sale")

	text, err := CopyCaption(it)
	require.NoError(t, err)
	assert.Equal(t, "Summer drop\n\n#summer #sale", text)
	assert.Equal(t, text, copied)

	_, err = CopyCaption(item(4, time.Now()))
	assert.Error(t, err)
}
