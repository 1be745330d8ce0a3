package notify

import (
	"fmt"
	"log"
	"time"

	"socialcal/format"
	"socialcal/shared"

	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
)

const ReminderTitle = "Upcoming in 24 Hours"

var notifyFn = beeep.Notify
var writeClipboard = clipboard.WriteAll

func ReminderBody(item *shared.ScheduledContent, now time.Time) string {
	return fmt.Sprintf("%s %s %s\n%s",
		item.Platform.Icon(),
		item.ContentType.Icon(),
		item.Label(),
		format.When(item.ScheduledTime.Time, now),
	)
}

// Reminders sends one desktop notification per item and returns how many
// were delivered. Failures are logged, never returned.
func Reminders(items []*shared.ScheduledContent, now time.Time) int {
	sent := 0
	for _, item := range items {
		err := notifyFn(ReminderTitle, ReminderBody(item, now), "")
		if err != nil {
			log.Printf("error sending reminder for schedule %d: %v\n", item.ScheduleId, err)
			continue
		}
		sent++
	}
	return sent
}

// CopyCaption puts the caption and hashtags on the clipboard and confirms
// with a notification.
func CopyCaption(item *shared.ScheduledContent) (string, error) {
	text := shared.StrVal(item.Caption)
	if tags := shared.StrVal(item.Hashtags); tags != "" {
		if text != "" {
			text += "\n\n"
		}
		text += tags
	}
	if text == "" {
		return "", fmt.Errorf("schedule %d has no caption or hashtags", item.ScheduleId)
	}

	if err := writeClipboard(text); err != nil {
		return "", fmt.Errorf("error copying caption to clipboard: %v", err)
	}

	err := notifyFn("Caption copied", fmt.Sprintf("%s copied to clipboard", item.Label()), "")
	if err != nil {
		log.Printf("error sending notification: %v\n", err)
	}

	return text, nil
}
