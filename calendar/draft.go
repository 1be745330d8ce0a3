package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"socialcal/shared"
)

// PickerLayout is the value format of a local date-time picker.
const PickerLayout = "2006-01-02T15:04"

var ErrMissingTime = errors.New("Please select a date and time")

type Draft struct {
	Platform       shared.Platform
	ContentType    shared.ContentType
	AccountId      *int64
	Title          string
	Caption        string
	Hashtags       string
	ScheduledLocal string
}

func NewDraft() Draft {
	return Draft{
		Platform:    shared.PlatformInstagram,
		ContentType: shared.ContentTypePost,
	}
}

// Request builds the create request, reading ScheduledLocal as wall time
// in loc. It never touches the network.
func (d Draft) Request(loc *time.Location) (*shared.CreateScheduledContentRequest, error) {
	local := strings.TrimSpace(d.ScheduledLocal)
	if local == "" {
		return nil, ErrMissingTime
	}

	t, err := ParseLocal(local, loc)
	if err != nil {
		return nil, err
	}

	req := &shared.CreateScheduledContentRequest{
		AccountId:     d.AccountId,
		Platform:      d.Platform,
		ContentType:   d.ContentType,
		Title:         shared.StrPtr(strings.TrimSpace(d.Title)),
		Caption:       shared.StrPtr(strings.TrimSpace(d.Caption)),
		Hashtags:      shared.StrPtr(strings.TrimSpace(d.Hashtags)),
		ScheduledTime: shared.NewTimestamp(t.UTC()),
	}

	if err := shared.ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ParseLocal accepts the picker layout, or a date with a space before the time.
func ParseLocal(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{PickerLayout, "2006-01-02 15:04", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date and time %q, expected YYYY-MM-DDTHH:MM", s)
}
