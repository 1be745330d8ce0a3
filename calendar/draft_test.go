package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRequiresTime(t *testing.T) {
	d := NewDraft()
	d.Caption = "hello"

	req, err := d.Request(time.UTC)
	assert.Nil(t, req)
	assert.ErrorIs(t, err, ErrMissingTime)
}

func TestDraftConvertsLocalTimeToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)

	d := NewDraft()
	d.Title = "  Launch  "
	d.Hashtags = "#go"
	d.ScheduledLocal = "2024-06-15T09:30"

	req, err := d.Request(loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 15, 7, 30, 0, 0, time.UTC), req.ScheduledTime.Time)
	assert.Equal(t, "Launch", *req.Title)
	assert.Nil(t, req.Caption)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"platform": "instagram",
		"content_type": "post",
		"title": "Launch",
		"hashtags": "#go",
		"scheduled_time": "2024-06-15T07:30:00.000Z"
	}`, string(body))
}

func TestDraftRejectsBadInput(t *testing.T) {
	d := NewDraft()
	d.ScheduledLocal = "tomorrow"
	_, err := d.Request(time.UTC)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingTime)

	d = NewDraft()
	d.Platform = "myspace"
	d.ScheduledLocal = "2024-06-15 09:30"
	_, err = d.Request(time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform must be one of")
}
