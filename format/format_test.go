package format

import (
	"testing"
	"time"

	"socialcal/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRelTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		then time.Time
		want string
	}{
		{now, "now"},
		{now.Add(-90 * time.Second), "1m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(2*time.Hour + time.Minute), "in 2h"},
		{now.Add(30 * time.Hour), "in 1d"},
		{now.Add(-3 * Day), "3d ago"},
		{now.Add(20 * Day), "in 2w"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RelTime(tt.then, now))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hello wo…", Truncate("hello   world\nagain", 9))
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, "0", Count(0))
	assert.Equal(t, "999", Count(999))
	assert.Equal(t, "1,234,567", Count(1234567))
	assert.Equal(t, "-12,000", Count(-12000))
	assert.Equal(t, "+1,000", Signed(1000))
	assert.Equal(t, "-5", Signed(-5))
	assert.Equal(t, "4.50%", Percent(decimal.RequireFromString("4.5")))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "📸 Instagram", PlatformLabel(shared.PlatformInstagram))
	assert.Equal(t, "🎬 Reel", ContentTypeLabel(shared.ContentTypeReel))
}
