package term

import (
	"testing"

	"socialcal/shared"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorHiYellow, StatusColor(shared.ScheduleStatusPending))
	assert.Equal(t, ColorHiGreen, StatusColor(shared.ScheduleStatusPublished))
	assert.Equal(t, ColorHiRed, StatusColor(shared.ScheduleStatusFailed))
	assert.Equal(t, color.Reset, StatusColor(shared.ScheduleStatus("archived")))
}

func TestTrendKeepsLabelText(t *testing.T) {
	color.NoColor = true

	assert.Equal(t, "+40", Trend(40, "+40"))
	assert.Equal(t, "-5", Trend(-5, "-5"))
	assert.Equal(t, "+0", Trend(0, "+0"))
}
