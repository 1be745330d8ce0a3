package calendar

import (
	"testing"
	"time"

	"socialcal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name    string
		ref     time.Time
		leading int
		days    int
	}{
		{"june 2024 starts saturday", time.Date(2024, 6, 18, 10, 0, 0, 0, time.UTC), 6, 30},
		{"leap february", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 4, 29},
		{"february 2023", time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), 3, 28},
		{"september 2024 starts sunday", time.Date(2024, 9, 30, 23, 59, 0, 0, time.UTC), 0, 30},
		{"december 2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), 0, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MonthGrid(tt.ref)
			assert.Equal(t, tt.leading, g.Leading)
			assert.Equal(t, tt.days, g.Days)
			require.Len(t, g.Cells, tt.leading+tt.days)

			for i := 0; i < tt.leading; i++ {
				assert.Equal(t, 0, g.Cells[i].Day)
			}
			for d := 1; d <= tt.days; d++ {
				assert.Equal(t, d, g.Cells[tt.leading+d-1].Day)
			}
		})
	}
}

func TestMonthGridShapeForEveryMonth(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			ref := time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
			g := MonthGrid(ref)

			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			assert.Equal(t, int(first.Weekday()), g.Leading)
			assert.Len(t, g.Cells, g.Leading+g.Days)
		}
	}
}

func TestWeeksPadsLastRow(t *testing.T) {
	g := MonthGrid(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	weeks := g.Weeks()

	require.Len(t, weeks, 6)
	for _, w := range weeks {
		assert.Len(t, w, 7)
	}
	assert.Equal(t, 1, weeks[0][6].Day)
	assert.Equal(t, 30, weeks[5][0].Day)
	assert.Equal(t, 0, weeks[5][1].Day)
}

func TestBucketPlacesEventInExactlyOneCell(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	events := []*shared.CalendarEvent{
		// 21:00 on the 15th locally
		{ScheduleId: 1, ScheduledTime: shared.NewTimestamp(time.Date(2024, 6, 16, 2, 0, 0, 0, time.UTC))},
		{ScheduleId: 2, ScheduledTime: shared.NewTimestamp(time.Date(2024, 6, 15, 5, 0, 0, 0, loc))},
		{ScheduleId: 3, ScheduledTime: shared.NewTimestamp(time.Date(2024, 7, 15, 5, 0, 0, 0, loc))},
	}

	g := Bucket(MonthGrid(time.Date(2024, 6, 1, 0, 0, 0, 0, loc)), events, loc)

	seen := map[int64][]int{}
	for _, c := range g.Cells {
		for _, e := range c.Events {
			seen[e.ScheduleId] = append(seen[e.ScheduleId], c.Day)
		}
	}

	assert.Equal(t, []int{15}, seen[1])
	assert.Equal(t, []int{15}, seen[2])
	assert.NotContains(t, seen, int64(3))
	assert.Len(t, g.Cell(15).Events, 2)
	assert.Nil(t, g.Cell(31))
}

func TestEventsForDayIgnoresTimeOfDay(t *testing.T) {
	events := []*shared.CalendarEvent{
		{ScheduleId: 1, ScheduledTime: shared.NewTimestamp(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))},
		{ScheduleId: 2, ScheduledTime: shared.NewTimestamp(time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC))},
		{ScheduleId: 3, ScheduledTime: shared.NewTimestamp(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))},
		{ScheduleId: 4, ScheduledTime: shared.NewTimestamp(time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC))},
	}

	res := EventsForDay(events, 2024, time.June, 15, time.UTC)
	require.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ScheduleId)
	assert.Equal(t, int64(2), res[1].ScheduleId)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 15, 0, 1, 0, 0, time.UTC)
	assert.True(t, SameDay(a, time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)))
	assert.False(t, SameDay(a, time.Date(2024, 5, 15, 0, 1, 0, 0, time.UTC)))
	assert.False(t, SameDay(a, time.Date(2023, 6, 15, 0, 1, 0, 0, time.UTC)))
}
