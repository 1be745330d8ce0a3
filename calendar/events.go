package calendar

import (
	"sort"
	"time"

	"socialcal/shared"
)

const UpcomingLimit = 10
const ReminderWindow = 24 * time.Hour

// EventsForDay matches on calendar date in loc, not on time of day.
func EventsForDay(events []*shared.CalendarEvent, year int, month time.Month, day int, loc *time.Location) []*shared.CalendarEvent {
	var res []*shared.CalendarEvent
	for _, e := range events {
		y, m, d := e.ScheduledTime.In(loc).Date()
		if y == year && m == month && d == day {
			res = append(res, e)
		}
	}
	return res
}

// Bucket fills each day cell with that day's events.
func Bucket(g Grid, events []*shared.CalendarEvent, loc *time.Location) Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	g.Cells = cells

	for i := range g.Cells {
		if g.Cells[i].Day == 0 {
			continue
		}
		g.Cells[i].Events = EventsForDay(events, g.Year, g.Month, g.Cells[i].Day, loc)
	}
	return g
}

// Upcoming returns pending items, soonest first, capped at limit.
func Upcoming(items []*shared.ScheduledContent, limit int) []*shared.ScheduledContent {
	var pending []*shared.ScheduledContent
	for _, item := range items {
		if item.Status == shared.ScheduleStatusPending {
			pending = append(pending, item)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ScheduledTime.Before(pending[j].ScheduledTime.Time)
	})

	if limit >= 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

// DueWithin returns pending items strictly between now and now+window.
func DueWithin(items []*shared.ScheduledContent, now time.Time, window time.Duration) []*shared.ScheduledContent {
	var due []*shared.ScheduledContent
	for _, item := range items {
		if item.Status != shared.ScheduleStatusPending {
			continue
		}
		diff := item.ScheduledTime.Sub(now)
		if diff > 0 && diff < window {
			due = append(due, item)
		}
	}
	return due
}
