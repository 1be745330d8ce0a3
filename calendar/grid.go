package calendar

import (
	"time"

	"socialcal/shared"
)

type Cell struct {
	// Day is the day of month, or 0 for a leading blank.
	Day    int
	Events []*shared.CalendarEvent
}

type Grid struct {
	Year    int
	Month   time.Month
	Leading int
	Days    int
	Cells   []Cell
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid lays out the month containing ref with weeks starting on Sunday.
func MonthGrid(ref time.Time) Grid {
	year, month := ref.Year(), ref.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())

	g := Grid{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    DaysIn(year, month),
	}

	g.Cells = make([]Cell, g.Leading+g.Days)
	for d := 1; d <= g.Days; d++ {
		g.Cells[g.Leading+d-1].Day = d
	}
	return g
}

// Cell returns the cell for a day of the grid's month.
func (g Grid) Cell(day int) *Cell {
	if day < 1 || day > g.Days {
		return nil
	}
	return &g.Cells[g.Leading+day-1]
}

// Weeks splits the cells into rows of seven, padding the last row with blanks.
func (g Grid) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		end := i + 7
		week := make([]Cell, 7)
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		copy(week, g.Cells[i:end])
		weeks = append(weeks, week)
	}
	return weeks
}

// Range is the half-open span of instants covering the grid's month in loc.
func (g Grid) Range(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
