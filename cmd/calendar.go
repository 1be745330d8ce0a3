package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/calendar"
	"socialcal/calendar_tui"
	"socialcal/format"
	"socialcal/notify"
	"socialcal/shared"
	"socialcal/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var calendarPrint bool
var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Open the content calendar",
	Args:    cobra.NoArgs,
	Run:     showCalendar,
}

func init() {
	RootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().BoolVarP(&calendarPrint, "print", "p", false, "Print the month instead of opening the interactive calendar")
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "Month to show (YYYY-MM)")
}

func showCalendar(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	view := calendar.NewView(api.Client)

	if calendarMonth != "" {
		year, month, err := parseMonth(calendarMonth)
		if err != nil {
			term.OutputErrorAndExit("%v", err)
		}
		view.GoToMonth(year, month)
	}

	if calendarPrint || !term.IsTerminal() {
		printCalendar(view)
		return
	}

	err := auth.RunQuietly(func() error {
		return calendar_tui.StartCalendarUI(view)
	})
	if err != nil {
		if apiErr, ok := err.(*shared.ApiError); ok && shared.IsUnauthorized(apiErr) {
			auth.OnUnauthorized()
			os.Exit(1)
		}
		term.OutputErrorAndExit("%v", err)
	}
}

func parseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

func printCalendar(view *calendar.View) {
	term.StartSpinner("")
	err := view.Load()
	term.StopSpinner()

	if err != nil {
		if apiErr, ok := err.(*shared.ApiError); ok {
			term.HandleApiError(apiErr)
		}
		term.OutputErrorAndExit("Error loading calendar: %v", err)
	}

	state := view.State()
	now := view.Now()
	loc := view.Location()

	fmt.Println(color.New(color.Bold).Sprintf("📅 %s %d", state.Month.Month(), state.Month.Year()))
	fmt.Println()

	g := state.Grid(loc)
	today := now.In(loc)

	table := newTable("Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat")
	table.SetRowLine(true)
	for _, week := range g.Weeks() {
		row := make([]string, 7)
		for i, cell := range week {
			row[i] = calendarCell(g, cell, today)
		}
		table.Append(row)
	}
	table.Render()

	reminders := state.Reminders(now)
	if len(reminders) > 0 {
		fmt.Println()
		fmt.Println(color.New(color.Bold, term.ColorHiYellow).Sprintf("⏰ %s", notify.ReminderTitle))
		for _, item := range reminders {
			fmt.Printf("  %s %s %s · %s\n", item.Platform.Icon(), item.ContentType.Icon(), item.Label(), format.RelTime(item.ScheduledTime.Time, now))
		}
	}

	fmt.Println()
	fmt.Println(color.New(color.Bold).Sprint("Upcoming"))
	upcoming := state.Upcoming()
	if len(upcoming) == 0 {
		fmt.Println("  No upcoming content scheduled")
	} else {
		printScheduledTable(upcoming, now)
	}

	fmt.Println()
	term.PrintCmds("", "schedule new", "reminders")
}

func calendarCell(g calendar.Grid, cell calendar.Cell, today time.Time) string {
	if cell.Day == 0 {
		return ""
	}

	day := strconv.Itoa(cell.Day)
	if g.Year == today.Year() && g.Month == today.Month() && cell.Day == today.Day() {
		day = color.New(color.Bold, term.ColorHiCyan).Sprint(day + "*")
	}

	lines := []string{day}
	for i, ev := range cell.Events {
		if i == 2 {
			lines = append(lines, fmt.Sprintf("+%d more", len(cell.Events)-2))
			break
		}
		lines = append(lines, ev.Platform.Icon()+" "+format.Truncate(ev.Title, 10))
	}
	return strings.Join(lines, "\n")
}
