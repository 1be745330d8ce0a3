package calendar_tui

import (
	"fmt"

	"socialcal/calendar"

	tea "github.com/charmbracelet/bubbletea"
)

// StartCalendarUI runs the interactive calendar until the user quits. A
// rejected session ends it early with the unauthorized *shared.ApiError.
func StartCalendarUI(view *calendar.View) error {
	program := tea.NewProgram(initialModel(view), tea.WithAltScreen())

	m, err := program.Run()
	if err != nil {
		return fmt.Errorf("error running calendar UI: %v", err)
	}

	var mod *calendarUIModel
	c, ok := m.(*calendarUIModel)
	if ok {
		mod = c
	} else {
		c := m.(calendarUIModel)
		mod = &c
	}

	if mod.fatalErr != nil {
		return mod.fatalErr
	}
	return nil
}
