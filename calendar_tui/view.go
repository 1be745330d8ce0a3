package calendar_tui

import (
	"fmt"
	"strings"
	"time"

	"socialcal/calendar"
	"socialcal/format"
	"socialcal/shared"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 40
const cellHeight = 4
const maxEventsPerCell = 2

var borderColor = lipgloss.Color("#444")
var helpTextColor = lipgloss.Color("#ddd")
var accentColor = lipgloss.Color("#646cff")
var mutedColor = lipgloss.Color("#888")
var errorColor = lipgloss.Color("#ff5f5f")
var warnColor = lipgloss.Color("#ffaf00")

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m calendarUIModel) View() string {
	state := m.view.State()

	if !state.Loaded && m.loading {
		return "\n " + m.spinner.View() + " Loading calendar..."
	}

	if m.form != nil {
		return m.renderForm()
	}

	if m.confirmingDelete {
		return m.renderConfirmDelete()
	}

	layout := lipgloss.JoinHorizontal(lipgloss.Top, m.renderGrid(state), m.renderSidebar(state))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(state),
		layout,
		m.renderStatus(state),
		m.renderHelp(),
	)
}

func (m calendarUIModel) cellWidth() int {
	width := m.width
	if width == 0 {
		width = 120
	}
	return max(10, (width-sidebarWidth)/7)
}

func (m calendarUIModel) renderHeader(state calendar.State) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(accentColor).
		Render(fmt.Sprintf("📅 %s %d", state.Month.Month(), state.Month.Year()))

	if m.loading {
		title += " " + m.spinner.View()
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(title)
}

func (m calendarUIModel) renderGrid(state calendar.State) string {
	loc := m.view.Location()
	grid := state.Grid(loc)
	now := m.now().In(loc)
	cw := m.cellWidth()

	var header []string
	for _, d := range weekdays {
		header = append(header, lipgloss.NewStyle().Width(cw).Bold(true).Foreground(mutedColor).Padding(0, 1).Render(d))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for _, week := range grid.Weeks() {
		var cells []string
		for _, cell := range week {
			cells = append(cells, m.renderCell(grid, cell, state.Selected, now, cw))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m calendarUIModel) renderCell(grid calendar.Grid, cell calendar.Cell, selected, now time.Time, cw int) string {
	style := lipgloss.NewStyle().
		Width(cw).
		Height(cellHeight).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(borderColor)

	if cell.Day == 0 {
		return style.Render("")
	}

	date := time.Date(grid.Year, grid.Month, cell.Day, 0, 0, 0, 0, now.Location())

	dayStyle := lipgloss.NewStyle()
	if calendar.SameDay(date, now) {
		dayStyle = dayStyle.Bold(true).Underline(true).Foreground(accentColor)
	}
	if calendar.SameDay(date, selected) {
		style = style.BorderForeground(accentColor).Background(lipgloss.Color("#2a2a3e"))
		dayStyle = dayStyle.Bold(true)
	}

	lines := []string{dayStyle.Render(fmt.Sprint(cell.Day))}

	for i, e := range cell.Events {
		if i == maxEventsPerCell {
			lines = append(lines, lipgloss.NewStyle().Foreground(mutedColor).Render(fmt.Sprintf("+%d more", len(cell.Events)-maxEventsPerCell)))
			break
		}
		lines = append(lines, renderEventChip(e, cw-2))
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderEventChip(e *shared.CalendarEvent, width int) string {
	hex := e.Color
	if hex == "" {
		hex = e.Platform.Color()
	}

	title := e.Title
	if title == "" {
		title = string(e.ContentType)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color("#ffffff")).
		Render(format.Truncate(e.Platform.Icon()+" "+title, width))
}

func (m calendarUIModel) renderSidebar(state calendar.State) string {
	loc := m.view.Location()
	now := m.now()
	width := sidebarWidth - 4

	var sections []string

	reminders := state.Reminders(now)
	if len(reminders) > 0 {
		var lines []string
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(warnColor).Render("⏰ Upcoming in 24 Hours"))
		for _, item := range reminders {
			lines = append(lines, format.Truncate(fmt.Sprintf("%s %s · %s", item.Platform.Icon(), item.Label(), format.RelTime(item.ScheduledTime.Time, now)), width))
		}
		sections = append(sections, lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(warnColor).
			Padding(0, 1).
			Width(width).
			Render(strings.Join(lines, "\n")))
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Upcoming"))
	upcoming := state.Upcoming()
	if len(upcoming) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(mutedColor).Render("Nothing scheduled"))
	}
	for i, item := range upcoming {
		marker := "  "
		lineStyle := lipgloss.NewStyle()
		if i == m.upcomingIdx {
			marker = "› "
			lineStyle = lineStyle.Bold(true).Foreground(accentColor)
		}
		lines = append(lines,
			lineStyle.Render(format.Truncate(fmt.Sprintf("%s%s %s %s", marker, item.Platform.Icon(), item.ContentType.Icon(), item.Label()), width)),
			lipgloss.NewStyle().Foreground(mutedColor).Render("    "+item.ScheduledTime.In(loc).Format(format.DateTimeLayout)),
		)
	}
	sections = append(sections, lipgloss.NewStyle().Padding(0, 1).Width(width).Render(strings.Join(lines, "\n")))

	dayEvents := calendar.EventsForDay(state.Events, state.Selected.Year(), state.Selected.Month(), state.Selected.Day(), loc)
	lines = []string{lipgloss.NewStyle().Bold(true).Render(state.Selected.Format(format.DateLayout))}
	if len(dayEvents) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(mutedColor).Render("No content this day"))
	}
	for _, e := range dayEvents {
		lines = append(lines, format.Truncate(fmt.Sprintf("%s %s %s · %s", e.ScheduledTime.In(loc).Format(format.ClockLayout), e.Platform.Icon(), e.Title, e.Status), width))
	}
	sections = append(sections, lipgloss.NewStyle().Padding(1, 1, 0, 1).Width(width).Render(strings.Join(lines, "\n")))

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(borderColor).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m calendarUIModel) renderStatus(state calendar.State) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if m.err != nil {
		return style.Foreground(errorColor).Render("🚨 " + m.err.Error())
	}
	if m.status != "" {
		return style.Render(m.status)
	}
	if len(state.Accounts) == 0 && state.Loaded {
		return style.Foreground(mutedColor).Render("No social accounts connected yet")
	}
	return ""
}

func (m calendarUIModel) renderHelp() string {
	keys := []bubbleKey.Binding{
		m.keymap.left, m.keymap.right, m.keymap.up, m.keymap.down,
		m.keymap.prevMonth, m.keymap.nextMonth, m.keymap.today,
		m.keymap.newItem, m.keymap.nextUpcoming, m.keymap.deleteItem,
		m.keymap.reload, m.keymap.quit,
	}

	style := lipgloss.NewStyle().
		Foreground(helpTextColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(borderColor)
	if m.width > 0 {
		style = style.Width(m.width)
	}

	return style.Render(m.help.ShortHelpView(keys))
}

func (m calendarUIModel) renderConfirmDelete() string {
	item := m.deleteTarget

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(calendar.DeleteConfirmMsg),
		"",
		fmt.Sprintf("%s %s %s", item.Platform.Icon(), item.ContentType.Icon(), item.Label()),
		lipgloss.NewStyle().Foreground(mutedColor).Render(format.DateTime(item.ScheduledTime.Time)),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("(y)es | (n)o"),
	)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(errorColor).
		Padding(1, 2).
		Margin(1, 2).
		Render(body)
}

func (m calendarUIModel) renderForm() string {
	f := m.form

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Schedule Content"), "")

	for field := 0; field < numFields; field++ {
		label := fieldLabels[field]
		labelStyle := lipgloss.NewStyle().Width(16)
		if field == f.focus {
			labelStyle = labelStyle.Bold(true).Foreground(accentColor)
		}

		var value string
		switch field {
		case fieldPlatform:
			value = "‹ " + format.PlatformLabel(shared.AllPlatforms[f.platformIdx]) + " ›"
		case fieldContentType:
			value = "‹ " + format.ContentTypeLabel(shared.AllContentTypes[f.contentTypeIdx]) + " ›"
		default:
			value = f.inputs[field].View()
		}

		lines = append(lines, labelStyle.Render(label)+value)
	}

	lines = append(lines, "")
	if f.submitting {
		lines = append(lines, m.spinner.View()+" Scheduling...")
	} else if f.err != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(errorColor).Render("🚨 "+f.err))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(mutedColor).Render("tab next field • ←/→ change • enter schedule • esc cancel"))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2).
		Margin(1, 2).
		Render(strings.Join(lines, "\n"))
}
