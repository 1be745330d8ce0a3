package calendar_tui

import (
	"time"

	"socialcal/calendar"
	"socialcal/shared"

	"github.com/charmbracelet/bubbles/help"
	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type calendarUIModel struct {
	view    *calendar.View
	keymap  keymap
	help    help.Model
	spinner spinner.Model
	now     func() time.Time

	ready  bool
	width  int
	height int

	loading     bool
	upcomingIdx int

	confirmingDelete bool
	deleteTarget     *shared.ScheduledContent

	form *draftForm

	status string
	err    error

	// set when the session was rejected; the program exits with it
	fatalErr *shared.ApiError
}

type keymap = struct {
	up,
	down,
	left,
	right,
	prevMonth,
	nextMonth,
	today,
	newItem,
	deleteItem,
	nextUpcoming,
	prevUpcoming,
	reload,
	yes,
	no,
	quit bubbleKey.Binding
}

func (m calendarUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func initialModel(view *calendar.View) *calendarUIModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &calendarUIModel{
		view:    view,
		help:    help.New(),
		spinner: s,
		now:     view.Now,
		loading: true,
		keymap: keymap{
			up: bubbleKey.NewBinding(
				bubbleKey.WithKeys("up"),
				bubbleKey.WithHelp("↑", "prev week"),
			),
			down: bubbleKey.NewBinding(
				bubbleKey.WithKeys("down"),
				bubbleKey.WithHelp("↓", "next week"),
			),
			left: bubbleKey.NewBinding(
				bubbleKey.WithKeys("left"),
				bubbleKey.WithHelp("←", "prev day"),
			),
			right: bubbleKey.NewBinding(
				bubbleKey.WithKeys("right"),
				bubbleKey.WithHelp("→", "next day"),
			),
			prevMonth: bubbleKey.NewBinding(
				bubbleKey.WithKeys("["),
				bubbleKey.WithHelp("[", "prev month"),
			),
			nextMonth: bubbleKey.NewBinding(
				bubbleKey.WithKeys("]"),
				bubbleKey.WithHelp("]", "next month"),
			),
			today: bubbleKey.NewBinding(
				bubbleKey.WithKeys("t"),
				bubbleKey.WithHelp("t", "today"),
			),
			newItem: bubbleKey.NewBinding(
				bubbleKey.WithKeys("n"),
				bubbleKey.WithHelp("n", "schedule"),
			),
			deleteItem: bubbleKey.NewBinding(
				bubbleKey.WithKeys("d"),
				bubbleKey.WithHelp("d", "delete"),
			),
			nextUpcoming: bubbleKey.NewBinding(
				bubbleKey.WithKeys("j"),
				bubbleKey.WithHelp("j/k", "select upcoming"),
			),
			prevUpcoming: bubbleKey.NewBinding(
				bubbleKey.WithKeys("k"),
			),
			reload: bubbleKey.NewBinding(
				bubbleKey.WithKeys("r"),
				bubbleKey.WithHelp("r", "reload"),
			),
			yes: bubbleKey.NewBinding(
				bubbleKey.WithKeys("y"),
				bubbleKey.WithHelp("y", "yes"),
			),
			no: bubbleKey.NewBinding(
				bubbleKey.WithKeys("n", "esc"),
				bubbleKey.WithHelp("n", "no"),
			),
			quit: bubbleKey.NewBinding(
				bubbleKey.WithKeys("q", "ctrl+c"),
				bubbleKey.WithHelp("q", "quit"),
			),
		},
	}
}

func (m calendarUIModel) selectedUpcoming() *shared.ScheduledContent {
	upcoming := m.view.State().Upcoming()
	if len(upcoming) == 0 {
		return nil
	}
	idx := m.upcomingIdx
	if idx >= len(upcoming) {
		idx = len(upcoming) - 1
	}
	return upcoming[idx]
}
