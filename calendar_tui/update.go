package calendar_tui

import (
	"errors"
	"fmt"
	"log"

	"socialcal/calendar"
	"socialcal/shared"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type loadedMsg struct {
	err error
}

type createdMsg struct {
	item *shared.ScheduledContent
	err  error
}

type deletedMsg struct {
	item *shared.ScheduledContent
	err  error
}

func (m calendarUIModel) load() tea.Cmd {
	view := m.view
	return func() tea.Msg {
		return loadedMsg{err: view.Load()}
	}
}

func (m calendarUIModel) create() tea.Cmd {
	view := m.view
	return func() tea.Msg {
		item, err := view.Create()
		return createdMsg{item: item, err: err}
	}
}

func (m calendarUIModel) delete(item *shared.ScheduledContent) tea.Cmd {
	view := m.view
	return func() tea.Msg {
		// the user already answered the y/n prompt
		_, err := view.Delete(item.ScheduleId, func() bool { return true })
		return deletedMsg{item: item, err: err}
	}
}

func (m calendarUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		if m.handleErr(msg.err) {
			return m, tea.Quit
		}
		if msg.err == nil {
			m.err = nil
		}
		m.clampUpcoming()

	case createdMsg:
		if msg.item == nil {
			if m.form != nil {
				m.form.submitting = false
			}
			if m.handleFormErr(msg.err) {
				return m, tea.Quit
			}
			return m, nil
		}

		m.form = nil
		m.status = fmt.Sprintf("✅ Scheduled %s", msg.item.Label())

		// created, but the reload afterwards failed
		if m.handleErr(msg.err) {
			return m, tea.Quit
		}

	case deletedMsg:
		m.loading = false
		if m.handleErr(msg.err) {
			return m, tea.Quit
		}
		if msg.err == nil {
			m.status = fmt.Sprintf("🗑️  Deleted %s", msg.item.Label())
		}
		m.clampUpcoming()

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}

		if m.confirmingDelete {
			return m.updateConfirmDelete(msg)
		}

		return m.updateCalendar(msg)
	}

	return m, nil
}

func (m calendarUIModel) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case bubbleKey.Matches(msg, m.keymap.quit):
		return m, tea.Quit

	case bubbleKey.Matches(msg, m.keymap.left):
		return m.moveSelection(-1)

	case bubbleKey.Matches(msg, m.keymap.right):
		return m.moveSelection(1)

	case bubbleKey.Matches(msg, m.keymap.up):
		return m.moveSelection(-7)

	case bubbleKey.Matches(msg, m.keymap.down):
		return m.moveSelection(7)

	case bubbleKey.Matches(msg, m.keymap.prevMonth):
		m.view.PrevMonth()
		return m.reload()

	case bubbleKey.Matches(msg, m.keymap.nextMonth):
		m.view.NextMonth()
		return m.reload()

	case bubbleKey.Matches(msg, m.keymap.today):
		before := m.view.State().Month
		m.view.Today()
		if !before.Equal(m.view.State().Month) {
			return m.reload()
		}

	case bubbleKey.Matches(msg, m.keymap.reload):
		return m.reload()

	case bubbleKey.Matches(msg, m.keymap.nextUpcoming):
		m.upcomingIdx++
		m.clampUpcoming()

	case bubbleKey.Matches(msg, m.keymap.prevUpcoming):
		m.upcomingIdx--
		m.clampUpcoming()

	case bubbleKey.Matches(msg, m.keymap.newItem):
		m.view.OpenModal()
		s := m.view.State()
		m.form = newDraftForm(s.Draft, s.Selected)
		return m, m.form.setFocus(fieldPlatform)

	case bubbleKey.Matches(msg, m.keymap.deleteItem):
		item := m.selectedUpcoming()
		if item == nil {
			m.status = "Nothing to delete"
			return m, nil
		}
		m.confirmingDelete = true
		m.deleteTarget = item
	}

	return m, nil
}

func (m calendarUIModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case bubbleKey.Matches(msg, m.keymap.yes):
		m.confirmingDelete = false
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.delete(m.deleteTarget))

	case bubbleKey.Matches(msg, m.keymap.no):
		m.confirmingDelete = false
		m.deleteTarget = nil

	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

func (m calendarUIModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.view.SetDraft(m.form.draft())
		m.view.CloseModal()
		m.form = nil
		return m, nil

	case "tab", "down":
		return m, m.form.setFocus(m.form.focus + 1)

	case "shift+tab", "up":
		return m, m.form.setFocus(m.form.focus - 1)

	case "left":
		if m.form.focus == fieldPlatform || m.form.focus == fieldContentType {
			m.form.cycle(-1)
			return m, nil
		}

	case "right":
		if m.form.focus == fieldPlatform || m.form.focus == fieldContentType {
			m.form.cycle(1)
			return m, nil
		}

	case "enter":
		m.form.err = ""
		m.form.submitting = true
		m.view.SetDraft(m.form.draft())
		return m, m.create()
	}

	return m, m.form.update(msg)
}

func (m calendarUIModel) moveSelection(days int) (tea.Model, tea.Cmd) {
	if m.view.MoveSelection(days) {
		return m.reload()
	}
	return m, nil
}

func (m calendarUIModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.load())
}

// handleErr records a failed load or mutation. It reports whether the
// program should exit because the session is gone.
func (m *calendarUIModel) handleErr(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *shared.ApiError
	if errors.As(err, &apiErr) && shared.IsUnauthorized(apiErr) {
		m.fatalErr = apiErr
		return true
	}

	log.Printf("calendar error: %v\n", err)
	m.err = err
	return false
}

func (m *calendarUIModel) handleFormErr(err error) bool {
	if m.form == nil || err == nil {
		return m.handleErr(err)
	}

	if errors.Is(err, calendar.ErrMissingTime) {
		m.form.err = err.Error()
		return false
	}

	var apiErr *shared.ApiError
	if errors.As(err, &apiErr) {
		if shared.IsUnauthorized(apiErr) {
			m.fatalErr = apiErr
			return true
		}
		m.form.err = fmt.Sprintf("%s: %s", calendar.CreateFailedMsg, apiErr.Msg)
		return false
	}

	m.form.err = err.Error()
	return false
}

func (m *calendarUIModel) clampUpcoming() {
	n := len(m.view.State().Upcoming())
	if m.upcomingIdx >= n {
		m.upcomingIdx = n - 1
	}
	if m.upcomingIdx < 0 {
		m.upcomingIdx = 0
	}
}
