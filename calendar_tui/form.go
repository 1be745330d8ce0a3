package calendar_tui

import (
	"strings"
	"time"

	"socialcal/calendar"
	"socialcal/shared"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldPlatform = iota
	fieldContentType
	fieldTitle
	fieldCaption
	fieldHashtags
	fieldScheduled
	numFields
)

var fieldLabels = []string{"Platform", "Content type", "Title", "Caption", "Hashtags", "Scheduled time"}

// draftForm edits a calendar.Draft. Platform and content type cycle through
// their fixed values; the rest are free text.
type draftForm struct {
	focus          int
	platformIdx    int
	contentTypeIdx int
	inputs         map[int]*textinput.Model
	err            string
	submitting     bool
}

func newDraftForm(d calendar.Draft, selected time.Time) *draftForm {
	f := &draftForm{inputs: map[int]*textinput.Model{}}

	for i, p := range shared.AllPlatforms {
		if p == d.Platform {
			f.platformIdx = i
		}
	}
	for i, c := range shared.AllContentTypes {
		if c == d.ContentType {
			f.contentTypeIdx = i
		}
	}

	values := map[int]string{
		fieldTitle:     d.Title,
		fieldCaption:   d.Caption,
		fieldHashtags:  d.Hashtags,
		fieldScheduled: d.ScheduledLocal,
	}
	placeholders := map[int]string{
		fieldTitle:     "optional",
		fieldCaption:   "optional",
		fieldHashtags:  "#optional",
		fieldScheduled: selected.Format("2006-01-02") + "T09:00",
	}

	for field := fieldTitle; field < numFields; field++ {
		in := textinput.New()
		in.Placeholder = placeholders[field]
		in.SetValue(values[field])
		in.Width = 40
		if field == fieldCaption {
			in.CharLimit = 2200
		}
		f.inputs[field] = &in
	}

	return f
}

func (f *draftForm) draft() calendar.Draft {
	d := calendar.NewDraft()
	d.Platform = shared.AllPlatforms[f.platformIdx]
	d.ContentType = shared.AllContentTypes[f.contentTypeIdx]
	d.Title = f.inputs[fieldTitle].Value()
	d.Caption = f.inputs[fieldCaption].Value()
	d.Hashtags = f.inputs[fieldHashtags].Value()
	d.ScheduledLocal = strings.TrimSpace(f.inputs[fieldScheduled].Value())
	return d
}

func (f *draftForm) setFocus(field int) tea.Cmd {
	f.focus = (field + numFields) % numFields

	var cmd tea.Cmd
	for i, in := range f.inputs {
		if i == f.focus {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (f *draftForm) cycle(delta int) {
	switch f.focus {
	case fieldPlatform:
		n := len(shared.AllPlatforms)
		f.platformIdx = (f.platformIdx + delta + n) % n
	case fieldContentType:
		n := len(shared.AllContentTypes)
		f.contentTypeIdx = (f.contentTypeIdx + delta + n) % n
	}
}

func (f *draftForm) update(msg tea.Msg) tea.Cmd {
	in, ok := f.inputs[f.focus]
	if !ok {
		return nil
	}
	updated, cmd := in.Update(msg)
	*in = updated
	return cmd
}
