package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noanitzan/my-keeps/internal/keeps"
	"github.com/noanitzan/my-keeps/internal/ui"
)

// form is the modal add/new-folder bar: one text input per field.
type form struct {
	title  string
	fields []keeps.Field
	inputs []textinput.Model
	focus  int
	err    string
}

type formResult int

const (
	formEditing formResult = iota
	formSubmitted
	formCancelled
)

func newForm(title string, fields []keeps.Field) *form {
	f := &form{title: title, fields: fields}
	for _, fd := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fd.Label
		if !fd.Required {
			ti.Placeholder += " (optional)"
		}
		ti.CharLimit = 2000
		f.inputs = append(f.inputs, ti)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) values() keeps.Values {
	v := keeps.Values{}
	for i, fd := range f.fields {
		v[fd.Name] = f.inputs[i].Value()
	}
	return v
}

func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// update returns formSubmitted on enter in the last field.
func (f *form) update(msg tea.Msg) (formResult, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return formCancelled, nil
		case "tab", "down":
			return formEditing, f.move(1)
		case "shift+tab", "up":
			return formEditing, f.move(-1)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return formEditing, f.move(1)
			}
			return formSubmitted, nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formEditing, cmd
}

func (f *form) view() string {
	title := f.title
	if f.err != "" {
		title += " — " + ui.ErrorStyle.Render(f.err)
	}
	lines := []string{title}
	for i, fd := range f.fields {
		label := fd.Label
		if fd.Required {
			label += "*"
		}
		lines = append(lines, ui.MutedStyle.Render(label), f.inputs[i].View())
	}
	lines = append(lines, ui.HelpStyle.Render("tab next • enter save • esc cancel"))
	return ui.PanelStyle.Render(strings.Join(lines, "\n"))
}

// errText strips the sentinel prefix for display.
func errText(err error) string {
	msg := err.Error()
	if s, ok := strings.CutPrefix(msg, keeps.ErrRejected.Error()+": "); ok {
		msg = s
	}
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
