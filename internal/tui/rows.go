package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noanitzan/my-keeps/internal/ui"
)

// row adapts a folder or an item to bubbles/list.Item
type row struct {
	id     string
	text   string
	folder bool
}

func (r row) Title() string       { return r.text }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.text }

// Custom delegate to control how rows render (single line)
type rowDelegate struct {
	shared string // id currently flashing "shared"
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := ui.Current()
	text := ui.Truncate(r.text, max(m.Width()-8, 10))
	line := ui.MutedStyle.Render(t.SymItem) + " " + text
	if r.folder {
		line = ui.FolderStyle.Render(t.SymFolder+" "+text) + ui.MutedStyle.Render("/")
	}
	if d.shared != "" && d.shared == r.id {
		line += "  " + ui.SuccessStyle.Render(t.SymShared+" link copied")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// homeRow is one domain card on the home screen.
type homeRow struct {
	idx   int
	title string
	blurb string
	count int
}

func (h homeRow) Title() string       { return h.title }
func (h homeRow) Description() string { return h.blurb }
func (h homeRow) FilterValue() string { return h.title }

type homeDelegate struct{}

func (d homeDelegate) Height() int                               { return 2 }
func (d homeDelegate) Spacing() int                              { return 1 }
func (d homeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d homeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	h, ok := item.(homeRow)
	if !ok {
		return
	}
	prefix := "  "
	title := ui.TitleStyle.Render(h.title)
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	count := ui.MutedStyle.Render(fmt.Sprintf("(%d)", h.count))
	fmt.Fprintf(w, "%s%s %s\n%s%s", prefix, title, count, strings.Repeat(" ", 2), ui.MutedStyle.Render(h.blurb))
}
