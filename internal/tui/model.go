// Package tui is the interactive Bubble Tea front end.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/noanitzan/my-keeps/internal/keeps"
	"github.com/noanitzan/my-keeps/internal/ui"
)

type screen int

const (
	screenHome screen = iota
	screenDomain
)

type formKind int

const (
	formAddItem formKind = iota
	formNewFolder
)

// shareExpiredMsg clears the "shared" flash unless a newer share replaced it.
type shareExpiredMsg struct{ seq int }

// Model is the whole app: a home list of domains and one domain browser.
type Model struct {
	sources []source
	sharer  keeps.Sharer
	flash   time.Duration

	screen screen
	home   list.Model
	list   list.Model
	active source
	folder string // "" is the root view

	form      *form
	formKind  formKind
	confirmID     string // row waiting for y/n
	confirmFolder bool
	status    string

	shared   string
	shareSeq int

	width, height int
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	folderBind = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new folder"))
	deleteBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	shareBind  = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share"))
	openBind   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	backBind   = key.NewBinding(key.WithKeys("backspace", "left"), key.WithHelp("⌫", "back"))
)

// New builds the model over l. The library must already be initialized.
func New(l *keeps.Library, sharer keeps.Sharer) Model {
	m := Model{
		sources: Sources(l),
		sharer:  sharer,
		flash:   keeps.ShareFlash,
		width:   80,
		height:  24,
	}

	m.home = list.New(nil, homeDelegate{}, m.width-4, m.height-4)
	m.home.Title = "My Keeps"
	m.home.Styles.Title = ui.TitleStyle
	m.home.SetShowStatusBar(false)
	m.home.SetFilteringEnabled(false)
	m.refreshHome()

	m.list = list.New(nil, rowDelegate{}, m.width-4, m.height-4)
	m.list.Styles.Title = ui.TitleStyle
	m.list.Styles.HelpStyle = ui.HelpStyle
	m.list.Styles.PaginationStyle = ui.HelpStyle
	m.list.FilterInput.Prompt = "/ "
	m.list.SetStatusBarItemName("entry", "entries")
	extra := func() []key.Binding {
		return []key.Binding{openBind, backBind, addBind, folderBind, deleteBind, shareBind}
	}
	m.list.AdditionalShortHelpKeys = extra
	m.list.AdditionalFullHelpKeys = extra
	return m
}

func (m *Model) refreshHome() {
	rows := make([]list.Item, 0, len(m.sources))
	for i, s := range m.sources {
		d := s.Domain()
		rows = append(rows, homeRow{idx: i, title: d.Title, blurb: d.Blurb, count: s.Count()})
	}
	m.home.SetItems(rows)
}

func (m *Model) refreshList() {
	d := m.active.Domain()
	title := d.Title
	if m.folder != "" {
		name, ok := m.active.FolderName(m.folder)
		if !ok {
			name = "?"
		}
		title = d.Title + " / " + name
	}
	m.list.Title = title
	idx := m.list.Index()
	m.list.SetItems(m.active.Rows(m.folder))
	if n := len(m.list.Items()); idx >= n && n > 0 {
		idx = n - 1
	}
	m.list.Select(idx)
}

func (m *Model) open(s source) {
	m.active = s
	m.folder = ""
	m.screen = screenDomain
	m.status = ""
	m.list.ResetSelected()
	m.refreshList()
}

func (m *Model) enterFolder(id string) {
	m.folder = id
	m.status = ""
	m.list.ResetSelected()
	m.refreshList()
}

func (m *Model) back() {
	m.status = ""
	if m.folder != "" {
		m.folder = ""
		m.list.ResetSelected()
		m.refreshList()
		return
	}
	m.screen = screenHome
	m.active = nil
	m.refreshHome()
}

func (m Model) selected() (row, bool) {
	r, ok := m.list.SelectedItem().(row)
	return r, ok
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.home.SetSize(msg.Width-4, msg.Height-4)
		m.list.SetSize(msg.Width-4, m.listHeight())
		return m, nil
	case shareExpiredMsg:
		if msg.seq == m.shareSeq {
			m.shared = ""
			m.list.SetDelegate(rowDelegate{})
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.screen == screenHome {
		return m.updateHome(msg)
	}
	return m.updateDomain(msg)
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter", "right":
			if h, ok := m.home.SelectedItem().(homeRow); ok {
				m.open(m.sources[h.idx])
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.home, cmd = m.home.Update(msg)
	return m, cmd
}

func (m Model) updateDomain(msg tea.Msg) (tea.Model, tea.Cmd) {
	// form mode
	if m.form != nil {
		res, cmd := m.form.update(msg)
		switch res {
		case formCancelled:
			m.form = nil
			m.list.SetSize(m.width-4, m.listHeight())
			return m, nil
		case formSubmitted:
			var err error
			if m.formKind == formNewFolder {
				err = m.active.CreateFolder(m.form.values()["name"])
			} else {
				err = m.active.Add(m.form.values(), m.folder)
			}
			if err != nil {
				m.form.err = errText(err)
				return m, nil
			}
			m.form = nil
			m.list.SetSize(m.width-4, m.listHeight())
			m.refreshList()
			return m, nil
		}
		return m, cmd
	}

	// delete confirmation
	if m.confirmID != "" {
		if k, ok := msg.(tea.KeyMsg); ok {
			if k.String() == "y" {
				if m.confirmFolder {
					m.active.DeleteFolder(m.confirmID)
					m.status = "folder deleted"
				} else {
					m.active.DeleteItem(m.confirmID)
					m.status = "deleted"
				}
				m.refreshList()
			} else {
				m.status = ""
			}
			m.confirmID = ""
		}
		return m, nil
	}

	// let the list own keys while filtering
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			m.back()
			return m, nil
		case "backspace", "left":
			m.back()
			return m, nil
		case "enter", "right":
			if r, ok := m.selected(); ok && r.folder {
				m.enterFolder(r.id)
			}
			return m, nil
		case "a":
			m.form = newForm("Add to "+m.list.Title, m.active.Fields())
			m.formKind = formAddItem
			m.list.SetSize(m.width-4, m.listHeight())
			return m, nil
		case "n":
			if m.folder != "" {
				m.status = "folders live at the top level"
				return m, nil
			}
			m.form = newForm("New folder", []keeps.Field{{Name: "name", Label: "Folder name", Required: true}})
			m.formKind = formNewFolder
			m.list.SetSize(m.width-4, m.listHeight())
			return m, nil
		case "d":
			r, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.confirmID, m.confirmFolder = r.id, r.folder
			if r.folder {
				m.status = fmt.Sprintf("Delete folder %q and all its contents? y/n", r.text)
			} else {
				m.status = fmt.Sprintf("Delete %q? y/n", r.text)
			}
			return m, nil
		case "s":
			r, ok := m.selected()
			if !ok {
				return m, nil
			}
			link, copied := m.sharer.Share(m.active.Domain().Name, r.id)
			if copied {
				m.status = "copied " + link
			} else {
				m.status = link
			}
			m.shared = r.id
			m.shareSeq++
			m.list.SetDelegate(rowDelegate{shared: r.id})
			seq := m.shareSeq
			return m, tea.Tick(m.flash, func(time.Time) tea.Msg { return shareExpiredMsg{seq: seq} })
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) listHeight() int {
	h := m.height - 4
	if m.form != nil {
		h -= 3 + 2*len(m.form.fields)
	}
	return max(h, 3)
}

func (m Model) View() string {
	if m.screen == screenHome {
		return ui.PanelStyle.Render(m.home.View())
	}
	content := m.list.View()
	if m.form != nil {
		content += "\n" + m.form.view()
	}
	if m.status != "" {
		style := ui.MutedStyle
		if m.confirmID != "" {
			style = ui.ErrorStyle
		} else if m.shared != "" {
			style = ui.SuccessStyle
		}
		content += "\n" + style.Render(m.status)
	}
	return ui.PanelStyle.Render(lipgloss.NewStyle().MaxWidth(max(m.width-4, 20)).Render(content))
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(l *keeps.Library, sharer keeps.Sharer) error {
	if ui.Mono() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	p := tea.NewProgram(New(l, sharer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
