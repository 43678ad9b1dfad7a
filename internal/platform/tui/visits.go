package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starlinks/internal/storage"
)

// VisitsView selects what the browser lists.
type VisitsView int

const (
	ViewRecent VisitsView = iota // Individual activations, newest first
	ViewByTag                    // Totals per tag
)

// VisitsKeyMap defines the key bindings for the visits browser.
type VisitsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k VisitsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k VisitsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

// DefaultVisitsKeyMap returns default key bindings.
func DefaultVisitsKeyMap() VisitsKeyMap {
	return VisitsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/by tag"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// VisitsModel is the Bubble Tea model for browsing the visit log.
type VisitsModel struct {
	store    *storage.Store
	limit    int
	view     VisitsView
	visits   []storage.Visit
	counts   []storage.VisitCount
	err      error
	table    table.Model
	help     help.Model
	keys     VisitsKeyMap
	width    int
	height   int
	quitting bool
}

// NewVisitsModel creates a browser showing up to limit recent visits.
func NewVisitsModel(store *storage.Store, limit, width, height int) VisitsModel {
	h := help.New()
	h.Width = width

	m := VisitsModel{
		store:  store,
		limit:  limit,
		keys:   DefaultVisitsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads both views from the store.
func (m *VisitsModel) load() {
	if m.store == nil {
		return
	}
	m.visits, m.err = m.store.RecentVisits(m.limit)
	if m.err != nil {
		return
	}
	m.counts, m.err = m.store.VisitCounts()
}

// createTable creates a table with columns for the current view.
func (m *VisitsModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case ViewByTag:
		columns = []table.Column{
			{Title: "Tag", Width: 14},
			{Title: "Visits", Width: 8},
			{Title: "Last", Width: 14},
		}
	default:
		urlWidth := max(m.width-14-8-14-12, 20)
		columns = []table.Column{
			{Title: "When", Width: 14},
			{Title: "Tag", Width: 14},
			{Title: "Host", Width: 8},
			{Title: "URL", Width: urlWidth},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded data.
func (m *VisitsModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case ViewByTag:
		rows = make([]table.Row, len(m.counts))
		for i, c := range m.counts {
			rows[i] = table.Row{c.Tag, fmt.Sprintf("%d", c.Count), c.LastVisit.Format("Jan 02 15:04")}
		}
	default:
		rows = make([]table.Row, len(m.visits))
		for i, v := range m.visits {
			rows[i] = table.Row{v.CreatedAt.Format("Jan 02 15:04"), v.Tag, v.Host, v.URL}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Rows returns the number of rows in the current view.
func (m VisitsModel) Rows() int {
	return len(m.table.Rows())
}

// Mode returns the current view mode.
func (m VisitsModel) Mode() VisitsView {
	return m.view
}

// Init initializes the visits model.
func (m VisitsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the visits browser.
func (m VisitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.view == ViewRecent {
				m.view = ViewByTag
			} else {
				m.view = ViewRecent
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the visits browser.
func (m VisitsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "VISITS - recent"
	if m.view == ViewByTag {
		title = "VISITS - by tag"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		b.WriteString(tableStyle.Render("Could not read the visit log:\n" + m.err.Error()))
	case m.Rows() == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No links visited yet.\nShoot a target to open one!")))
	default:
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunVisits runs the visits browser.
func RunVisits(store *storage.Store, limit, width, height int) error {
	p := tea.NewProgram(
		NewVisitsModel(store, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
