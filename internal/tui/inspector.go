// Package tui is an interactive inspector for built symbolic models:
// browse augmented states, see their concrete coordinates, and walk the
// outgoing transitions input by input.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hysym/internal/symbolic"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type pane int

const (
	paneStates pane = iota
	paneEdges
)

type model struct {
	sym  *symbolic.Model
	name string

	states []int
	cursor int
	offset int

	edges table.Model
	focus pane

	width  int
	height int
}

// NewInspector builds the inspector over a finished model.
func NewInspector(name string, sym *symbolic.Model) tea.Model {
	cols := []table.Column{
		{Title: "input", Width: 7},
		{Title: "label", Width: 20},
		{Title: "targets", Width: 40},
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithHeight(12),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(lipgloss.Color("86"))
	st.Selected = st.Selected.Foreground(lipgloss.Color("220"))
	t.SetStyles(st)

	m := model{
		sym:    sym,
		name:   name,
		states: sym.EnumStates(),
		edges:  t,
		width:  80,
		height: 24,
	}
	m.reloadEdges()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.focus == paneStates {
			m.focus = paneEdges
			m.edges.Focus()
		} else {
			m.focus = paneStates
			m.edges.Blur()
		}
		return m, nil
	}

	if m.focus == paneEdges {
		var cmd tea.Cmd
		m.edges, cmd = m.edges.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.states)-1 {
			m.cursor++
		}
	case "pgup":
		m.cursor -= m.pageSize()
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "pgdown":
		m.cursor += m.pageSize()
		if m.cursor >= len(m.states) {
			m.cursor = len(m.states) - 1
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.states) - 1
	}
	m.clampOffset()
	m.reloadEdges()
	return m, nil
}

func (m *model) pageSize() int {
	n := m.height - 10
	if n < 1 {
		n = 1
	}
	return n
}

func (m *model) clampOffset() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

func (m *model) reloadEdges() {
	if len(m.states) == 0 {
		m.edges.SetRows(nil)
		return
	}
	s := m.states[m.cursor]
	if _, err := m.sym.Augmented(s); err != nil {
		m.edges.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0)
	for g := 1; g <= m.sym.NumInputs(); g++ {
		targets := m.sym.Targets(s, g)
		if len(targets) == 0 {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", g),
			m.sym.Inputs().Label(g),
			formatTargets(targets),
		})
	}
	m.edges.SetRows(rows)
}

func formatTargets(targets []int) string {
	parts := make([]string, 0, len(targets))
	for _, t := range targets {
		parts = append(parts, fmt.Sprintf("%d", t))
		if len(parts) == 8 {
			parts = append(parts, "...")
			break
		}
	}
	return strings.Join(parts, " ")
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render(fmt.Sprintf("%s  ", m.name)))
	b.WriteString(dim.Render(fmt.Sprintf("%d states, %d inputs, %d transitions",
		m.sym.NumStates(), m.sym.NumInputs(), m.sym.TransitionCount())))
	b.WriteString("\n\n")

	page := m.pageSize()
	end := m.offset + page
	if end > len(m.states) {
		end = len(m.states)
	}
	for i := m.offset; i < end; i++ {
		s := m.states[i]
		line := m.stateLine(s)
		if i == m.cursor {
			b.WriteString(yellow.Render("> " + line))
		} else {
			b.WriteString(white.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.edges.View())
	b.WriteString("\n")
	b.WriteString(dim.Render("j/k move  tab switch pane  g/G jump  q quit"))
	return b.String()
}

func (m model) stateLine(s int) string {
	aug, err := m.sym.Augmented(s)
	if err != nil {
		return fmt.Sprintf("%d ?", s)
	}
	x, tau, k, err := m.sym.ConcreteState(s)
	if err != nil {
		return fmt.Sprintf("%d %s", s, aug)
	}
	coords := make([]string, len(x))
	for i, v := range x {
		coords[i] = fmt.Sprintf("%.3f", v)
	}
	return fmt.Sprintf("%-6d %s  mode=%d tau=%.3f  x=[%s]",
		s, aug, k, tau, strings.Join(coords, " "))
}

// Run starts the inspector program in the alternate screen.
func Run(name string, sym *symbolic.Model) error {
	p := tea.NewProgram(NewInspector(name, sym), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
