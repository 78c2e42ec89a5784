// Package tui provides an interactive terminal browser for previewing
// generated scenarios before they are exported.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"scenforge/internal/export"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusedStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("12"))
	blurredStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type focusArea int

const (
	focusTable focusArea = iota
	focusBriefing
)

type browserModel struct {
	docs  []export.Document
	idx   int
	table table.Model
	vp    viewport.Model
	focus focusArea

	width  int
	height int
	ready  bool
}

func newBrowserModel(docs []export.Document) browserModel {
	cols := []table.Column{
		{Title: "ID", Width: 24},
		{Title: "Objective", Width: 44},
		{Title: "Flags", Width: 18},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(true))
	vp := viewport.New(0, 0)
	m := browserModel{docs: docs, table: t, vp: vp}
	m.rebuild()
	return m
}

// rebuild refreshes the table rows and briefing viewport for the current
// scenario.
func (m *browserModel) rebuild() {
	if len(m.docs) == 0 {
		return
	}
	s := m.docs[m.idx].Scenario

	rows := make([]table.Row, 0, len(s.Objectives))
	for _, o := range s.Objectives {
		var flags []string
		if o.Optional {
			flags = append(flags, "optional")
		}
		if o.Hidden {
			flags = append(flags, "hidden")
		}
		if o.RevealedBy != "" {
			flags = append(flags, "revealed")
		}
		rows = append(rows, table.Row{o.ID, o.Description, strings.Join(flags, ",")})
	}
	m.table.SetRows(rows)
	m.table.SetHeight(len(rows) + 1)

	var b strings.Builder
	b.WriteString(s.Briefing)
	b.WriteString("\n\n")
	b.WriteString("Doom events:\n")
	for _, ev := range s.DoomEvents {
		b.WriteString(fmt.Sprintf("  at %2d: %s\n", ev.Threshold, ev.Message))
	}
	if len(s.DefeatConditions) > 0 {
		b.WriteString("\nDefeat:\n")
		for _, d := range s.DefeatConditions {
			b.WriteString(fmt.Sprintf("  %s\n", d.Description))
		}
	}
	width := m.vp.Width
	if width <= 0 {
		width = 80
	}
	m.vp.SetContent(wordwrap.String(b.String(), width))
	m.vp.GotoTop()
}

func (m browserModel) Init() tea.Cmd { return nil }

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width - 2)
		m.vp.Width = msg.Width - 2
		m.vp.Height = msg.Height - m.table.Height() - 8
		if m.vp.Height < 3 {
			m.vp.Height = 3
		}
		m.ready = true
		m.rebuild()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.focus == focusTable {
				m.focus = focusBriefing
				m.table.Blur()
			} else {
				m.focus = focusTable
				m.table.Focus()
			}
		case "left", "h":
			if m.idx > 0 {
				m.idx--
				m.rebuild()
			}
		case "right", "l":
			if m.idx < len(m.docs)-1 {
				m.idx++
				m.rebuild()
			}
		default:
			var cmd tea.Cmd
			if m.focus == focusTable {
				m.table, cmd = m.table.Update(msg)
			} else {
				m.vp, cmd = m.vp.Update(msg)
			}
			return m, cmd
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	if len(m.docs) == 0 {
		return "no scenarios loaded\n"
	}
	s := m.docs[m.idx].Scenario

	header := headerStyle.Render(s.Title)
	meta := metaStyle.Render(fmt.Sprintf("%d/%d | %s | %s | doom %d | seed %d",
		m.idx+1, len(m.docs), s.Difficulty, s.VictoryType, s.StartDoom, s.Seed))

	tableStyle := blurredStyle
	briefStyle := focusedStyle
	if m.focus == focusTable {
		tableStyle = focusedStyle
		briefStyle = blurredStyle
	}

	help := helpStyle.Render("tab: switch pane | left/right: scenario | up/down: scroll | q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		meta,
		tableStyle.Render(m.table.View()),
		briefStyle.Render(m.vp.View()),
		help,
	)
}

// Run opens the scenario browser over the given documents and blocks until
// the user quits.
func Run(docs []export.Document) error {
	p := tea.NewProgram(newBrowserModel(docs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
