package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
	"github.com/szabadkai/quarterback/internal/contract"
	"github.com/szabadkai/quarterback/internal/domain"
)

// dashboardData holds everything the dashboard renders: the capacity
// overview plus the full project list and member name lookup.
type dashboardData struct {
	overview *contract.CapacityResponse
	projects []*domain.Project
	names    map[string]string
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

type dashboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// dashboardModel is a single-screen TUI: capacity summary up top, a
// selectable project list on the left, detail for the selection on the
// right.
type dashboardModel struct {
	app     *App
	data    *dashboardData
	loading bool
	err     error

	cursor int
	width  int
}

func newDashboardModel(app *App) *dashboardModel {
	return &dashboardModel{app: app, loading: true}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()

		overview, err := app.Capacity.Overview(ctx, "")
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		projects, err := app.Projects.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		members, err := app.Team.ListMembers(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{data: dashboardData{
			overview: overview,
			projects: projects,
			names:    memberNameMap(members),
		}}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.data = &msg.data
		if m.cursor >= len(m.data.projects) {
			m.cursor = max(0, len(m.data.projects)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, dashboardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, dashboardKeys.Refresh):
			m.loading = true
			m.err = nil
			return m, m.loadData()
		case key.Matches(msg, dashboardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, dashboardKeys.Down):
			if m.data != nil && m.cursor < len(m.data.projects)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

const dashLeftPaneWidth = 40

func (m *dashboardModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.data == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + m.renderSummary())
	b.WriteString("\n\n")

	if len(m.data.projects) == 0 {
		b.WriteString("  " + formatter.Dim("No projects yet. Add one with \"quarterback project add\"."))
		b.WriteString("\n\n  " + m.renderHelp())
		return b.String()
	}

	leftPane := m.renderProjectList()
	rightPane := m.renderDetail()

	if m.width >= 80 {
		rightWidth := m.width - dashLeftPaneWidth - 5
		if rightWidth < 24 {
			rightWidth = 24
		}
		leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(leftPane)
		divider := formatter.StyleDim.Render("│")
		rightCol := lipgloss.NewStyle().Width(rightWidth).Render(rightPane)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  "+leftCol, divider+" ", rightCol))
	} else {
		b.WriteString(leftPane)
		b.WriteString("\n")
		b.WriteString(rightPane)
	}

	b.WriteString("\n\n  " + m.renderHelp())
	return b.String()
}

func (m *dashboardModel) renderSummary() string {
	o := m.data.overview
	r := o.Result
	return fmt.Sprintf("%s  %s net / %d theoretical  %s  %s",
		formatter.StyleHeader.Render(o.Quarter),
		formatter.StyleGreen.Render(fmt.Sprintf("%d", r.NetCapacity)),
		r.TheoreticalCapacity,
		formatter.FormatUtilization(o.UtilizationPct),
		formatter.UtilizationIndicator(o.Status),
	)
}

func (m *dashboardModel) renderProjectList() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("PROJECTS") + "\n\n")

	for i, p := range m.data.projects {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		name := p.Name
		if len(name) > 20 {
			name = name[:19] + "…"
		}

		marker := formatter.Dim("backlog")
		if !p.InBacklog() {
			marker = formatter.StyleGreen.Render("scheduled")
		}

		b.WriteString(fmt.Sprintf("%s%-20s %s %s\n",
			cursor,
			nameStyle.Render(name),
			formatter.StyleYellow.Render(fmt.Sprintf("%5.1f", p.ICEScore)),
			marker,
		))
	}

	return b.String()
}

func (m *dashboardModel) renderDetail() string {
	if m.cursor >= len(m.data.projects) {
		return formatter.Dim("Select a project to see details.")
	}
	p := m.data.projects[m.cursor]

	owner := ""
	if p.Owned() {
		owner = m.data.names[*p.OwnerID]
	}
	return formatter.FormatProjectDetail(p, owner)
}

func (m *dashboardModel) renderHelp() string {
	bindings := []key.Binding{
		dashboardKeys.Up,
		dashboardKeys.Down,
		dashboardKeys.Refresh,
		dashboardKeys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, kb.Help().Key+" "+kb.Help().Desc)
	}
	return formatter.Dim(strings.Join(parts, "  ·  "))
}
