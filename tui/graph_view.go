// ABOUTME: Graph view for the TUI
// ABOUTME: Shows the DOT source of the selected account's stakeholder graph
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akshada2906/circle-insights/viz"
)

func (m Model) renderGraphView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("STAKEHOLDER GRAPH"))
	s.WriteString("\n\n")

	if m.graphDOT == "" {
		s.WriteString("Generating graph...\n")
	} else {
		s.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Render(m.graphDOT))
	}

	s.WriteString("\n\n")

	// Help
	s.WriteString(m.renderGraphHelp())

	return s.String()
}

func (m Model) renderGraphHelp() string {
	help := []string{
		"Esc: Back",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleGraphKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewDetail
		m.graphDOT = ""
	}

	return m, nil
}

func (m *Model) generateGraph() error {
	account, ok := m.accounts.GetByID(m.selectedID)
	if !ok {
		return fmt.Errorf("account %s is not loaded", m.selectedID)
	}

	dot, _, err := viz.StakeholderGraph(account, account.Projects, m.stakeholders.ByAccount(account.ID))
	if err != nil {
		return err
	}

	m.graphDOT = dot
	return nil
}
