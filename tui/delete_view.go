// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Confirms and performs account deletion, which also drops its local projects
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

func (m Model) renderConfirmDeleteView() string {
	name := m.selectedID
	projects := 0
	if account, ok := m.accounts.GetByID(m.selectedID); ok {
		name = account.Name
		projects = len(account.Projects)
	}

	title := criticalStyle.Render("⚠  DELETE CONFIRMATION  ⚠")
	message := "Are you sure you want to delete this account?"
	entityInfo := fmt.Sprintf("\nACCOUNT: %s\n", name)
	warning := "\nThis action cannot be undone!"
	if projects > 0 {
		warning = fmt.Sprintf("\nIts %d project(s) will be removed too.\nThis action cannot be undone!", projects)
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		confirmButtonStyle.Render("Yes, Delete (y)"),
		cancelButtonStyle.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		entityInfo,
		warning,
		"",
		buttons,
	)

	box := confirmBoxStyle.Render(content)

	// Center the box on screen
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.performDelete(m.selectedID)
	case "n", "N", "esc":
		// Cancel delete
		m.viewMode = ViewDetail
	}

	return m, nil
}

func (m Model) performDelete(id string) tea.Cmd {
	return func() tea.Msg {
		ok := m.accounts.Delete(m.ctx, id)
		return deletedMsg{ok: ok, id: id, message: m.takeError()}
	}
}
