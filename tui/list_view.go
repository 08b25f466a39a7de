// ABOUTME: Account list view for the TUI
// ABOUTME: Renders the portfolio table with store state and shortfall and health bands
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Akshada2906/circle-insights/store"
)

var printer = message.NewPrinter(language.English)

func (m Model) renderListView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("CIRCLE INSIGHTS"))
	s.WriteString("\n")
	s.WriteString(m.renderState())
	s.WriteString("\n\n")

	// Table
	s.WriteString(m.renderAccountsTable())
	s.WriteString("\n")

	if m.status != "" {
		if m.statusLevel == store.LevelError {
			s.WriteString(criticalStyle.Render("✗ " + m.status))
		} else {
			s.WriteString(goodStyle.Render("✓ " + m.status))
		}
		s.WriteString("\n")
	}

	// Help
	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderState() string {
	switch m.accounts.State() {
	case store.StateLoading:
		return warningStyle.Render("Loading accounts...")
	case store.StateError:
		msg := "Error"
		if err := m.accounts.Err(); err != nil {
			msg = "Error: " + err.Error()
		}
		return criticalStyle.Render(msg)
	case store.StateReady:
		return goodStyle.Render(fmt.Sprintf("Ready • %d account(s)", len(m.accounts.Accounts())))
	}
	return helpStyle.Render("Not loaded")
}

func (m Model) renderAccountsTable() string {
	accounts := m.accounts.Accounts()

	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Focus", Width: 9},
		{Title: "Owner", Width: 14},
		{Title: "Target", Width: 12},
		{Title: "Forecast", Width: 12},
		{Title: "Shortfall", Width: 18},
		{Title: "Health", Width: 10},
	}

	var rows []table.Row
	for _, a := range accounts {
		rows = append(rows, table.Row{
			a.Name,
			a.Focus,
			a.Owner,
			printer.Sprintf("%.0f", a.Target2026),
			printer.Sprintf("%.0f", a.Forecast2026),
			fmt.Sprintf("%.0f%% %s", a.ShortfallPercent(), a.ShortfallStatus()),
			fmt.Sprintf("%.0f %s", a.HealthScore, a.HealthStatus()),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(5, m.height-10)),
	)

	// Set selected row
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Enter: View details",
		"r: Refresh",
		"n: New",
		"d: Delete",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.accounts.Accounts())

	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case "r":
		m.status = ""
		return m, m.refresh()
	case "enter":
		if id := m.getSelectedID(); id != "" {
			m.viewMode = ViewDetail
			m.selectedID = id
			return m, m.loadProfile(id)
		}
	case "n":
		m.viewMode = ViewEdit
		m.initFormInputs()
	case "d":
		if id := m.getSelectedID(); id != "" {
			m.selectedID = id
			m.viewMode = ViewConfirmDelete
		}
	}

	return m, nil
}

func (m Model) getSelectedID() string {
	accounts := m.accounts.Accounts()
	if m.selectedRow < len(accounts) {
		return accounts[m.selectedRow].ID
	}
	return ""
}
