// ABOUTME: Account detail view for the TUI
// ABOUTME: Shows financials, strategic profile, projects and stakeholders of one account
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	account, ok := m.accounts.GetByID(m.selectedID)
	if !ok {
		s.WriteString(titleStyle.Render("DETAIL VIEW"))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf("Account %s is no longer loaded", m.selectedID))
		s.WriteString("\n\n")
		s.WriteString(m.renderDetailHelp())
		return s.String()
	}

	// Title
	s.WriteString(titleStyle.Render(strings.ToUpper(account.Name)))
	s.WriteString("\n\n")

	s.WriteString(m.renderField("ID", account.ID))
	s.WriteString(m.renderField("Domain", account.Domain))
	s.WriteString(m.renderField("Focus", account.Focus))
	s.WriteString(m.renderField("Unit", account.Unit))
	s.WriteString(m.renderField("Owner", account.Owner))
	s.WriteString(m.renderField("Target 2026", printer.Sprintf("%.0f", account.Target2026)))
	s.WriteString(m.renderField("Forecast 2026", printer.Sprintf("%.0f", account.Forecast2026)))
	s.WriteString(fieldLabelStyle.Render("Shortfall 2026:") + " " +
		fieldValueStyle.Render(printer.Sprintf("%.0f (%.1f%%) ", account.Shortfall2026, account.ShortfallPercent())) +
		band(account.ShortfallStatus()) + "\n")
	s.WriteString(fieldLabelStyle.Render("Health:") + " " +
		fieldValueStyle.Render(fmt.Sprintf("%.0f ", account.HealthScore)) +
		band(account.HealthStatus()) + "\n")
	s.WriteString(m.renderField("Champion", account.ChampionName))

	// Strategic profile
	s.WriteString("\n")
	s.WriteString(sectionStyle.Render("Strategic Profile"))
	s.WriteString("\n")
	if p := account.Profile(); p != nil {
		s.WriteString(m.renderField("Sponsor", p.Sponsor))
		s.WriteString(m.renderField("Decision Maker", p.TechnicalDecisionMaker))
		s.WriteString(m.renderField("Influencer", p.Influencer))
		s.WriteString(m.renderField("Competitors", p.Competitors))
		s.WriteString(m.renderField("QBR Happening", string(p.QBRHappening)))
	} else {
		s.WriteString(helpStyle.Render("  none"))
		s.WriteString("\n")
	}

	// Projects
	s.WriteString("\n")
	s.WriteString(sectionStyle.Render(fmt.Sprintf("Projects (%d)", len(account.Projects))))
	s.WriteString("\n")
	for _, p := range account.Projects {
		s.WriteString(fmt.Sprintf("  • %s [%s] %s\n", p.Name, p.Circle, strings.Join(p.TechStack, ", ")))
	}

	// Stakeholders
	people := m.stakeholders.ByAccount(account.ID)
	s.WriteString("\n")
	s.WriteString(sectionStyle.Render(fmt.Sprintf("Stakeholders (%d)", len(people))))
	s.WriteString("\n")
	for _, st := range people {
		champion := ""
		if st.IsChampion {
			champion = " ★"
		}
		s.WriteString(fmt.Sprintf("  • %s, %s (%s) score %d%s\n", st.Name, st.Designation, st.ProjectName, st.RelationshipScore, champion))
	}

	s.WriteString("\n")

	// Help
	s.WriteString(m.renderDetailHelp())

	return s.String()
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		return ""
	}
	return fieldLabelStyle.Render(label+":") + " " + fieldValueStyle.Render(value) + "\n"
}

func (m Model) renderDetailHelp() string {
	help := []string{
		"Esc: Back",
		"g: Graph",
		"d: Delete",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
	case "g":
		if err := m.generateGraph(); err != nil {
			m.graphDOT = "Error: " + err.Error()
		}
		m.viewMode = ViewGraph
	case "d":
		m.viewMode = ViewConfirmDelete
	}

	return m, nil
}
