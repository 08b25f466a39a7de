// ABOUTME: New-account form for the TUI
// ABOUTME: Collects core account fields, validates them and creates the account asynchronously
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akshada2906/circle-insights/models"
)

// Form field order.
const (
	fieldName = iota
	fieldFocus
	fieldUnit
	fieldOwner
	fieldTarget
	fieldForecast
	fieldHealth
	fieldCount
)

func (m Model) renderEditView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("NEW ACCOUNT"))
	s.WriteString("\n\n")

	// Form fields
	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	if m.formErr != "" {
		s.WriteString("\n")
		s.WriteString(criticalStyle.Render(m.formErr))
		s.WriteString("\n")
	}

	s.WriteString("\n")

	// Help
	s.WriteString(m.renderEditHelp())

	return s.String()
}

func (m Model) renderEditHelp() string {
	help := []string{
		"Tab: Next field",
		"Enter: Save",
		"Esc: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		return m, nil
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex + len(m.formInputs) - 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		account, err := m.formAccount()
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		m.formErr = ""
		return m, m.saveAccount(account)
	}

	// Update current input
	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) initFormInputs() {
	placeholders := [fieldCount]string{
		fieldName:     "Account name",
		fieldFocus:    "Focus (Platinum, Gold, Silver)",
		fieldUnit:     "Business unit",
		fieldOwner:    "Account owner",
		fieldTarget:   "Target 2026",
		fieldForecast: "Forecast 2026",
		fieldHealth:   "Health score (0-100)",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 100
	}

	m.formInputs = inputs
	m.formErr = ""
	m.focusIndex = 0
	m.updateFormFocus()
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

// formAccount builds and validates the account described by the form.
func (m Model) formAccount() (models.Account, error) {
	value := func(i int) string { return strings.TrimSpace(m.formInputs[i].Value()) }

	errs := models.ValidationErrors{}
	number := func(i int, field string) float64 {
		if value(i) == "" {
			return 0
		}
		f, err := strconv.ParseFloat(value(i), 64)
		if err != nil {
			errs[field] = "must be a number"
		}
		return f
	}

	a := models.Account{
		Name:         value(fieldName),
		Focus:        value(fieldFocus),
		Unit:         value(fieldUnit),
		Owner:        value(fieldOwner),
		Target2026:   number(fieldTarget, "target_2026"),
		Forecast2026: number(fieldForecast, "forecast_2026"),
		HealthScore:  number(fieldHealth, "health_score"),
	}
	if len(errs) > 0 {
		return a, errs
	}

	a.RecomputeShortfall()
	if err := models.Validate(a); err != nil {
		return a, err
	}
	return a, nil
}

func (m Model) saveAccount(a models.Account) tea.Cmd {
	return func() tea.Msg {
		ok := m.accounts.Create(m.ctx, a)
		return savedMsg{ok: ok, name: a.Name, message: m.takeError()}
	}
}
