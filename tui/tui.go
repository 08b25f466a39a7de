// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Provides an interactive portfolio dashboard over the account store
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewEdit
	ViewGraph
	ViewConfirmDelete
)

// Model is the main bubbletea model
type Model struct {
	ctx          context.Context
	accounts     *store.AccountStore
	stakeholders *store.StakeholderStore
	notices      *store.Recorder
	viewMode     ViewMode

	// List view state
	selectedRow int

	// Detail view state
	selectedID string

	// Edit view state
	formInputs []textinput.Model
	focusIndex int
	formErr    string

	// Graph view state
	graphDOT string

	// Status line shown under the table
	status      string
	statusLevel store.Level

	// UI state
	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(ctx context.Context, accounts *store.AccountStore, stakeholders *store.StakeholderStore, notices *store.Recorder) Model {
	return Model{
		ctx:          ctx,
		accounts:     accounts,
		stakeholders: stakeholders,
		notices:      notices,
		viewMode:     ViewList,
		width:        100,
		height:       24,
	}
}

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, accounts *store.AccountStore, stakeholders *store.StakeholderStore, notices *store.Recorder) error {
	p := tea.NewProgram(NewModel(ctx, accounts, stakeholders, notices), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Async results
type (
	refreshedMsg struct {
		ok      bool
		message string
	}
	profileLoadedMsg struct{ accountID string }
	savedMsg         struct {
		ok      bool
		name    string
		message string
	}
	deletedMsg struct {
		ok      bool
		id      string
		message string
	}
)

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		ok := m.accounts.Refresh(m.ctx)
		return refreshedMsg{ok: ok, message: m.takeError()}
	}
}

func (m Model) loadProfile(id string) tea.Cmd {
	return func() tea.Msg {
		m.accounts.FetchProfileFor(m.ctx, id)
		return profileLoadedMsg{accountID: id}
	}
}

func (m Model) takeError() string {
	if m.notices == nil {
		return ""
	}
	return m.notices.Take(store.LevelError)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case refreshedMsg:
		if !msg.ok {
			m.setStatus(store.LevelError, msg.message)
		}
		if n := len(m.accounts.Accounts()); m.selectedRow >= n {
			m.selectedRow = max(0, n-1)
		}
		return m, nil
	case profileLoadedMsg:
		return m, nil
	case savedMsg:
		if msg.ok {
			m.setStatus(store.LevelSuccess, "Account created: "+msg.name)
			m.viewMode = ViewList
		} else {
			m.formErr = msg.message
		}
		return m, nil
	case deletedMsg:
		m.viewMode = ViewList
		if msg.ok {
			m.setStatus(store.LevelSuccess, "Account deleted: "+msg.id)
			m.selectedID = ""
			if m.selectedRow > 0 {
				m.selectedRow--
			}
		} else {
			m.setStatus(store.LevelError, msg.message)
		}
		return m, nil
	}

	if m.viewMode == ViewEdit && len(m.formInputs) > 0 {
		var cmd tea.Cmd
		m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setStatus(level store.Level, message string) {
	m.status = message
	m.statusLevel = level
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewEdit:
		return m.renderEditView()
	case ViewGraph:
		return m.renderGraphView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.viewMode != ViewEdit {
			return m, tea.Quit
		}
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewGraph:
		return m.handleGraphKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// band renders a status in its color.
func band(s models.Status) string {
	switch s {
	case models.StatusGood:
		return goodStyle.Render(string(s))
	case models.StatusWarning:
		return warningStyle.Render(string(s))
	default:
		return criticalStyle.Render(string(s))
	}
}
