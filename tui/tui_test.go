// ABOUTME: Tests for the TUI model
// ABOUTME: Drives the model with messages and checks rendered views and store side effects
package tui

import (
	"context"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshada2906/circle-insights/api"
	"github.com/Akshada2906/circle-insights/mockapi"
	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

func ptr[T any](v T) *T { return &v }

func newTestModel(t *testing.T, baseURL string) Model {
	t.Helper()
	notices := &store.Recorder{}
	accounts, err := store.NewAccountStore(api.NewClient(api.Options{BaseURL: baseURL}), store.WithNotifier(notices))
	require.NoError(t, err)
	stakeholders, err := store.NewStakeholderStore(accounts)
	require.NoError(t, err)
	return NewModel(context.Background(), accounts, stakeholders, notices)
}

func seededModel(t *testing.T) Model {
	t.Helper()
	backend := mockapi.New()
	backend.Seed(
		api.AccountRecord{AccountID: "acc-1", AccountName: "Acme Corp", Focus: ptr("Gold"), AccountOwner: ptr("Rhea"), Target2026: ptr(100.0), Forecast2026: ptr(60.0), HealthScore: ptr(75.0)},
		api.AccountRecord{AccountID: "acc-2", AccountName: "Globex", Focus: ptr("Silver"), Target2026: ptr(50.0), Forecast2026: ptr(48.0), HealthScore: ptr(55.0)},
	)
	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)
	return newTestModel(t, ts.URL+mockapi.BasePath)
}

// step feeds msg to the model and runs any returned command once.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(Model)
		}
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends runes without running the cursor blink commands they return.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestListViewAfterRefresh(t *testing.T) {
	m := seededModel(t)
	assert.Contains(t, m.View(), "Not loaded")

	m = step(t, m, m.Init()())
	view := m.View()
	assert.Contains(t, view, "Ready • 2 account(s)")
	assert.Contains(t, view, "Acme Corp")
	assert.Contains(t, view, "40% Critical")
	assert.Contains(t, view, "55 Warning")
}

func TestListViewShowsRefreshError(t *testing.T) {
	ts := httptest.NewServer(nil)
	url := ts.URL
	ts.Close()

	m := newTestModel(t, url)
	m = step(t, m, m.Init()())

	assert.Equal(t, store.StateError, m.accounts.State())
	assert.Contains(t, m.View(), "Error")
	assert.Contains(t, m.View(), "request failed")
}

func TestDetailViewShowsProjectsAndStakeholders(t *testing.T) {
	m := seededModel(t)
	m = step(t, m, m.Init()())

	project, err := m.accounts.AddProject(models.Project{
		AccountID: "acc-1", Name: "Lake", Manager: "Priya", Summary: "Data platform",
		TechStack: []string{"Spark"}, Circle: models.CircleData,
	})
	require.NoError(t, err)
	_, err = m.stakeholders.Add(models.Stakeholder{
		AccountID: "acc-1", ProjectID: project.ID, Name: "Dana", Designation: "CTO",
		Department: "Engineering", ValueChainCategory: models.ValueChainTechnology, IsChampion: true,
	})
	require.NoError(t, err)

	m = step(t, m, key("enter"))
	require.Equal(t, ViewDetail, m.viewMode)
	view := m.View()
	assert.Contains(t, view, "ACME CORP")
	assert.Contains(t, view, "Projects (1)")
	assert.Contains(t, view, "Lake [Data] Spark")
	assert.Contains(t, view, "Dana, CTO (Lake) score 8 ★")

	m = step(t, m, key("g"))
	require.Equal(t, ViewGraph, m.viewMode)
	assert.Contains(t, m.graphDOT, "graph")

	m = step(t, m, key("esc"))
	assert.Equal(t, ViewDetail, m.viewMode)
	m = step(t, m, key("esc"))
	assert.Equal(t, ViewList, m.viewMode)
}

func TestDeleteConfirmation(t *testing.T) {
	m := seededModel(t)
	m = step(t, m, m.Init()())

	m = step(t, m, key("d"))
	require.Equal(t, ViewConfirmDelete, m.viewMode)
	assert.Contains(t, m.View(), "ACCOUNT: Acme Corp")

	m = step(t, m, key("n"))
	assert.Equal(t, ViewDetail, m.viewMode)

	m = step(t, m, key("d"))
	m = step(t, m, key("y"))
	assert.Equal(t, ViewList, m.viewMode)
	assert.Contains(t, m.View(), "Account deleted: acc-1")
	_, ok := m.accounts.GetByID("acc-1")
	assert.False(t, ok)
}

func TestNewAccountForm(t *testing.T) {
	m := seededModel(t)
	m = step(t, m, m.Init()())

	m = step(t, m, key("n"))
	require.Equal(t, ViewEdit, m.viewMode)

	m = step(t, m, key("enter"))
	assert.Contains(t, m.View(), "account_name: is required")

	m = typeText(t, m, "Initech")
	for range fieldTarget {
		m = step(t, m, key("tab"))
	}
	m = typeText(t, m, "abc")
	m = step(t, m, key("enter"))
	assert.Contains(t, m.formErr, "target_2026: must be a number")

	m.formInputs[fieldTarget].SetValue("100")
	m.formInputs[fieldForecast].SetValue("40")
	m = step(t, m, key("enter"))
	assert.Equal(t, ViewList, m.viewMode)
	assert.Contains(t, m.View(), "Account created: Initech")

	accounts := m.accounts.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, 60.0, accounts[2].Shortfall2026)
}
