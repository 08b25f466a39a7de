// ABOUTME: Tests for the MCP tool handlers against the in-memory backend
// ABOUTME: Validates tool input/output and error handling end to end through the store
package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshada2906/circle-insights/api"
	"github.com/Akshada2906/circle-insights/mockapi"
	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

type fixture struct {
	backend      *mockapi.Server
	accounts     *store.AccountStore
	stakeholders *store.StakeholderStore
	notices      *store.Recorder
}

func setup(t *testing.T) *fixture {
	t.Helper()
	backend := mockapi.New()
	backend.Seed(
		api.AccountRecord{AccountID: "acc-1", AccountName: "Acme Corp", Focus: ptr("Gold"), Unit: ptr("EMEA"), Target2026: ptr(100.0), Forecast2026: ptr(60.0), HealthScore: ptr(75.0)},
		api.AccountRecord{AccountID: "acc-2", AccountName: "Globex", Focus: ptr("Silver"), Unit: ptr("APAC"), Target2026: ptr(50.0), Forecast2026: ptr(48.0), HealthScore: ptr(55.0)},
	)
	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)

	notices := &store.Recorder{}
	accounts, err := store.NewAccountStore(api.NewClient(api.Options{BaseURL: ts.URL + mockapi.BasePath}), store.WithNotifier(notices))
	require.NoError(t, err)
	stakeholders, err := store.NewStakeholderStore(accounts)
	require.NoError(t, err)

	return &fixture{backend: backend, accounts: accounts, stakeholders: stakeholders, notices: notices}
}

func ptr[T any](v T) *T { return &v }

func TestListAndGetAccounts(t *testing.T) {
	f := setup(t)
	h := NewAccountHandlers(f.accounts, f.notices)
	ctx := context.Background()

	_, list, err := h.ListAccounts(ctx, nil, ListAccountsInput{})
	require.NoError(t, err)
	assert.Equal(t, "ready", list.State)
	require.Len(t, list.Accounts, 2)
	assert.Equal(t, 40.0, list.Accounts[0].ShortfallPercent)
	assert.Equal(t, "Critical", list.Accounts[0].ShortfallStatus)
	assert.Equal(t, "Good", list.Accounts[0].HealthStatus)

	_, got, err := h.GetAccount(ctx, nil, GetAccountInput{AccountID: "acc-2"})
	require.NoError(t, err)
	assert.Equal(t, "Globex", got.Name)
	assert.Equal(t, "Warning", got.HealthStatus)

	_, _, err = h.GetAccount(ctx, nil, GetAccountInput{AccountID: "acc-404"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Account not found")

	_, _, err = h.GetAccount(ctx, nil, GetAccountInput{})
	assert.EqualError(t, err, "account_id is required")
}

func TestCreateUpdateDeleteAccount(t *testing.T) {
	f := setup(t)
	h := NewAccountHandlers(f.accounts, f.notices)
	ctx := context.Background()

	_, _, err := h.CreateAccount(ctx, nil, AccountFields{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account_name")

	_, created, err := h.CreateAccount(ctx, nil, AccountFields{Name: ptr("Initech"), Target2026: ptr(10.0), Forecast2026: ptr(4.0)})
	require.NoError(t, err)
	assert.True(t, created.Created)
	require.Len(t, created.Accounts, 3)
	assert.Equal(t, "Initech", created.Accounts[2].Name)
	assert.Equal(t, 6.0, created.Accounts[2].Shortfall2026)
	newID := created.Accounts[2].ID

	_, updated, err := h.UpdateAccount(ctx, nil, UpdateAccountInput{AccountID: newID, Changes: AccountFields{Forecast2026: ptr(9.0)}})
	require.NoError(t, err)
	assert.Equal(t, 9.0, updated.Forecast2026)
	assert.Equal(t, 1.0, updated.Shortfall2026)

	_, _, err = h.UpdateAccount(ctx, nil, UpdateAccountInput{AccountID: newID, Changes: AccountFields{Name: ptr("  ")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account_name: is required")

	_, _, err = h.UpdateAccount(ctx, nil, UpdateAccountInput{AccountID: newID, Changes: AccountFields{Focus: ptr("Diamond"), HealthScore: ptr(500.0)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "focus: must be one of Platinum, Gold, Silver")
	assert.Contains(t, err.Error(), "health_score: must be at most 100")

	_, deleted, err := h.DeleteAccount(ctx, nil, DeleteAccountInput{AccountID: newID})
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	_, ok := f.accounts.GetByID(newID)
	assert.False(t, ok)

	_, _, err = h.DeleteAccount(ctx, nil, DeleteAccountInput{AccountID: newID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Account not found")
}

func TestSearchByUnit(t *testing.T) {
	f := setup(t)
	h := NewAccountHandlers(f.accounts, f.notices)

	_, out, err := h.SearchByUnit(context.Background(), nil, SearchByUnitInput{Unit: "APAC"})
	require.NoError(t, err)
	require.Len(t, out.Accounts, 1)
	assert.Equal(t, "acc-2", out.Accounts[0].ID)
	assert.Empty(t, f.accounts.Accounts())
}

func TestProfileTools(t *testing.T) {
	f := setup(t)
	h := NewProfileHandlers(f.accounts, f.notices)
	ctx := context.Background()

	_, empty, err := h.GetProfile(ctx, nil, GetProfileInput{AccountID: "acc-1"})
	require.NoError(t, err)
	assert.False(t, empty.Found)

	_, _, err = h.SaveProfile(ctx, nil, SaveProfileInput{AccountID: "acc-1", QBRHappening: "Maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qbr_happening")

	_, saved, err := h.SaveProfile(ctx, nil, SaveProfileInput{AccountID: "acc-1", Sponsor: "Eve", Influencer: "Dana", QBRHappening: "Yes"})
	require.NoError(t, err)
	require.True(t, saved.Found)
	assert.Equal(t, "Eve", saved.Profile.Sponsor)
	assert.Equal(t, "Dana", saved.Profile.Influencer)
	assert.Equal(t, "Yes", saved.Profile.QBRHappening)
	assert.Equal(t, "Acme Corp", saved.Profile.AccountName)

	_, again, err := h.GetProfile(ctx, nil, GetProfileInput{AccountID: "acc-1"})
	require.NoError(t, err)
	assert.Equal(t, saved.Profile.ID, again.Profile.ID)
}

func TestProjectAndStakeholderTools(t *testing.T) {
	f := setup(t)
	require.True(t, f.accounts.Refresh(context.Background()))
	projects := NewProjectHandlers(f.accounts)
	people := NewStakeholderHandlers(f.stakeholders)
	ctx := context.Background()

	_, _, err := projects.AddProject(ctx, nil, AddProjectInput{AccountID: "acc-404"})
	assert.Error(t, err)

	_, _, err = projects.AddProject(ctx, nil, AddProjectInput{AccountID: "acc-1", Name: "Lake"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tech_stack")

	_, project, err := projects.AddProject(ctx, nil, AddProjectInput{
		AccountID: "acc-1", Name: "Lake", Manager: "Priya", Summary: "Data platform",
		TechStack: []string{"Spark", "spark", "Go"}, Circle: models.CircleData,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Spark", "Go"}, project.TechStack)
	assert.Equal(t, models.ProjectActive, project.Status)

	_, list, err := projects.ListProjects(ctx, nil, ListProjectsInput{AccountID: "acc-1"})
	require.NoError(t, err)
	assert.Len(t, list.Projects, 1)

	_, _, err = people.AddStakeholder(ctx, nil, AddStakeholderInput{
		AccountID: "acc-2", ProjectID: project.ID, Name: "Dana", Designation: "CTO",
		Department: "Engineering", ValueChainCategory: "Technology",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project_id: must belong to the same account")

	_, st, err := people.AddStakeholder(ctx, nil, AddStakeholderInput{
		AccountID: "acc-1", ProjectID: project.ID, Name: "Dana", Designation: "CTO",
		Department: "Engineering", ValueChainCategory: "Technology", IsChampion: true,
		Connections: "Eli; Fay\nEli",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lake", st.ProjectName)
	assert.Equal(t, []string{"Eli", "Fay"}, st.Connections)
	assert.Equal(t, 10, st.RelationshipScore)

	_, updated, err := people.UpdateStakeholder(ctx, nil, UpdateStakeholderInput{StakeholderID: st.ID, IsChampion: ptr(false), Connections: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.RelationshipScore)
	assert.Empty(t, updated.Connections)

	_, byProject, err := people.ListStakeholders(ctx, nil, ListStakeholdersInput{ProjectID: project.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, byProject.Count)

	_, _, err = people.DeleteStakeholder(ctx, nil, DeleteStakeholderInput{StakeholderID: st.ID})
	require.NoError(t, err)
	_, all, err := people.ListStakeholders(ctx, nil, ListStakeholdersInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, all.Count)

	_, _, err = projects.DeleteProject(ctx, nil, DeleteProjectInput{ProjectID: project.ID})
	require.NoError(t, err)
	_, _, err = projects.DeleteProject(ctx, nil, DeleteProjectInput{ProjectID: project.ID})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPortfolioDashboardAndGraph(t *testing.T) {
	f := setup(t)
	h := NewVizHandlers(f.accounts, f.stakeholders, f.notices)
	ctx := context.Background()

	_, dash, err := h.PortfolioDashboard(ctx, nil, PortfolioDashboardInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, dash.TotalAccounts)
	assert.Equal(t, 150.0, dash.Target)
	assert.Equal(t, 42.0, dash.Shortfall)
	assert.Equal(t, 1, dash.ShortfallBands["Critical"])
	assert.Equal(t, 1, dash.ShortfallBands["Good"])
	require.Len(t, dash.ByFocus, 2)
	assert.Equal(t, "Gold", dash.ByFocus[0].Focus)
	assert.Contains(t, dash.Rendered, "CIRCLE INSIGHTS PORTFOLIO")
	require.Len(t, dash.NeedsAttention, 1)
	assert.Contains(t, dash.NeedsAttention[0], "Acme Corp")

	_, graph, err := h.StakeholderGraph(ctx, nil, StakeholderGraphInput{AccountID: "acc-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, graph.NodeCount)
	assert.NotEmpty(t, graph.DOTSource)
}

func TestResources(t *testing.T) {
	f := setup(t)
	h := NewResourceHandlers(f.accounts, f.stakeholders)
	ctx := context.Background()

	res, err := h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "circle://accounts"}})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "Acme Corp")

	res, err = h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "circle://accounts/acc-2"}})
	require.NoError(t, err)
	assert.Contains(t, res.Contents[0].Text, "Globex")

	_, err = h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "circle://accounts/acc-404"}})
	assert.Error(t, err)

	_, err = h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "crm://contacts"}})
	assert.Error(t, err)
}
