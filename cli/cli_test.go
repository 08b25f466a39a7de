// ABOUTME: Tests for the CLI commands against the in-memory backend
// ABOUTME: Captures command output and checks tables, success lines and validation failures
package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshada2906/circle-insights/api"
	"github.com/Akshada2906/circle-insights/mockapi"
	"github.com/Akshada2906/circle-insights/store"
)

func ptr[T any](v T) *T { return &v }

func setupEnv(t *testing.T) (*Env, *bytes.Buffer) {
	t.Helper()
	backend := mockapi.New()
	backend.Seed(
		api.AccountRecord{AccountID: "acc-1", AccountName: "Acme Corp", Focus: ptr("Gold"), Unit: ptr("EMEA"), AccountOwner: ptr("Rhea"), Target2026: ptr(1200000.0), Forecast2026: ptr(600000.0), HealthScore: ptr(80.0)},
		api.AccountRecord{AccountID: "acc-2", AccountName: "Globex", Focus: ptr("Silver"), Unit: ptr("APAC"), Target2026: ptr(50.0), Forecast2026: ptr(48.0), HealthScore: ptr(40.0)},
	)
	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)

	notices := &store.Recorder{}
	accounts, err := store.NewAccountStore(api.NewClient(api.Options{BaseURL: ts.URL + mockapi.BasePath}), store.WithNotifier(notices))
	require.NoError(t, err)
	stakeholders, err := store.NewStakeholderStore(accounts)
	require.NoError(t, err)

	// A regular file is never a terminal, so confirmations pass through.
	in, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = in.Close() })

	var out bytes.Buffer
	return &Env{Accounts: accounts, Stakeholders: stakeholders, Notices: notices, Out: &out, In: in}, &out
}

func TestListAccountsCommand(t *testing.T) {
	env, out := setupEnv(t)

	require.NoError(t, ListAccountsCommand(context.Background(), env, nil))
	text := out.String()
	assert.Contains(t, text, "Acme Corp")
	assert.Contains(t, text, "1,200,000")
	assert.Contains(t, text, "Rhea")
	assert.Contains(t, text, "Total: 2 account(s)")

	out.Reset()
	require.NoError(t, ListAccountsCommand(context.Background(), env, []string{"--focus", "Silver"}))
	assert.NotContains(t, out.String(), "Acme Corp")
	assert.Contains(t, out.String(), "Total: 1 account(s)")
}

func TestShowAccountCommand(t *testing.T) {
	env, out := setupEnv(t)
	ctx := context.Background()

	require.NoError(t, ShowAccountCommand(ctx, env, []string{"acc-1"}))
	assert.Contains(t, out.String(), "Acme Corp (acc-1)")
	assert.Contains(t, out.String(), "Critical")

	err := ShowAccountCommand(ctx, env, []string{"acc-404"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Account not found")

	assert.EqualError(t, ShowAccountCommand(ctx, env, nil), "account ID is required")
}

func TestAddUpdateDeleteAccountCommands(t *testing.T) {
	env, out := setupEnv(t)
	ctx := context.Background()

	err := AddAccountCommand(ctx, env, []string{"--focus", "Bronze"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "✗ account_name is required")
	assert.Contains(t, out.String(), "✗ focus must be one of Platinum, Gold, Silver")

	out.Reset()
	require.NoError(t, AddAccountCommand(ctx, env, []string{"--name", "Initech", "--target", "100", "--forecast", "30"}))
	assert.Contains(t, out.String(), "✓ Account created: Initech")
	assert.Contains(t, out.String(), "Shortfall: 70")

	accounts := env.Accounts.Accounts()
	require.Len(t, accounts, 3)
	id := accounts[2].ID

	out.Reset()
	require.NoError(t, UpdateAccountCommand(ctx, env, []string{"--forecast", "95", id}))
	assert.Contains(t, out.String(), "✓ Account updated: "+id)
	assert.Contains(t, out.String(), "Shortfall: 5 (5.0%)")

	updated, ok := env.Accounts.GetByID(id)
	require.True(t, ok)
	assert.Equal(t, 100.0, updated.Target2026)
	assert.Equal(t, "Initech", updated.Name)

	out.Reset()
	require.NoError(t, DeleteAccountCommand(ctx, env, []string{id}))
	assert.Contains(t, out.String(), "✓ Account deleted: "+id)
	_, ok = env.Accounts.GetByID(id)
	assert.False(t, ok)

	err = DeleteAccountCommand(ctx, env, []string{"--yes", id})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Account not found")
}

func TestSearchAccountsCommand(t *testing.T) {
	env, out := setupEnv(t)

	assert.EqualError(t, SearchAccountsCommand(context.Background(), env, nil), "--unit is required")

	require.NoError(t, SearchAccountsCommand(context.Background(), env, []string{"--unit", "apac"}))
	assert.Contains(t, out.String(), "Globex")
	assert.NotContains(t, out.String(), "Acme Corp")
}

func TestProfileCommands(t *testing.T) {
	env, out := setupEnv(t)
	ctx := context.Background()

	require.NoError(t, ShowProfileCommand(ctx, env, []string{"acc-1"}))
	assert.Contains(t, out.String(), "No strategic profile for Acme Corp")

	out.Reset()
	require.NoError(t, SetProfileCommand(ctx, env, []string{"--sponsor", "Eve", "--qbr", "Yes", "acc-1"}))
	assert.Contains(t, out.String(), "✓ Profile created for Acme Corp")

	out.Reset()
	require.NoError(t, SetProfileCommand(ctx, env, []string{"--influencer", "Dana", "acc-1"}))
	assert.Contains(t, out.String(), "✓ Profile updated for Acme Corp")

	out.Reset()
	require.NoError(t, ShowProfileCommand(ctx, env, []string{"acc-1"}))
	text := out.String()
	assert.Contains(t, text, "Eve")
	assert.Contains(t, text, "Dana")
	assert.Contains(t, text, "QBR happening:        Yes")

	out.Reset()
	require.Error(t, SetProfileCommand(ctx, env, []string{"--incumbency", "Huge", "acc-1"}))
	assert.Contains(t, out.String(), "✗ incumbency_strength must be one of High, Medium, Low")
}

func TestProjectAndStakeholderCommands(t *testing.T) {
	env, out := setupEnv(t)
	ctx := context.Background()

	require.Error(t, AddProjectCommand(ctx, env, []string{"--account", "acc-1", "--name", "Lake"}))
	assert.Contains(t, out.String(), "✗ tech_stack")

	out.Reset()
	require.NoError(t, AddProjectCommand(ctx, env, []string{
		"--account", "acc-1", "--name", "Lake", "--manager", "Priya", "--summary", "Data platform",
		"--tech", "Spark, Go,spark", "--circle", "Data",
	}))
	assert.Contains(t, out.String(), "✓ Project added: Lake")
	assert.Contains(t, out.String(), "Tech stack: Spark, Go")

	projects := env.Accounts.ProjectsFor("acc-1")
	require.Len(t, projects, 1)
	projectID := projects[0].ID

	out.Reset()
	require.NoError(t, ListProjectsCommand(ctx, env, []string{"acc-1"}))
	assert.Contains(t, out.String(), "Total: 1 project(s)")

	out.Reset()
	require.NoError(t, AddStakeholderCommand(ctx, env, []string{
		"--account", "acc-1", "--project", projectID, "--name", "Dana",
		"--designation", "CTO", "--department", "Engineering", "--category", "Technology",
		"--champion", "--connections", "Eli;Fay",
	}))
	assert.Contains(t, out.String(), "Relationship score: 10/10")

	out.Reset()
	require.NoError(t, ListStakeholdersCommand(ctx, env, []string{"--project", projectID}))
	assert.Contains(t, out.String(), "Lake")
	assert.Contains(t, out.String(), "★")

	out.Reset()
	require.NoError(t, GraphCommand(ctx, env, []string{"acc-1"}))
	assert.True(t, strings.Contains(out.String(), "digraph") || strings.Contains(out.String(), "graph"))

	out.Reset()
	require.NoError(t, DeleteProjectCommand(ctx, env, []string{projectID}))
	assert.Contains(t, out.String(), "✓ Project deleted")
	require.Error(t, DeleteProjectCommand(ctx, env, []string{projectID}))
}

func TestDashboardCommand(t *testing.T) {
	env, out := setupEnv(t)

	require.NoError(t, DashboardCommand(context.Background(), env, nil))
	assert.Contains(t, out.String(), "CIRCLE INSIGHTS PORTFOLIO")
	assert.Contains(t, out.String(), "Acme Corp")
}
