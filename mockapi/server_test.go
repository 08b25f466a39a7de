// ABOUTME: Tests for the in-memory backend through the real gateway client
// ABOUTME: Exercises every route, partial updates and detail error bodies
package mockapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshada2906/circle-insights/api"
)

func newClient(t *testing.T, s *Server) *api.Client {
	t.Helper()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return api.NewClient(api.Options{BaseURL: ts.URL + BasePath})
}

func ptr[T any](v T) *T { return &v }

func TestAccountLifecycle(t *testing.T) {
	fixed := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return fixed }))
	c := newClient(t, s)
	ctx := context.Background()

	list, err := c.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := c.CreateAccount(ctx, api.AccountCreate{AccountName: "Acme Corp", Unit: "EMEA", TeamSize: 4})
	require.NoError(t, err)
	assert.Equal(t, "acc-1", created.AccountID)
	require.NotNil(t, created.CreatedAt)
	assert.Equal(t, "2026-05-01T09:00:00Z", *created.CreatedAt)

	updated, err := c.UpdateAccount(ctx, "acc-1", api.AccountUpdate{TeamSize: ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, *updated.TeamSize)
	assert.Equal(t, "EMEA", *updated.Unit)
	assert.Equal(t, "Acme Corp", updated.AccountName)

	got, err := c.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 12, *got.TeamSize)

	require.NoError(t, c.DeleteAccount(ctx, "acc-1"))
	_, err = c.GetAccount(ctx, "acc-1")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, "Account not found", api.Message(err))
}

func TestCreateKeepsClientID(t *testing.T) {
	s := New()
	c := newClient(t, s)

	created, err := c.CreateAccount(context.Background(), api.AccountCreate{AccountID: "acc-custom", AccountName: "Initech"})
	require.NoError(t, err)
	assert.Equal(t, "acc-custom", created.AccountID)

	_, err = c.CreateAccount(context.Background(), api.AccountCreate{AccountID: "acc-custom", AccountName: "Initech"})
	require.Error(t, err)
	assert.Equal(t, "Account already exists", api.Message(err))
}

func TestCreateRequiresName(t *testing.T) {
	c := newClient(t, New())

	_, err := c.CreateAccount(context.Background(), api.AccountCreate{})
	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindApplication, apiErr.Kind)
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "account_name is required", apiErr.Message)
}

func TestSearchByUnit(t *testing.T) {
	s := New()
	s.Seed(
		api.AccountRecord{AccountName: "A", Unit: ptr("EMEA")},
		api.AccountRecord{AccountName: "B", Unit: ptr("APAC")},
		api.AccountRecord{AccountName: "C", Unit: ptr("emea")},
	)
	c := newClient(t, s)

	found, err := c.SearchAccountsByUnit(context.Background(), "EMEA")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "A", found[0].AccountName)
	assert.Equal(t, "C", found[1].AccountName)

	none, err := c.SearchAccountsByUnit(context.Background(), "LATAM")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProfileRoutes(t *testing.T) {
	s := New()
	s.Seed(api.AccountRecord{AccountID: "acc-1", AccountName: "Acme"})
	c := newClient(t, s)
	ctx := context.Background()

	_, err := c.CreateProfile(ctx, api.StakeholderDetailCreate{AccountID: "acc-missing"})
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	created, err := c.CreateProfile(ctx, api.StakeholderDetailCreate{AccountID: "acc-1", Influencers: "Dana", QBRHappening: true})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byAccount, err := c.ProfilesByAccount(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Equal(t, "Dana", *byAccount[0].Influencers)

	updated, err := c.UpdateProfile(ctx, created.ID, api.StakeholderDetailUpdate{QBRHappening: ptr(false), Sponsor: ptr("Eve")})
	require.NoError(t, err)
	assert.Equal(t, "Eve", *updated.Sponsor)
	assert.Equal(t, "Dana", *updated.Influencers)
	assert.False(t, *updated.QBRHappening)

	all, err := c.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got, err := c.GetProfile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", got.AccountID)

	require.NoError(t, c.DeleteProfile(ctx, created.ID))
	_, err = c.GetProfile(ctx, created.ID)
	assert.True(t, api.IsNotFound(err))
}
