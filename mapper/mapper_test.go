// ABOUTME: Tests for wire/domain mapping
// ABOUTME: Covers default filling, payload construction and enum coercion
package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshada2906/circle-insights/api"
	"github.com/Akshada2906/circle-insights/models"
)

func TestAccountFillsDefaults(t *testing.T) {
	var rec api.AccountRecord
	require.NoError(t, json.Unmarshal([]byte(`{"account_id":"acc-1","account_name":"Acme Corp"}`), &rec))

	acc := Account(rec)
	assert.Equal(t, "acc-1", acc.ID)
	assert.Equal(t, "Acme Corp", acc.Name)
	assert.Equal(t, "", acc.Domain)
	assert.Equal(t, 0.0, acc.Target2026)
	assert.Equal(t, 0, acc.TeamSize)
	assert.False(t, acc.GrowthPlanReady)
	assert.True(t, acc.CreatedAt.IsZero())
}

func TestAccountMapsEveryField(t *testing.T) {
	raw := `{
		"account_id":"acc-7","account_name":"Globex","domain":"globex.com","focus":"Gold","unit":"EMEA",
		"company_revenue":5000000,"last_year_business":120000,"target_2026":200000,"forecast_2026":150000,
		"shortfall_2026":50000,"pipeline_value":80000,"attrition_risk":"low",
		"account_owner":"Priya","team_size":14,"rate_card_health":"Below","active_projects":3,
		"engagement_model":"T&M","value_chain_fit":"strong","roadmap_visibility":"partial",
		"champion_name":"Hank","nps_score":42,"decision_maker_connect":true,"growth_plan_ready":true,
		"health_score":66,"created_at":"2025-01-02T03:04:05Z","updated_at":"2025-02-03T04:05:06.123456"
	}`
	var rec api.AccountRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	acc := Account(rec)
	assert.Equal(t, "globex.com", acc.Domain)
	assert.Equal(t, models.FocusGold, acc.Focus)
	assert.Equal(t, "EMEA", acc.Unit)
	assert.Equal(t, 50000.0, acc.Shortfall2026)
	assert.Equal(t, "Priya", acc.Owner)
	assert.Equal(t, 14, acc.TeamSize)
	assert.Equal(t, models.RateCardBelow, acc.RateCardHealth)
	assert.Equal(t, 3, acc.ActiveProjects)
	assert.Equal(t, "Hank", acc.ChampionName)
	assert.True(t, acc.DecisionMakerConnect)
	assert.Equal(t, 66.0, acc.HealthScore)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), acc.CreatedAt)
	assert.Equal(t, 2025, acc.UpdatedAt.Year())
	assert.Equal(t, time.February, acc.UpdatedAt.Month())
}

func TestAccountCreateDefaultsAndShortfall(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	payload := AccountCreate(models.Account{Name: "Acme Corp", Target2026: 900, Forecast2026: 1000, Shortfall2026: 12345}, now)

	assert.Equal(t, "Acme Corp", payload.AccountName)
	assert.Equal(t, -100.0, payload.Shortfall2026)
	assert.Equal(t, "2026-03-01T10:00:00Z", payload.UpdatedAt)

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(b, &sent))
	for _, field := range []string{"domain", "focus", "account_owner", "rate_card_health", "champion_name"} {
		assert.Equal(t, "", sent[field], field)
	}
	for _, field := range []string{"company_revenue", "team_size", "active_projects", "nps_score"} {
		assert.Equal(t, 0.0, sent[field], field)
	}
	assert.Equal(t, false, sent["decision_maker_connect"])
}

func TestAccountUpdateOnlyCarriesPatch(t *testing.T) {
	size := 12
	payload := AccountUpdate(models.AccountPatch{TeamSize: &size}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"team_size":12,"updated_at":"2026-01-01T00:00:00Z"}`, string(b))
}

func TestQBRConversion(t *testing.T) {
	assert.Equal(t, models.QBRYes, QBRFromWire(true))
	assert.Equal(t, models.QBRNo, QBRFromWire(false))
	assert.True(t, QBRToWire(models.QBRYes))
	assert.False(t, QBRToWire(models.QBRNo))
	assert.False(t, QBRToWire(""))
}

func TestProfileRoundTripsInfluencers(t *testing.T) {
	var rec api.StakeholderDetailRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","account_id":"acc-1","influencers":"Dana, Eli","qbr_happening":true}`), &rec))

	p := Profile(rec)
	assert.Equal(t, "Dana, Eli", p.Influencer)
	assert.Equal(t, models.QBRYes, p.QBRHappening)
	assert.Equal(t, "", p.Sponsor)

	create := ProfileCreate(p)
	assert.Equal(t, "Dana, Eli", create.Influencers)
	assert.True(t, create.QBRHappening)

	update := ProfileUpdate(models.StrategicProfile{QBRHappening: models.QBRNo, Influencer: "Fay"})
	require.NotNil(t, update.QBRHappening)
	assert.False(t, *update.QBRHappening)
	assert.Equal(t, "Fay", *update.Influencers)
}

func TestProfileMissingQBRIsNo(t *testing.T) {
	p := Profile(api.StakeholderDetailRecord{ID: "p2", AccountID: "acc-2"})
	assert.Equal(t, models.QBRNo, p.QBRHappening)
	assert.Len(t, Profiles([]api.StakeholderDetailRecord{{ID: "a"}, {ID: "b"}}), 2)
}
