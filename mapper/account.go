// ABOUTME: Translation between account wire records and domain accounts
// ABOUTME: Fills defaults for absent fields and builds create/update payloads
package mapper

import (
	"time"

	"github.com/Akshada2906/circle-insights/api"
	"github.com/Akshada2906/circle-insights/models"
)

// Account maps a backend record onto a domain account. Absent text becomes
// "", absent numbers 0 and absent flags false.
func Account(rec api.AccountRecord) models.Account {
	return models.Account{
		ID:                   rec.AccountID,
		Name:                 rec.AccountName,
		Domain:               str(rec.Domain),
		Focus:                str(rec.Focus),
		Unit:                 str(rec.Unit),
		CompanyRevenue:       num(rec.CompanyRevenue),
		LastYearBusiness:     num(rec.LastYearBusiness),
		Target2026:           num(rec.Target2026),
		Forecast2026:         num(rec.Forecast2026),
		Shortfall2026:        num(rec.Shortfall2026),
		PipelineValue:        num(rec.PipelineValue),
		AttritionRisk:        str(rec.AttritionRisk),
		Owner:                str(rec.AccountOwner),
		TeamSize:             integer(rec.TeamSize),
		RateCardHealth:       str(rec.RateCardHealth),
		ActiveProjects:       integer(rec.ActiveProjects),
		EngagementModel:      str(rec.EngagementModel),
		ValueChainFit:        str(rec.ValueChainFit),
		RoadmapVisibility:    str(rec.RoadmapVisibility),
		ChampionName:         str(rec.ChampionName),
		NPSScore:             num(rec.NPSScore),
		DecisionMakerConnect: flag(rec.DecisionMakerConnect),
		GrowthPlanReady:      flag(rec.GrowthPlanReady),
		HealthScore:          num(rec.HealthScore),
		CreatedAt:            timestamp(rec.CreatedAt),
		UpdatedAt:            timestamp(rec.UpdatedAt),
	}
}

// Accounts maps a list of records, preserving order.
func Accounts(recs []api.AccountRecord) []models.Account {
	out := make([]models.Account, len(recs))
	for i, rec := range recs {
		out[i] = Account(rec)
	}
	return out
}

// AccountCreate builds the create payload. The shortfall is recomputed from
// target and forecast and updated_at is stamped with now.
func AccountCreate(a models.Account, now time.Time) api.AccountCreate {
	a.RecomputeShortfall()
	return api.AccountCreate{
		AccountID:            a.ID,
		AccountName:          a.Name,
		Domain:               a.Domain,
		Focus:                a.Focus,
		Unit:                 a.Unit,
		CompanyRevenue:       a.CompanyRevenue,
		LastYearBusiness:     a.LastYearBusiness,
		Target2026:           a.Target2026,
		Forecast2026:         a.Forecast2026,
		Shortfall2026:        a.Shortfall2026,
		PipelineValue:        a.PipelineValue,
		AttritionRisk:        a.AttritionRisk,
		AccountOwner:         a.Owner,
		TeamSize:             a.TeamSize,
		RateCardHealth:       a.RateCardHealth,
		ActiveProjects:       a.ActiveProjects,
		EngagementModel:      a.EngagementModel,
		ValueChainFit:        a.ValueChainFit,
		RoadmapVisibility:    a.RoadmapVisibility,
		ChampionName:         a.ChampionName,
		NPSScore:             a.NPSScore,
		DecisionMakerConnect: a.DecisionMakerConnect,
		GrowthPlanReady:      a.GrowthPlanReady,
		HealthScore:          a.HealthScore,
		UpdatedAt:            formatTime(now),
	}
}

// AccountUpdate builds a partial update payload carrying only the fields set
// on the patch, plus updated_at.
func AccountUpdate(p models.AccountPatch, now time.Time) api.AccountUpdate {
	updatedAt := formatTime(now)
	return api.AccountUpdate{
		AccountName:          p.Name,
		Domain:               p.Domain,
		Focus:                p.Focus,
		Unit:                 p.Unit,
		CompanyRevenue:       p.CompanyRevenue,
		LastYearBusiness:     p.LastYearBusiness,
		Target2026:           p.Target2026,
		Forecast2026:         p.Forecast2026,
		Shortfall2026:        p.Shortfall2026,
		PipelineValue:        p.PipelineValue,
		AttritionRisk:        p.AttritionRisk,
		AccountOwner:         p.Owner,
		TeamSize:             p.TeamSize,
		RateCardHealth:       p.RateCardHealth,
		ActiveProjects:       p.ActiveProjects,
		EngagementModel:      p.EngagementModel,
		ValueChainFit:        p.ValueChainFit,
		RoadmapVisibility:    p.RoadmapVisibility,
		ChampionName:         p.ChampionName,
		NPSScore:             p.NPSScore,
		DecisionMakerConnect: p.DecisionMakerConnect,
		GrowthPlanReady:      p.GrowthPlanReady,
		HealthScore:          p.HealthScore,
		UpdatedAt:            &updatedAt,
	}
}
