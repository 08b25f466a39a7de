// ABOUTME: Account aggregate for the client portfolio
// ABOUTME: Defines Account, AccountPatch, focus tiers and rate-card health values
package models

import (
	"time"
)

// Focus tiers.
const (
	FocusPlatinum = "Platinum"
	FocusGold     = "Gold"
	FocusSilver   = "Silver"
)

// Rate-card health values.
const (
	RateCardAbove = "Above"
	RateCardAt    = "At"
	RateCardBelow = "Below"
)

// FocusTiers lists the focus tiers in display order.
var FocusTiers = []string{FocusPlatinum, FocusGold, FocusSilver}

// Account is one tracked client relationship and the root of the domain model.
type Account struct {
	ID   string `json:"account_id"`
	Name string `json:"account_name" validate:"required,notblank"`

	// General
	Domain string `json:"domain,omitempty"`
	Focus  string `json:"focus,omitempty" validate:"omitempty,oneof=Platinum Gold Silver"`
	Unit   string `json:"unit,omitempty"`

	// Financial
	CompanyRevenue   float64 `json:"company_revenue"`
	LastYearBusiness float64 `json:"last_year_business"`
	Target2026       float64 `json:"target_2026"`
	Forecast2026     float64 `json:"forecast_2026"`
	Shortfall2026    float64 `json:"shortfall_2026"`
	PipelineValue    float64 `json:"pipeline_value"`
	AttritionRisk    string  `json:"attrition_risk,omitempty"`

	// Delivery
	Owner           string `json:"account_owner,omitempty"`
	TeamSize        int    `json:"team_size" validate:"gte=0"`
	RateCardHealth  string `json:"rate_card_health,omitempty" validate:"omitempty,oneof=Above At Below"`
	ActiveProjects  int    `json:"active_projects" validate:"gte=0"`
	EngagementModel string `json:"engagement_model,omitempty"`

	// Strategy and relationship
	ValueChainFit        string  `json:"value_chain_fit,omitempty"`
	RoadmapVisibility    string  `json:"roadmap_visibility,omitempty"`
	ChampionName         string  `json:"champion_name,omitempty"`
	NPSScore             float64 `json:"nps_score"`
	DecisionMakerConnect bool    `json:"decision_maker_connect"`
	GrowthPlanReady      bool    `json:"growth_plan_ready"`
	HealthScore          float64 `json:"health_score" validate:"gte=0,lte=100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Attached client-side, never sent to the backend.
	Projects          []Project          `json:"projects,omitempty"`
	StrategicProfiles []StrategicProfile `json:"strategic_profiles,omitempty"`
}

// RecomputeShortfall rewrites Shortfall2026 from the current target and forecast.
func (a *Account) RecomputeShortfall() {
	a.Shortfall2026 = Shortfall(a.Target2026, a.Forecast2026)
}

// ShortfallPercent returns the 2026 shortfall as a percentage of the target.
func (a *Account) ShortfallPercent() float64 {
	return ShortfallPercent(a.Target2026, a.Forecast2026)
}

// ShortfallStatus bands the shortfall percentage.
func (a *Account) ShortfallStatus() Status {
	return ShortfallBand(a.ShortfallPercent())
}

// HealthStatus bands the account health score.
func (a *Account) HealthStatus() Status {
	return Bucket(a.HealthScore, HealthThresholds)
}

// Profile returns the attached strategic profile, if one has been fetched.
func (a *Account) Profile() *StrategicProfile {
	if len(a.StrategicProfiles) == 0 {
		return nil
	}
	return &a.StrategicProfiles[0]
}

// AccountPatch carries a partial account update. Nil fields are left unchanged.
// Shortfall2026 is derived; DeriveShortfall overwrites whatever a caller set.
type AccountPatch struct {
	Name                 *string  `json:"account_name,omitempty" validate:"omitnil,notblank"`
	Domain               *string  `json:"domain,omitempty"`
	Focus                *string  `json:"focus,omitempty" validate:"omitempty,oneof=Platinum Gold Silver"`
	Unit                 *string  `json:"unit,omitempty"`
	CompanyRevenue       *float64 `json:"company_revenue,omitempty"`
	LastYearBusiness     *float64 `json:"last_year_business,omitempty"`
	Target2026           *float64 `json:"target_2026,omitempty"`
	Forecast2026         *float64 `json:"forecast_2026,omitempty"`
	Shortfall2026        *float64 `json:"shortfall_2026,omitempty"`
	PipelineValue        *float64 `json:"pipeline_value,omitempty"`
	AttritionRisk        *string  `json:"attrition_risk,omitempty"`
	Owner                *string  `json:"account_owner,omitempty"`
	TeamSize             *int     `json:"team_size,omitempty" validate:"omitnil,gte=0"`
	RateCardHealth       *string  `json:"rate_card_health,omitempty" validate:"omitempty,oneof=Above At Below"`
	ActiveProjects       *int     `json:"active_projects,omitempty" validate:"omitnil,gte=0"`
	EngagementModel      *string  `json:"engagement_model,omitempty"`
	ValueChainFit        *string  `json:"value_chain_fit,omitempty"`
	RoadmapVisibility    *string  `json:"roadmap_visibility,omitempty"`
	ChampionName         *string  `json:"champion_name,omitempty"`
	NPSScore             *float64 `json:"nps_score,omitempty"`
	DecisionMakerConnect *bool    `json:"decision_maker_connect,omitempty"`
	GrowthPlanReady      *bool    `json:"growth_plan_ready,omitempty"`
	HealthScore          *float64 `json:"health_score,omitempty" validate:"omitnil,gte=0,lte=100"`
}

// TouchesFinancials reports whether the patch changes a shortfall input.
func (p *AccountPatch) TouchesFinancials() bool {
	return p.Target2026 != nil || p.Forecast2026 != nil
}

// DeriveShortfall sets Shortfall2026 on the patch when either input changes,
// taking the missing input from current, and clears it otherwise.
func (p *AccountPatch) DeriveShortfall(current Account) {
	p.Shortfall2026 = nil
	if !p.TouchesFinancials() {
		return
	}
	target := current.Target2026
	if p.Target2026 != nil {
		target = *p.Target2026
	}
	forecast := current.Forecast2026
	if p.Forecast2026 != nil {
		forecast = *p.Forecast2026
	}
	s := Shortfall(target, forecast)
	p.Shortfall2026 = &s
}
