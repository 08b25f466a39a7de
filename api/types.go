// ABOUTME: Wire shapes exchanged with the account-dashboard backend
// ABOUTME: Records use pointers so absent fields can be told apart from zero values
package api

// AccountRecord is an account as returned by the backend.
type AccountRecord struct {
	AccountID            string   `json:"account_id"`
	AccountName          string   `json:"account_name"`
	Domain               *string  `json:"domain,omitempty"`
	Focus                *string  `json:"focus,omitempty"`
	Unit                 *string  `json:"unit,omitempty"`
	CompanyRevenue       *float64 `json:"company_revenue,omitempty"`
	LastYearBusiness     *float64 `json:"last_year_business,omitempty"`
	Target2026           *float64 `json:"target_2026,omitempty"`
	Forecast2026         *float64 `json:"forecast_2026,omitempty"`
	Shortfall2026        *float64 `json:"shortfall_2026,omitempty"`
	PipelineValue        *float64 `json:"pipeline_value,omitempty"`
	AttritionRisk        *string  `json:"attrition_risk,omitempty"`
	AccountOwner         *string  `json:"account_owner,omitempty"`
	TeamSize             *int     `json:"team_size,omitempty"`
	RateCardHealth       *string  `json:"rate_card_health,omitempty"`
	ActiveProjects       *int     `json:"active_projects,omitempty"`
	EngagementModel      *string  `json:"engagement_model,omitempty"`
	ValueChainFit        *string  `json:"value_chain_fit,omitempty"`
	RoadmapVisibility    *string  `json:"roadmap_visibility,omitempty"`
	ChampionName         *string  `json:"champion_name,omitempty"`
	NPSScore             *float64 `json:"nps_score,omitempty"`
	DecisionMakerConnect *bool    `json:"decision_maker_connect,omitempty"`
	GrowthPlanReady      *bool    `json:"growth_plan_ready,omitempty"`
	HealthScore          *float64 `json:"health_score,omitempty"`
	CreatedAt            *string  `json:"created_at,omitempty"`
	UpdatedAt            *string  `json:"updated_at,omitempty"`
}

// AccountCreate is the POST body for a new account. Every field is sent.
type AccountCreate struct {
	AccountID            string  `json:"account_id,omitempty"`
	AccountName          string  `json:"account_name"`
	Domain               string  `json:"domain"`
	Focus                string  `json:"focus"`
	Unit                 string  `json:"unit"`
	CompanyRevenue       float64 `json:"company_revenue"`
	LastYearBusiness     float64 `json:"last_year_business"`
	Target2026           float64 `json:"target_2026"`
	Forecast2026         float64 `json:"forecast_2026"`
	Shortfall2026        float64 `json:"shortfall_2026"`
	PipelineValue        float64 `json:"pipeline_value"`
	AttritionRisk        string  `json:"attrition_risk"`
	AccountOwner         string  `json:"account_owner"`
	TeamSize             int     `json:"team_size"`
	RateCardHealth       string  `json:"rate_card_health"`
	ActiveProjects       int     `json:"active_projects"`
	EngagementModel      string  `json:"engagement_model"`
	ValueChainFit        string  `json:"value_chain_fit"`
	RoadmapVisibility    string  `json:"roadmap_visibility"`
	ChampionName         string  `json:"champion_name"`
	NPSScore             float64 `json:"nps_score"`
	DecisionMakerConnect bool    `json:"decision_maker_connect"`
	GrowthPlanReady      bool    `json:"growth_plan_ready"`
	HealthScore          float64 `json:"health_score"`
	UpdatedAt            string  `json:"updated_at"`
}

// AccountUpdate is the PUT body for a partial account update. Only non-nil
// fields are sent.
type AccountUpdate struct {
	AccountName          *string  `json:"account_name,omitempty"`
	Domain               *string  `json:"domain,omitempty"`
	Focus                *string  `json:"focus,omitempty"`
	Unit                 *string  `json:"unit,omitempty"`
	CompanyRevenue       *float64 `json:"company_revenue,omitempty"`
	LastYearBusiness     *float64 `json:"last_year_business,omitempty"`
	Target2026           *float64 `json:"target_2026,omitempty"`
	Forecast2026         *float64 `json:"forecast_2026,omitempty"`
	Shortfall2026        *float64 `json:"shortfall_2026,omitempty"`
	PipelineValue        *float64 `json:"pipeline_value,omitempty"`
	AttritionRisk        *string  `json:"attrition_risk,omitempty"`
	AccountOwner         *string  `json:"account_owner,omitempty"`
	TeamSize             *int     `json:"team_size,omitempty"`
	RateCardHealth       *string  `json:"rate_card_health,omitempty"`
	ActiveProjects       *int     `json:"active_projects,omitempty"`
	EngagementModel      *string  `json:"engagement_model,omitempty"`
	ValueChainFit        *string  `json:"value_chain_fit,omitempty"`
	RoadmapVisibility    *string  `json:"roadmap_visibility,omitempty"`
	ChampionName         *string  `json:"champion_name,omitempty"`
	NPSScore             *float64 `json:"nps_score,omitempty"`
	DecisionMakerConnect *bool    `json:"decision_maker_connect,omitempty"`
	GrowthPlanReady      *bool    `json:"growth_plan_ready,omitempty"`
	HealthScore          *float64 `json:"health_score,omitempty"`
	UpdatedAt            *string  `json:"updated_at,omitempty"`
}

// StakeholderDetailRecord is a strategic stakeholder profile as returned by
// the backend.
type StakeholderDetailRecord struct {
	ID                     string  `json:"id"`
	AccountID              string  `json:"account_id"`
	AccountName            *string `json:"account_name,omitempty"`
	Sponsor                *string `json:"sponsor,omitempty"`
	TechnicalDecisionMaker *string `json:"technical_decision_maker,omitempty"`
	Influencers            *string `json:"influencers,omitempty"`
	NeutralStakeholders    *string `json:"neutral_stakeholders,omitempty"`
	NegativeStakeholders   *string `json:"negative_stakeholders,omitempty"`
	SuccessionRisk         *string `json:"succession_risk,omitempty"`
	Competitors            *string `json:"competitors,omitempty"`
	Positioning            *string `json:"positioning,omitempty"`
	IncumbencyStrength     *string `json:"incumbency_strength,omitempty"`
	RelativeStrengths      *string `json:"relative_strengths,omitempty"`
	RelativeWeaknesses     *string `json:"relative_weaknesses,omitempty"`
	ReviewCadence          *string `json:"review_cadence,omitempty"`
	QBRHappening           *bool   `json:"qbr_happening,omitempty"`
	AuditFrequency         *string `json:"audit_frequency,omitempty"`
	CreatedAt              *string `json:"created_at,omitempty"`
	UpdatedAt              *string `json:"updated_at,omitempty"`
}

// StakeholderDetailCreate is the POST body for a new profile.
type StakeholderDetailCreate struct {
	AccountID              string `json:"account_id"`
	AccountName            string `json:"account_name"`
	Sponsor                string `json:"sponsor"`
	TechnicalDecisionMaker string `json:"technical_decision_maker"`
	Influencers            string `json:"influencers"`
	NeutralStakeholders    string `json:"neutral_stakeholders"`
	NegativeStakeholders   string `json:"negative_stakeholders"`
	SuccessionRisk         string `json:"succession_risk"`
	Competitors            string `json:"competitors"`
	Positioning            string `json:"positioning"`
	IncumbencyStrength     string `json:"incumbency_strength"`
	RelativeStrengths      string `json:"relative_strengths"`
	RelativeWeaknesses     string `json:"relative_weaknesses"`
	ReviewCadence          string `json:"review_cadence"`
	QBRHappening           bool   `json:"qbr_happening"`
	AuditFrequency         string `json:"audit_frequency"`
}

// StakeholderDetailUpdate is the PUT body for a partial profile update.
type StakeholderDetailUpdate struct {
	AccountName            *string `json:"account_name,omitempty"`
	Sponsor                *string `json:"sponsor,omitempty"`
	TechnicalDecisionMaker *string `json:"technical_decision_maker,omitempty"`
	Influencers            *string `json:"influencers,omitempty"`
	NeutralStakeholders    *string `json:"neutral_stakeholders,omitempty"`
	NegativeStakeholders   *string `json:"negative_stakeholders,omitempty"`
	SuccessionRisk         *string `json:"succession_risk,omitempty"`
	Competitors            *string `json:"competitors,omitempty"`
	Positioning            *string `json:"positioning,omitempty"`
	IncumbencyStrength     *string `json:"incumbency_strength,omitempty"`
	RelativeStrengths      *string `json:"relative_strengths,omitempty"`
	RelativeWeaknesses     *string `json:"relative_weaknesses,omitempty"`
	ReviewCadence          *string `json:"review_cadence,omitempty"`
	QBRHappening           *bool   `json:"qbr_happening,omitempty"`
	AuditFrequency         *string `json:"audit_frequency,omitempty"`
}
