// ABOUTME: Strategic stakeholder profile attached to an account
// ABOUTME: Landscape, competition and internal readiness with a Yes/No QBR flag
package models

import "time"

// Incumbency strength values.
const (
	IncumbencyHigh   = "High"
	IncumbencyMedium = "Medium"
	IncumbencyLow    = "Low"
)

// QBRStatus records whether quarterly business reviews are happening.
type QBRStatus string

const (
	QBRYes QBRStatus = "Yes"
	QBRNo  QBRStatus = "No"
)

type StrategicProfile struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id" validate:"required"`
	AccountName string `json:"account_name"`

	// Stakeholder landscape
	Sponsor                string `json:"sponsor,omitempty"`
	TechnicalDecisionMaker string `json:"technical_decision_maker,omitempty"`
	Influencer             string `json:"influencer,omitempty"`
	NeutralStakeholders    string `json:"neutral_stakeholders,omitempty"`
	NegativeStakeholders   string `json:"negative_stakeholders,omitempty"`
	SuccessionRisk         string `json:"succession_risk,omitempty"`

	// Competition
	Competitors        string `json:"competitors,omitempty"`
	Positioning        string `json:"positioning,omitempty"`
	IncumbencyStrength string `json:"incumbency_strength,omitempty" validate:"omitempty,oneof=High Medium Low"`
	RelativeStrengths  string `json:"relative_strengths,omitempty"`
	RelativeWeaknesses string `json:"relative_weaknesses,omitempty"`

	// Internal readiness
	ReviewCadence  string    `json:"review_cadence,omitempty"`
	QBRHappening   QBRStatus `json:"qbr_happening" validate:"required,oneof=Yes No"`
	AuditFrequency string    `json:"audit_frequency,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
