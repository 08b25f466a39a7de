// ABOUTME: Strategic profile MCP tool handlers
// ABOUTME: Implements get_account_profile and save_account_profile
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

type ProfileHandlers struct {
	store   *store.AccountStore
	notices *store.Recorder
}

func NewProfileHandlers(accounts *store.AccountStore, notices *store.Recorder) *ProfileHandlers {
	return &ProfileHandlers{store: accounts, notices: notices}
}

type ProfileOutput struct {
	ID                     string `json:"id"`
	AccountID              string `json:"account_id"`
	AccountName            string `json:"account_name,omitempty"`
	Sponsor                string `json:"sponsor,omitempty"`
	TechnicalDecisionMaker string `json:"technical_decision_maker,omitempty"`
	Influencer             string `json:"influencer,omitempty"`
	NeutralStakeholders    string `json:"neutral_stakeholders,omitempty"`
	NegativeStakeholders   string `json:"negative_stakeholders,omitempty"`
	SuccessionRisk         string `json:"succession_risk,omitempty"`
	Competitors            string `json:"competitors,omitempty"`
	Positioning            string `json:"positioning,omitempty"`
	IncumbencyStrength     string `json:"incumbency_strength,omitempty"`
	RelativeStrengths      string `json:"relative_strengths,omitempty"`
	RelativeWeaknesses     string `json:"relative_weaknesses,omitempty"`
	ReviewCadence          string `json:"review_cadence,omitempty"`
	QBRHappening           string `json:"qbr_happening"`
	AuditFrequency         string `json:"audit_frequency,omitempty"`
	UpdatedAt              string `json:"updated_at,omitempty"`
}

type GetProfileInput struct {
	AccountID string `json:"account_id" jsonschema:"Account ID (required)"`
}

type GetProfileOutput struct {
	AccountID string         `json:"account_id"`
	Found     bool           `json:"found"`
	Profile   *ProfileOutput `json:"profile,omitempty"`
}

func (h *ProfileHandlers) GetProfile(ctx context.Context, _ *mcp.CallToolRequest, input GetProfileInput) (*mcp.CallToolResult, GetProfileOutput, error) {
	if input.AccountID == "" {
		return nil, GetProfileOutput{}, fmt.Errorf("account_id is required")
	}
	if _, ok := h.store.GetByID(input.AccountID); !ok {
		if !h.store.FetchOne(ctx, input.AccountID) {
			return nil, GetProfileOutput{}, noticeError(h.notices, "failed to fetch account")
		}
	}
	h.store.FetchProfileFor(ctx, input.AccountID)

	account, _ := h.store.GetByID(input.AccountID)
	out := GetProfileOutput{AccountID: input.AccountID}
	if p := account.Profile(); p != nil {
		po := profileToOutput(*p)
		out.Found = true
		out.Profile = &po
	}
	return nil, out, nil
}

type SaveProfileInput struct {
	ID                     string `json:"id,omitempty" jsonschema:"Profile ID; omit to create a new profile"`
	AccountID              string `json:"account_id" jsonschema:"Account ID (required)"`
	Sponsor                string `json:"sponsor,omitempty" jsonschema:"Executive sponsor"`
	TechnicalDecisionMaker string `json:"technical_decision_maker,omitempty" jsonschema:"Technical decision maker"`
	Influencer             string `json:"influencer,omitempty" jsonschema:"Influencers"`
	NeutralStakeholders    string `json:"neutral_stakeholders,omitempty" jsonschema:"Neutral stakeholders"`
	NegativeStakeholders   string `json:"negative_stakeholders,omitempty" jsonschema:"Negative stakeholders"`
	SuccessionRisk         string `json:"succession_risk,omitempty" jsonschema:"Succession risk"`
	Competitors            string `json:"competitors,omitempty" jsonschema:"Competitors present in the account"`
	Positioning            string `json:"positioning,omitempty" jsonschema:"Our positioning"`
	IncumbencyStrength     string `json:"incumbency_strength,omitempty" jsonschema:"Incumbency strength: High, Medium or Low"`
	RelativeStrengths      string `json:"relative_strengths,omitempty" jsonschema:"Relative strengths"`
	RelativeWeaknesses     string `json:"relative_weaknesses,omitempty" jsonschema:"Relative weaknesses"`
	ReviewCadence          string `json:"review_cadence,omitempty" jsonschema:"Review cadence"`
	QBRHappening           string `json:"qbr_happening" jsonschema:"Whether QBRs are happening: Yes or No (required)"`
	AuditFrequency         string `json:"audit_frequency,omitempty" jsonschema:"Audit frequency"`
}

func (h *ProfileHandlers) SaveProfile(ctx context.Context, _ *mcp.CallToolRequest, input SaveProfileInput) (*mcp.CallToolResult, GetProfileOutput, error) {
	profile := models.StrategicProfile{
		ID:                     input.ID,
		AccountID:              input.AccountID,
		Sponsor:                input.Sponsor,
		TechnicalDecisionMaker: input.TechnicalDecisionMaker,
		Influencer:             input.Influencer,
		NeutralStakeholders:    input.NeutralStakeholders,
		NegativeStakeholders:   input.NegativeStakeholders,
		SuccessionRisk:         input.SuccessionRisk,
		Competitors:            input.Competitors,
		Positioning:            input.Positioning,
		IncumbencyStrength:     input.IncumbencyStrength,
		RelativeStrengths:      input.RelativeStrengths,
		RelativeWeaknesses:     input.RelativeWeaknesses,
		ReviewCadence:          input.ReviewCadence,
		QBRHappening:           models.QBRStatus(input.QBRHappening),
		AuditFrequency:         input.AuditFrequency,
	}
	if account, ok := h.store.GetByID(input.AccountID); ok {
		profile.AccountName = account.Name
	}
	if err := models.Validate(profile); err != nil {
		return nil, GetProfileOutput{}, fmt.Errorf("invalid profile: %w", err)
	}
	if !h.store.SaveProfile(ctx, profile) {
		return nil, GetProfileOutput{}, noticeError(h.notices, "failed to save profile")
	}

	out := GetProfileOutput{AccountID: input.AccountID}
	if account, ok := h.store.GetByID(input.AccountID); ok && account.Profile() != nil {
		po := profileToOutput(*account.Profile())
		out.Found = true
		out.Profile = &po
	}
	return nil, out, nil
}

func profileToOutput(p models.StrategicProfile) ProfileOutput {
	return ProfileOutput{
		ID:                     p.ID,
		AccountID:              p.AccountID,
		AccountName:            p.AccountName,
		Sponsor:                p.Sponsor,
		TechnicalDecisionMaker: p.TechnicalDecisionMaker,
		Influencer:             p.Influencer,
		NeutralStakeholders:    p.NeutralStakeholders,
		NegativeStakeholders:   p.NegativeStakeholders,
		SuccessionRisk:         p.SuccessionRisk,
		Competitors:            p.Competitors,
		Positioning:            p.Positioning,
		IncumbencyStrength:     p.IncumbencyStrength,
		RelativeStrengths:      p.RelativeStrengths,
		RelativeWeaknesses:     p.RelativeWeaknesses,
		ReviewCadence:          p.ReviewCadence,
		QBRHappening:           string(p.QBRHappening),
		AuditFrequency:         p.AuditFrequency,
		UpdatedAt:              formatTime(p.UpdatedAt),
	}
}
