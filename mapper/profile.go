// ABOUTME: Translation between stakeholder-detail records and strategic profiles
// ABOUTME: Converts the backend qbr boolean and renames influencers
package mapper

import (
	"github.com/Akshada2906/circle-insights/api"
	"github.com/Akshada2906/circle-insights/models"
)

// QBRFromWire converts the backend boolean into the Yes/No domain value.
func QBRFromWire(happening bool) models.QBRStatus {
	if happening {
		return models.QBRYes
	}
	return models.QBRNo
}

// QBRToWire converts the Yes/No domain value into the backend boolean.
// Anything other than Yes is false.
func QBRToWire(status models.QBRStatus) bool {
	return status == models.QBRYes
}

// Profile maps a backend record onto a strategic profile.
func Profile(rec api.StakeholderDetailRecord) models.StrategicProfile {
	return models.StrategicProfile{
		ID:                     rec.ID,
		AccountID:              rec.AccountID,
		AccountName:            str(rec.AccountName),
		Sponsor:                str(rec.Sponsor),
		TechnicalDecisionMaker: str(rec.TechnicalDecisionMaker),
		Influencer:             str(rec.Influencers),
		NeutralStakeholders:    str(rec.NeutralStakeholders),
		NegativeStakeholders:   str(rec.NegativeStakeholders),
		SuccessionRisk:         str(rec.SuccessionRisk),
		Competitors:            str(rec.Competitors),
		Positioning:            str(rec.Positioning),
		IncumbencyStrength:     str(rec.IncumbencyStrength),
		RelativeStrengths:      str(rec.RelativeStrengths),
		RelativeWeaknesses:     str(rec.RelativeWeaknesses),
		ReviewCadence:          str(rec.ReviewCadence),
		QBRHappening:           QBRFromWire(flag(rec.QBRHappening)),
		AuditFrequency:         str(rec.AuditFrequency),
		CreatedAt:              timestamp(rec.CreatedAt),
		UpdatedAt:              timestamp(rec.UpdatedAt),
	}
}

// Profiles maps a list of records, preserving order.
func Profiles(recs []api.StakeholderDetailRecord) []models.StrategicProfile {
	out := make([]models.StrategicProfile, len(recs))
	for i, rec := range recs {
		out[i] = Profile(rec)
	}
	return out
}

// ProfileCreate builds the create payload for a profile.
func ProfileCreate(p models.StrategicProfile) api.StakeholderDetailCreate {
	return api.StakeholderDetailCreate{
		AccountID:              p.AccountID,
		AccountName:            p.AccountName,
		Sponsor:                p.Sponsor,
		TechnicalDecisionMaker: p.TechnicalDecisionMaker,
		Influencers:            p.Influencer,
		NeutralStakeholders:    p.NeutralStakeholders,
		NegativeStakeholders:   p.NegativeStakeholders,
		SuccessionRisk:         p.SuccessionRisk,
		Competitors:            p.Competitors,
		Positioning:            p.Positioning,
		IncumbencyStrength:     p.IncumbencyStrength,
		RelativeStrengths:      p.RelativeStrengths,
		RelativeWeaknesses:     p.RelativeWeaknesses,
		ReviewCadence:          p.ReviewCadence,
		QBRHappening:           QBRToWire(p.QBRHappening),
		AuditFrequency:         p.AuditFrequency,
	}
}

// ProfileUpdate builds a full-form update payload: every editable field of
// the profile form is sent.
func ProfileUpdate(p models.StrategicProfile) api.StakeholderDetailUpdate {
	qbr := QBRToWire(p.QBRHappening)
	return api.StakeholderDetailUpdate{
		AccountName:            &p.AccountName,
		Sponsor:                &p.Sponsor,
		TechnicalDecisionMaker: &p.TechnicalDecisionMaker,
		Influencers:            &p.Influencer,
		NeutralStakeholders:    &p.NeutralStakeholders,
		NegativeStakeholders:   &p.NegativeStakeholders,
		SuccessionRisk:         &p.SuccessionRisk,
		Competitors:            &p.Competitors,
		Positioning:            &p.Positioning,
		IncumbencyStrength:     &p.IncumbencyStrength,
		RelativeStrengths:      &p.RelativeStrengths,
		RelativeWeaknesses:     &p.RelativeWeaknesses,
		ReviewCadence:          &p.ReviewCadence,
		QBRHappening:           &qbr,
		AuditFrequency:         &p.AuditFrequency,
	}
}
