// ABOUTME: Derived-value rules shared across the domain
// ABOUTME: Relationship scoring, financial shortfall and three-level status banding
package models

// Status is a three-level ordinal used for display banding.
type Status string

const (
	StatusGood     Status = "Good"
	StatusWarning  Status = "Warning"
	StatusCritical Status = "Critical"
)

// Thresholds are the inclusive lower bounds for Good and Warning.
type Thresholds struct {
	High float64
	Low  float64
}

// HealthThresholds band the 0-100 account health score.
var HealthThresholds = Thresholds{High: 70, Low: 50}

// ShortfallThresholds band the shortfall percentage, where lower is better.
var ShortfallThresholds = Thresholds{High: 10, Low: 25}

// Relationship score bounds.
const (
	MinRelationshipScore = 1
	MaxRelationshipScore = 10

	baseRelationshipScore = 5
	championBonus         = 3
	maxConnectionBonus    = 2
)

// RelationshipScore derives a stakeholder's 1-10 score from champion status
// and the number of tracked connections.
func RelationshipScore(isChampion bool, connections int) int {
	score := baseRelationshipScore
	if isChampion {
		score += championBonus
	}
	if connections > 0 {
		score += min(connections, maxConnectionBonus)
	}
	return ClampScore(score)
}

// ClampScore pins a score into [MinRelationshipScore, MaxRelationshipScore].
func ClampScore(score int) int {
	return max(MinRelationshipScore, min(MaxRelationshipScore, score))
}

// Shortfall is the gap between a target and its forecast. It is negative when
// the forecast exceeds the target.
func Shortfall(target, forecast float64) float64 {
	return target - forecast
}

// ShortfallPercent expresses the shortfall as a percentage of target.
// A zero target yields zero.
func ShortfallPercent(target, forecast float64) float64 {
	if target == 0 {
		return 0
	}
	return Shortfall(target, forecast) / target * 100
}

// Bucket classifies p: p >= High is Good, p >= Low is Warning, otherwise Critical.
func Bucket(p float64, t Thresholds) Status {
	switch {
	case p >= t.High:
		return StatusGood
	case p >= t.Low:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// ShortfallBand bands a shortfall percentage. The metric is negated so a
// shortfall at or under 10% is Good and at or under 25% is Warning.
func ShortfallBand(pct float64) Status {
	return Bucket(-pct, Thresholds{High: -ShortfallThresholds.High, Low: -ShortfallThresholds.Low})
}
