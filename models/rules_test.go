// ABOUTME: Tests for derived-value rules
// ABOUTME: Covers relationship scoring, shortfall arithmetic and status banding
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationshipScore(t *testing.T) {
	tests := []struct {
		name        string
		champion    bool
		connections int
		want        int
	}{
		{"neutral without connections", false, 0, 5},
		{"champion without connections", true, 0, 8},
		{"champion with many connections", true, 5, 10},
		{"neutral with many connections", false, 10, 7},
		{"neutral with one connection", false, 1, 6},
		{"champion with two connections", true, 2, 10},
		{"negative connection count", false, -3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelationshipScore(tt.champion, tt.connections))
		})
	}
}

func TestRelationshipScoreStaysInRange(t *testing.T) {
	for _, champion := range []bool{true, false} {
		for n := 0; n < 50; n++ {
			score := RelationshipScore(champion, n)
			assert.GreaterOrEqual(t, score, MinRelationshipScore)
			assert.LessOrEqual(t, score, MaxRelationshipScore)
		}
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 1, ClampScore(-4))
	assert.Equal(t, 10, ClampScore(42))
	assert.Equal(t, 7, ClampScore(7))
}

func TestShortfall(t *testing.T) {
	assert.Equal(t, 250.0, Shortfall(1000, 750))
	assert.Equal(t, -200.0, Shortfall(800, 1000))
	assert.Equal(t, 0.0, Shortfall(0, 0))
}

func TestShortfallPercent(t *testing.T) {
	assert.InDelta(t, 25.0, ShortfallPercent(1000, 750), 0.0001)
	assert.InDelta(t, -25.0, ShortfallPercent(800, 1000), 0.0001)
	assert.Equal(t, 0.0, ShortfallPercent(0, 500))
}

func TestBucket(t *testing.T) {
	tests := []struct {
		p    float64
		want Status
	}{
		{100, StatusGood},
		{70, StatusGood},
		{69.9, StatusWarning},
		{50, StatusWarning},
		{49.9, StatusCritical},
		{0, StatusCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bucket(tt.p, HealthThresholds), "p=%v", tt.p)
	}
}

func TestShortfallBand(t *testing.T) {
	assert.Equal(t, StatusGood, ShortfallBand(-5))
	assert.Equal(t, StatusGood, ShortfallBand(10))
	assert.Equal(t, StatusWarning, ShortfallBand(10.5))
	assert.Equal(t, StatusWarning, ShortfallBand(25))
	assert.Equal(t, StatusCritical, ShortfallBand(25.1))
}

func TestAccountDerivedFields(t *testing.T) {
	acc := Account{Name: "Acme Corp", Target2026: 1000, Forecast2026: 950, HealthScore: 55}
	acc.RecomputeShortfall()

	assert.Equal(t, 50.0, acc.Shortfall2026)
	assert.Equal(t, StatusGood, acc.ShortfallStatus())
	assert.Equal(t, StatusWarning, acc.HealthStatus())
	assert.Nil(t, acc.Profile())
}

func TestAccountPatchDeriveShortfall(t *testing.T) {
	current := Account{Target2026: 1000, Forecast2026: 400}

	target := 1200.0
	patch := AccountPatch{Target2026: &target}
	patch.DeriveShortfall(current)
	if assert.NotNil(t, patch.Shortfall2026) {
		assert.Equal(t, 800.0, *patch.Shortfall2026)
	}

	teamSize := 12
	untouched := AccountPatch{TeamSize: &teamSize}
	untouched.DeriveShortfall(current)
	assert.Nil(t, untouched.Shortfall2026)
}
