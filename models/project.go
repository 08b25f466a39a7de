// ABOUTME: Project entity tracked locally under an account
// ABOUTME: Defines circles, project status and tech-stack set handling
package models

import (
	"strings"
	"time"
)

// Circles are the practice areas penetration is tracked against.
const (
	CircleCloud    = "Cloud"
	CircleData     = "Data"
	CircleAI       = "AI"
	CircleSecurity = "Security"
	CircleDevOps   = "DevOps"
)

// Circles lists every circle in display order.
var Circles = []string{CircleCloud, CircleData, CircleAI, CircleSecurity, CircleDevOps}

// Project status values.
const (
	ProjectActive   = "ACTIVE"
	ProjectInactive = "INACTIVE"
)

// Project is a local-only engagement under one account. It is never sent to
// the backend.
type Project struct {
	ID             string    `json:"project_id"`
	AccountID      string    `json:"account_id" validate:"required"`
	Name           string    `json:"project_name" validate:"required"`
	Manager        string    `json:"project_manager" validate:"required"`
	Summary        string    `json:"summary" validate:"required"`
	TechStack      []string  `json:"tech_stack" validate:"min=1,dive,required"`
	Circle         string    `json:"circle" validate:"required,oneof=Cloud Data AI Security DevOps"`
	ConnectedWith  string    `json:"connected_with,omitempty"`
	Competitor     string    `json:"competitor,omitempty"`
	CompetitorRisk string    `json:"competitor_risk,omitempty"`
	Status         string    `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AddTech appends a tag unless an equal tag (ignoring case and surrounding
// space) is already present. It reports whether the tag was added.
func (p *Project) AddTech(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, existing := range p.TechStack {
		if strings.EqualFold(existing, tag) {
			return false
		}
	}
	p.TechStack = append(p.TechStack, tag)
	return true
}

// RemoveTech drops a tag, matching case-insensitively.
func (p *Project) RemoveTech(tag string) {
	out := p.TechStack[:0]
	for _, existing := range p.TechStack {
		if !strings.EqualFold(existing, strings.TrimSpace(tag)) {
			out = append(out, existing)
		}
	}
	p.TechStack = out
}

// NormalizeTechStack returns tags trimmed and de-duplicated, keeping the first
// spelling of each and the original order.
func NormalizeTechStack(tags []string) []string {
	p := Project{}
	for _, t := range tags {
		p.AddTech(t)
	}
	return p.TechStack
}

// ConnectedNames parses ConnectedWith into individual names.
func (p *Project) ConnectedNames() []string {
	return ParseConnections(p.ConnectedWith)
}
