// ABOUTME: Stakeholder entity and the picklists it draws from
// ABOUTME: Relationship score is derived on every write, never set directly
package models

import (
	"strings"
	"time"
)

// Value-chain categories.
const (
	ValueChainResources   = "Resources"
	ValueChainTechnology  = "Technology"
	ValueChainEngineering = "Engineering"
	ValueChainBusiness    = "Business"
)

// ValueChainCategories lists every value-chain category.
var ValueChainCategories = []string{
	ValueChainResources,
	ValueChainTechnology,
	ValueChainEngineering,
	ValueChainBusiness,
}

// Designations is the fixed designation picklist.
var Designations = []string{
	"CEO", "CTO", "CIO", "CFO", "COO", "VP", "Director",
	"Senior Manager", "Manager", "Architect", "Lead", "Individual Contributor",
}

// Departments is the fixed department picklist.
var Departments = []string{
	"Executive", "Engineering", "IT", "Finance", "Operations",
	"Procurement", "Sales", "Marketing", "HR", "Legal",
}

// Stakeholder is a local-only contact at an account, tied to one project.
// RelationshipScore and ProjectName are derived on every write.
type Stakeholder struct {
	ID                 string    `json:"stakeholder_id"`
	AccountID          string    `json:"account_id" validate:"required"`
	ProjectID          string    `json:"project_id" validate:"required"`
	ProjectName        string    `json:"project_name"`
	Name               string    `json:"name" validate:"required"`
	Designation        string    `json:"designation" validate:"required,designation"`
	Department         string    `json:"department" validate:"required,department"`
	ValueChainCategory string    `json:"value_chain_category" validate:"required,oneof=Resources Technology Engineering Business"`
	IsChampion         bool      `json:"is_champion"`
	RelationshipScore  int       `json:"relationship_score"`
	Connections        []string  `json:"connections,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Recompute rewrites the derived relationship score, discarding any value a
// caller may have set.
func (s *Stakeholder) Recompute() {
	s.RelationshipScore = RelationshipScore(s.IsChampion, len(s.Connections))
}

// SetChampion changes champion status and recomputes the score.
func (s *Stakeholder) SetChampion(champion bool) {
	s.IsChampion = champion
	s.Recompute()
}

// SetConnections replaces the connection list and recomputes the score.
func (s *Stakeholder) SetConnections(names []string) {
	s.Connections = dedupeNames(names)
	s.Recompute()
}

// ParseConnections splits free text on commas, semicolons and newlines into
// trimmed, de-duplicated names.
func ParseConnections(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
	return dedupeNames(fields)
}

func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

func inList(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
