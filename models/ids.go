// ABOUTME: Client-side identifier generation for entities created locally
// ABOUTME: Prefixes a time-ordered ULID so ids sort by creation time
package models

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Identifier prefixes.
const (
	AccountIDPrefix     = "acc-"
	ProjectIDPrefix     = "prj-"
	StakeholderIDPrefix = "stk-"
)

// NewAccountID returns a client-generated account id.
func NewAccountID() string { return newID(AccountIDPrefix) }

// NewProjectID returns a client-generated project id.
func NewProjectID() string { return newID(ProjectIDPrefix) }

// NewStakeholderID returns a client-generated stakeholder id.
func NewStakeholderID() string { return newID(StakeholderIDPrefix) }

func newID(prefix string) string {
	return prefix + strings.ToLower(ulid.Make().String())
}
