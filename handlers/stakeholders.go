// ABOUTME: Stakeholder MCP tool handlers
// ABOUTME: Implements add, update, delete and list over the local stakeholder collection
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

type StakeholderHandlers struct {
	stakeholders *store.StakeholderStore
}

func NewStakeholderHandlers(stakeholders *store.StakeholderStore) *StakeholderHandlers {
	return &StakeholderHandlers{stakeholders: stakeholders}
}

type StakeholderOutput struct {
	ID                 string   `json:"stakeholder_id"`
	AccountID          string   `json:"account_id"`
	ProjectID          string   `json:"project_id"`
	ProjectName        string   `json:"project_name"`
	Name               string   `json:"name"`
	Designation        string   `json:"designation"`
	Department         string   `json:"department"`
	ValueChainCategory string   `json:"value_chain_category"`
	IsChampion         bool     `json:"is_champion"`
	RelationshipScore  int      `json:"relationship_score"`
	Connections        []string `json:"connections,omitempty"`
}

type AddStakeholderInput struct {
	AccountID          string `json:"account_id" jsonschema:"Account ID (required)"`
	ProjectID          string `json:"project_id" jsonschema:"Project ID (required)"`
	Name               string `json:"name" jsonschema:"Stakeholder name (required)"`
	Designation        string `json:"designation" jsonschema:"Designation, e.g. CTO, VP, Director (required)"`
	Department         string `json:"department" jsonschema:"Department, e.g. Engineering, IT, Finance (required)"`
	ValueChainCategory string `json:"value_chain_category" jsonschema:"Resources, Technology, Engineering or Business (required)"`
	IsChampion         bool   `json:"is_champion,omitempty" jsonschema:"Whether this person champions us internally"`
	Connections        string `json:"connections,omitempty" jsonschema:"Comma, semicolon or newline separated names this person is connected to"`
}

func (h *StakeholderHandlers) AddStakeholder(_ context.Context, _ *mcp.CallToolRequest, input AddStakeholderInput) (*mcp.CallToolResult, StakeholderOutput, error) {
	st, err := h.stakeholders.Add(models.Stakeholder{
		AccountID:          input.AccountID,
		ProjectID:          input.ProjectID,
		Name:               input.Name,
		Designation:        input.Designation,
		Department:         input.Department,
		ValueChainCategory: input.ValueChainCategory,
		IsChampion:         input.IsChampion,
		Connections:        models.ParseConnections(input.Connections),
	})
	if err != nil {
		return nil, StakeholderOutput{}, fmt.Errorf("failed to add stakeholder: %w", err)
	}
	return nil, stakeholderToOutput(st), nil
}

type UpdateStakeholderInput struct {
	StakeholderID      string  `json:"stakeholder_id" jsonschema:"Stakeholder ID (required)"`
	ProjectID          *string `json:"project_id,omitempty" jsonschema:"Move to another project"`
	Name               *string `json:"name,omitempty" jsonschema:"New name"`
	Designation        *string `json:"designation,omitempty" jsonschema:"New designation"`
	Department         *string `json:"department,omitempty" jsonschema:"New department"`
	ValueChainCategory *string `json:"value_chain_category,omitempty" jsonschema:"New value chain category"`
	IsChampion         *bool   `json:"is_champion,omitempty" jsonschema:"Champion status"`
	Connections        *string `json:"connections,omitempty" jsonschema:"Replacement connection list"`
}

func (h *StakeholderHandlers) UpdateStakeholder(_ context.Context, _ *mcp.CallToolRequest, input UpdateStakeholderInput) (*mcp.CallToolResult, StakeholderOutput, error) {
	st, ok := h.stakeholders.Get(input.StakeholderID)
	if !ok {
		return nil, StakeholderOutput{}, fmt.Errorf("stakeholder %s not found", input.StakeholderID)
	}

	set(&st.ProjectID, input.ProjectID)
	set(&st.Name, input.Name)
	set(&st.Designation, input.Designation)
	set(&st.Department, input.Department)
	set(&st.ValueChainCategory, input.ValueChainCategory)
	if input.IsChampion != nil {
		st.SetChampion(*input.IsChampion)
	}
	if input.Connections != nil {
		st.SetConnections(models.ParseConnections(*input.Connections))
	}

	updated, err := h.stakeholders.Update(st)
	if err != nil {
		return nil, StakeholderOutput{}, fmt.Errorf("failed to update stakeholder: %w", err)
	}
	return nil, stakeholderToOutput(updated), nil
}

type DeleteStakeholderInput struct {
	StakeholderID string `json:"stakeholder_id" jsonschema:"Stakeholder ID (required)"`
}

type DeleteStakeholderOutput struct {
	Deleted       bool   `json:"deleted"`
	StakeholderID string `json:"stakeholder_id"`
}

func (h *StakeholderHandlers) DeleteStakeholder(_ context.Context, _ *mcp.CallToolRequest, input DeleteStakeholderInput) (*mcp.CallToolResult, DeleteStakeholderOutput, error) {
	if err := h.stakeholders.Delete(input.StakeholderID); err != nil {
		return nil, DeleteStakeholderOutput{}, fmt.Errorf("failed to delete stakeholder: %w", err)
	}
	return nil, DeleteStakeholderOutput{Deleted: true, StakeholderID: input.StakeholderID}, nil
}

type ListStakeholdersInput struct {
	AccountID string `json:"account_id,omitempty" jsonschema:"Filter by account"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"Filter by project; takes precedence over account_id"`
}

type ListStakeholdersOutput struct {
	Stakeholders []StakeholderOutput `json:"stakeholders"`
	Count        int                 `json:"count"`
}

func (h *StakeholderHandlers) ListStakeholders(_ context.Context, _ *mcp.CallToolRequest, input ListStakeholdersInput) (*mcp.CallToolResult, ListStakeholdersOutput, error) {
	var found []models.Stakeholder
	switch {
	case input.ProjectID != "":
		found = h.stakeholders.ByProject(input.ProjectID)
	case input.AccountID != "":
		found = h.stakeholders.ByAccount(input.AccountID)
	default:
		found = h.stakeholders.All()
	}

	out := ListStakeholdersOutput{Stakeholders: make([]StakeholderOutput, len(found)), Count: len(found)}
	for i, st := range found {
		out.Stakeholders[i] = stakeholderToOutput(st)
	}
	return nil, out, nil
}

func stakeholderToOutput(st models.Stakeholder) StakeholderOutput {
	return StakeholderOutput{
		ID:                 st.ID,
		AccountID:          st.AccountID,
		ProjectID:          st.ProjectID,
		ProjectName:        st.ProjectName,
		Name:               st.Name,
		Designation:        st.Designation,
		Department:         st.Department,
		ValueChainCategory: st.ValueChainCategory,
		IsChampion:         st.IsChampion,
		RelationshipScore:  st.RelationshipScore,
		Connections:        st.Connections,
	}
}
