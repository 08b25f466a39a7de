// ABOUTME: Project MCP tool handlers
// ABOUTME: Implements add_project, list_projects and delete_project against the local collection
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

type ProjectHandlers struct {
	store *store.AccountStore
}

func NewProjectHandlers(accounts *store.AccountStore) *ProjectHandlers {
	return &ProjectHandlers{store: accounts}
}

type ProjectOutput struct {
	ID             string   `json:"project_id"`
	AccountID      string   `json:"account_id"`
	Name           string   `json:"project_name"`
	Manager        string   `json:"project_manager"`
	Summary        string   `json:"summary"`
	TechStack      []string `json:"tech_stack"`
	Circle         string   `json:"circle"`
	ConnectedWith  string   `json:"connected_with,omitempty"`
	Competitor     string   `json:"competitor,omitempty"`
	CompetitorRisk string   `json:"competitor_risk,omitempty"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
}

type AddProjectInput struct {
	AccountID      string   `json:"account_id" jsonschema:"Account ID (required)"`
	Name           string   `json:"project_name" jsonschema:"Project name (required)"`
	Manager        string   `json:"project_manager" jsonschema:"Project manager (required)"`
	Summary        string   `json:"summary" jsonschema:"Short project summary (required)"`
	TechStack      []string `json:"tech_stack" jsonschema:"Technologies used, at least one (required)"`
	Circle         string   `json:"circle" jsonschema:"Circle: Cloud, Data, AI, Security or DevOps (required)"`
	ConnectedWith  string   `json:"connected_with,omitempty" jsonschema:"Comma-separated names of client people on the project"`
	Competitor     string   `json:"competitor,omitempty" jsonschema:"Competitor present on the project"`
	CompetitorRisk string   `json:"competitor_risk,omitempty" jsonschema:"Competitor risk"`
}

func (h *ProjectHandlers) AddProject(_ context.Context, _ *mcp.CallToolRequest, input AddProjectInput) (*mcp.CallToolResult, ProjectOutput, error) {
	if _, ok := h.store.GetByID(input.AccountID); !ok {
		return nil, ProjectOutput{}, fmt.Errorf("account %s is not loaded; list or get it first", input.AccountID)
	}

	project, err := h.store.AddProject(models.Project{
		AccountID:      input.AccountID,
		Name:           input.Name,
		Manager:        input.Manager,
		Summary:        input.Summary,
		TechStack:      input.TechStack,
		Circle:         input.Circle,
		ConnectedWith:  input.ConnectedWith,
		Competitor:     input.Competitor,
		CompetitorRisk: input.CompetitorRisk,
	})
	if err != nil {
		return nil, ProjectOutput{}, fmt.Errorf("failed to add project: %w", err)
	}
	return nil, projectToOutput(project), nil
}

type ListProjectsInput struct {
	AccountID string `json:"account_id" jsonschema:"Account ID (required)"`
}

type ListProjectsOutput struct {
	AccountID string          `json:"account_id"`
	Projects  []ProjectOutput `json:"projects"`
}

func (h *ProjectHandlers) ListProjects(_ context.Context, _ *mcp.CallToolRequest, input ListProjectsInput) (*mcp.CallToolResult, ListProjectsOutput, error) {
	if input.AccountID == "" {
		return nil, ListProjectsOutput{}, fmt.Errorf("account_id is required")
	}
	projects := h.store.ProjectsFor(input.AccountID)
	out := ListProjectsOutput{AccountID: input.AccountID, Projects: make([]ProjectOutput, len(projects))}
	for i, p := range projects {
		out.Projects[i] = projectToOutput(p)
	}
	return nil, out, nil
}

type DeleteProjectInput struct {
	ProjectID string `json:"project_id" jsonschema:"Project ID (required)"`
}

type DeleteProjectOutput struct {
	Deleted   bool   `json:"deleted"`
	ProjectID string `json:"project_id"`
}

func (h *ProjectHandlers) DeleteProject(_ context.Context, _ *mcp.CallToolRequest, input DeleteProjectInput) (*mcp.CallToolResult, DeleteProjectOutput, error) {
	if err := h.store.DeleteProject(input.ProjectID); err != nil {
		return nil, DeleteProjectOutput{}, fmt.Errorf("failed to delete project: %w", err)
	}
	return nil, DeleteProjectOutput{Deleted: true, ProjectID: input.ProjectID}, nil
}

func projectToOutput(p models.Project) ProjectOutput {
	return ProjectOutput{
		ID:             p.ID,
		AccountID:      p.AccountID,
		Name:           p.Name,
		Manager:        p.Manager,
		Summary:        p.Summary,
		TechStack:      p.TechStack,
		Circle:         p.Circle,
		ConnectedWith:  p.ConnectedWith,
		Competitor:     p.Competitor,
		CompetitorRisk: p.CompetitorRisk,
		Status:         p.Status,
		CreatedAt:      formatTime(p.CreatedAt),
	}
}
