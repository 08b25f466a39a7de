// ABOUTME: Portfolio dashboard and stakeholder graph MCP handlers
// ABOUTME: Provides portfolio_dashboard and stakeholder_graph tools for agents
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
	"github.com/Akshada2906/circle-insights/viz"
)

type VizHandlers struct {
	accounts     *store.AccountStore
	stakeholders *store.StakeholderStore
	notices      *store.Recorder
}

func NewVizHandlers(accounts *store.AccountStore, stakeholders *store.StakeholderStore, notices *store.Recorder) *VizHandlers {
	return &VizHandlers{accounts: accounts, stakeholders: stakeholders, notices: notices}
}

type PortfolioDashboardInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"Refetch accounts before aggregating"`
}

type FocusOutput struct {
	Focus     string  `json:"focus"`
	Count     int     `json:"count"`
	Target    float64 `json:"target"`
	Forecast  float64 `json:"forecast"`
	Shortfall float64 `json:"shortfall"`
}

type PortfolioDashboardOutput struct {
	TotalAccounts    int            `json:"total_accounts"`
	ByFocus          []FocusOutput  `json:"by_focus"`
	Target           float64        `json:"target"`
	Forecast         float64        `json:"forecast"`
	Shortfall        float64        `json:"shortfall"`
	ShortfallPercent float64        `json:"shortfall_percent"`
	ShortfallBands   map[string]int `json:"shortfall_bands"`
	HealthBands      map[string]int `json:"health_bands"`
	NeedsAttention   []string       `json:"needs_attention,omitempty"`
	Rendered         string         `json:"rendered"`
}

func (h *VizHandlers) PortfolioDashboard(ctx context.Context, _ *mcp.CallToolRequest, input PortfolioDashboardInput) (*mcp.CallToolResult, PortfolioDashboardOutput, error) {
	if input.Refresh || h.accounts.State() != store.StateReady {
		if !h.accounts.Refresh(ctx) {
			return nil, PortfolioDashboardOutput{}, noticeError(h.notices, "failed to load accounts")
		}
	}

	stats := viz.Portfolio(h.accounts.Accounts())
	out := PortfolioDashboardOutput{
		TotalAccounts:    stats.TotalAccounts,
		Target:           stats.Target,
		Forecast:         stats.Forecast,
		Shortfall:        stats.Shortfall,
		ShortfallPercent: stats.ShortfallPercent(),
		ShortfallBands:   bandsToOutput(stats.ShortfallBands),
		HealthBands:      bandsToOutput(stats.HealthBands),
		Rendered:         viz.RenderDashboard(stats),
	}
	for _, focus := range []string{models.FocusPlatinum, models.FocusGold, models.FocusSilver, "Unassigned"} {
		if fs, ok := stats.ByFocus[focus]; ok {
			out.ByFocus = append(out.ByFocus, FocusOutput(fs))
		}
	}
	for _, item := range stats.Critical {
		out.NeedsAttention = append(out.NeedsAttention, fmt.Sprintf("%s (%s): %s", item.Name, item.AccountID, item.Reason))
	}
	return nil, out, nil
}

type StakeholderGraphInput struct {
	AccountID string `json:"account_id" jsonschema:"Account ID (required)"`
}

type StakeholderGraphOutput struct {
	AccountID string `json:"account_id"`
	DOTSource string `json:"dot_source"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

func (h *VizHandlers) StakeholderGraph(_ context.Context, _ *mcp.CallToolRequest, input StakeholderGraphInput) (*mcp.CallToolResult, StakeholderGraphOutput, error) {
	account, ok := h.accounts.GetByID(input.AccountID)
	if !ok {
		return nil, StakeholderGraphOutput{}, fmt.Errorf("account %s is not loaded", input.AccountID)
	}

	dot, stats, err := viz.StakeholderGraph(account, account.Projects, h.stakeholders.ByAccount(account.ID))
	if err != nil {
		return nil, StakeholderGraphOutput{}, fmt.Errorf("failed to generate graph: %w", err)
	}
	return nil, StakeholderGraphOutput{
		AccountID: account.ID,
		DOTSource: dot,
		NodeCount: stats.Nodes,
		EdgeCount: stats.Edges,
	}, nil
}

func bandsToOutput(bands map[models.Status]int) map[string]int {
	out := map[string]int{
		string(models.StatusGood):     0,
		string(models.StatusWarning):  0,
		string(models.StatusCritical): 0,
	}
	for status, n := range bands {
		out[string(status)] = n
	}
	return out
}
