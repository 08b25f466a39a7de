// ABOUTME: MCP resource handlers exposing cached portfolio data
// ABOUTME: Provides read-only access to accounts and their projects via circle:// URIs
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Akshada2906/circle-insights/store"
)

const resourceScheme = "circle://"

type ResourceHandlers struct {
	accounts     *store.AccountStore
	stakeholders *store.StakeholderStore
}

func NewResourceHandlers(accounts *store.AccountStore, stakeholders *store.StakeholderStore) *ResourceHandlers {
	return &ResourceHandlers{accounts: accounts, stakeholders: stakeholders}
}

// ReadResource serves circle://accounts, circle://accounts/{id} and
// circle://accounts/{id}/stakeholders from the cache.
func (h *ResourceHandlers) ReadResource(ctx context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if request == nil || request.Params == nil || request.Params.URI == "" {
		return nil, fmt.Errorf("resource URI is required")
	}
	uri := request.Params.URI
	if !strings.HasPrefix(uri, resourceScheme) {
		return nil, fmt.Errorf("invalid URI scheme: expected %s", resourceScheme)
	}

	parts := strings.Split(strings.TrimPrefix(uri, resourceScheme), "/")
	if parts[0] != "accounts" {
		return nil, fmt.Errorf("unknown resource: %s", parts[0])
	}

	switch len(parts) {
	case 1:
		if h.accounts.State() != store.StateReady {
			h.accounts.Refresh(ctx)
		}
		accounts := h.accounts.Accounts()
		out := make([]AccountOutput, len(accounts))
		for i, a := range accounts {
			out[i] = accountToOutput(a)
		}
		return jsonResource(uri, out)

	case 2:
		account, ok := h.accounts.GetByID(parts[1])
		if !ok {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return jsonResource(uri, accountToOutput(account))

	case 3:
		if parts[2] != "stakeholders" {
			return nil, fmt.Errorf("unknown resource: %s", parts[2])
		}
		found := h.stakeholders.ByAccount(parts[1])
		out := make([]StakeholderOutput, len(found))
		for i, st := range found {
			out[i] = stakeholderToOutput(st)
		}
		return jsonResource(uri, out)
	}

	return nil, mcp.ResourceNotFoundError(uri)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}}, nil
}
