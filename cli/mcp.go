// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server exposing the portfolio tools and resources over stdio
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Akshada2906/circle-insights/handlers"
)

// NewMCPServer builds the server with every tool and resource registered.
func NewMCPServer(env *Env, version string) *mcp.Server {
	accountHandlers := handlers.NewAccountHandlers(env.Accounts, env.Notices)
	profileHandlers := handlers.NewProfileHandlers(env.Accounts, env.Notices)
	projectHandlers := handlers.NewProjectHandlers(env.Accounts)
	stakeholderHandlers := handlers.NewStakeholderHandlers(env.Stakeholders)
	vizHandlers := handlers.NewVizHandlers(env.Accounts, env.Stakeholders, env.Notices)
	resourceHandlers := handlers.NewResourceHandlers(env.Accounts, env.Stakeholders)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "circle",
		Version: version,
	}, nil)

	// Accounts
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_accounts",
		Description: "List client accounts with shortfall and health bands",
	}, accountHandlers.ListAccounts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_account",
		Description: "Fetch one account, optionally with its strategic profile",
	}, accountHandlers.GetAccount)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_account",
		Description: "Create a client account; the 2026 shortfall is derived from target and forecast",
	}, accountHandlers.CreateAccount)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_account",
		Description: "Update selected fields of an account",
	}, accountHandlers.UpdateAccount)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_account",
		Description: "Delete an account and its local projects",
	}, accountHandlers.DeleteAccount)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_accounts_by_unit",
		Description: "Search accounts by business unit",
	}, accountHandlers.SearchByUnit)

	// Strategic profiles
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_account_profile",
		Description: "Get the strategic stakeholder profile of an account",
	}, profileHandlers.GetProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_account_profile",
		Description: "Create or update the strategic stakeholder profile of an account",
	}, profileHandlers.SaveProfile)

	// Projects
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_project",
		Description: "Add a project under an account",
	}, projectHandlers.AddProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List the projects of an account",
	}, projectHandlers.ListProjects)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project",
	}, projectHandlers.DeleteProject)

	// Stakeholders
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_stakeholder",
		Description: "Add a stakeholder to a project; the relationship score is derived",
	}, stakeholderHandlers.AddStakeholder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_stakeholder",
		Description: "Update a stakeholder's details, champion status or connections",
	}, stakeholderHandlers.UpdateStakeholder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_stakeholder",
		Description: "Delete a stakeholder",
	}, stakeholderHandlers.DeleteStakeholder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_stakeholders",
		Description: "List stakeholders by project, by account or all of them",
	}, stakeholderHandlers.ListStakeholders)

	// Visualization
	mcp.AddTool(server, &mcp.Tool{
		Name:        "portfolio_dashboard",
		Description: "Summarize the portfolio by focus tier with shortfall and health bands",
	}, vizHandlers.PortfolioDashboard)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stakeholder_graph",
		Description: "Generate a GraphViz DOT graph of an account's projects and stakeholders",
	}, vizHandlers.StakeholderGraph)

	// Resources
	server.AddResource(&mcp.Resource{
		URI:         "circle://accounts",
		Name:        "accounts",
		Description: "All cached client accounts",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "circle://accounts/{id}",
		Name:        "account",
		Description: "One cached client account",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "circle://accounts/{id}/stakeholders",
		Name:        "account-stakeholders",
		Description: "Stakeholders tracked for an account",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	return server
}

// MCPCommand starts the MCP server on stdio.
func MCPCommand(ctx context.Context, env *Env, logger *log.Logger, version string) error {
	logger.Info("Starting Circle Insights MCP server")
	return NewMCPServer(env, version).Run(ctx, &mcp.StdioTransport{})
}
