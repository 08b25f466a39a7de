// ABOUTME: Account MCP tool handlers
// ABOUTME: Implements list, get, create, update, delete and unit search over the account store
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

type AccountHandlers struct {
	store   *store.AccountStore
	notices *store.Recorder
}

func NewAccountHandlers(accounts *store.AccountStore, notices *store.Recorder) *AccountHandlers {
	return &AccountHandlers{store: accounts, notices: notices}
}

type AccountOutput struct {
	ID                   string          `json:"account_id"`
	Name                 string          `json:"account_name"`
	Domain               string          `json:"domain,omitempty"`
	Focus                string          `json:"focus,omitempty"`
	Unit                 string          `json:"unit,omitempty"`
	CompanyRevenue       float64         `json:"company_revenue"`
	LastYearBusiness     float64         `json:"last_year_business"`
	Target2026           float64         `json:"target_2026"`
	Forecast2026         float64         `json:"forecast_2026"`
	Shortfall2026        float64         `json:"shortfall_2026"`
	ShortfallPercent     float64         `json:"shortfall_percent"`
	ShortfallStatus      string          `json:"shortfall_status"`
	PipelineValue        float64         `json:"pipeline_value"`
	AttritionRisk        string          `json:"attrition_risk,omitempty"`
	Owner                string          `json:"account_owner,omitempty"`
	TeamSize             int             `json:"team_size"`
	RateCardHealth       string          `json:"rate_card_health,omitempty"`
	ActiveProjects       int             `json:"active_projects"`
	EngagementModel      string          `json:"engagement_model,omitempty"`
	ValueChainFit        string          `json:"value_chain_fit,omitempty"`
	RoadmapVisibility    string          `json:"roadmap_visibility,omitempty"`
	ChampionName         string          `json:"champion_name,omitempty"`
	NPSScore             float64         `json:"nps_score"`
	DecisionMakerConnect bool            `json:"decision_maker_connect"`
	GrowthPlanReady      bool            `json:"growth_plan_ready"`
	HealthScore          float64         `json:"health_score"`
	HealthStatus         string          `json:"health_status"`
	Projects             []ProjectOutput `json:"projects,omitempty"`
	Profile              *ProfileOutput  `json:"strategic_profile,omitempty"`
	CreatedAt            string          `json:"created_at,omitempty"`
	UpdatedAt            string          `json:"updated_at,omitempty"`
}

type ListAccountsInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"Refetch the account list from the backend before answering"`
}

type ListAccountsOutput struct {
	State    string          `json:"state"`
	Accounts []AccountOutput `json:"accounts"`
}

func (h *AccountHandlers) ListAccounts(ctx context.Context, _ *mcp.CallToolRequest, input ListAccountsInput) (*mcp.CallToolResult, ListAccountsOutput, error) {
	if input.Refresh || h.store.State() != store.StateReady {
		if !h.store.Refresh(ctx) {
			return nil, ListAccountsOutput{}, h.failure("failed to load accounts")
		}
	}

	accounts := h.store.Accounts()
	out := ListAccountsOutput{State: h.store.State().String(), Accounts: make([]AccountOutput, len(accounts))}
	for i, a := range accounts {
		out.Accounts[i] = accountToOutput(a)
	}
	return nil, out, nil
}

type GetAccountInput struct {
	AccountID   string `json:"account_id" jsonschema:"Account ID (required)"`
	WithProfile bool   `json:"with_profile,omitempty" jsonschema:"Also fetch the strategic profile"`
}

func (h *AccountHandlers) GetAccount(ctx context.Context, _ *mcp.CallToolRequest, input GetAccountInput) (*mcp.CallToolResult, AccountOutput, error) {
	if input.AccountID == "" {
		return nil, AccountOutput{}, fmt.Errorf("account_id is required")
	}
	if !h.store.FetchOne(ctx, input.AccountID) {
		return nil, AccountOutput{}, h.failure("failed to fetch account")
	}
	if input.WithProfile {
		h.store.FetchProfileFor(ctx, input.AccountID)
	}

	account, ok := h.store.GetByID(input.AccountID)
	if !ok {
		return nil, AccountOutput{}, fmt.Errorf("account %s is not loaded", input.AccountID)
	}
	return nil, accountToOutput(account), nil
}

// AccountFields carries editable account fields. Nil fields are left unset.
type AccountFields struct {
	Name                 *string  `json:"account_name,omitempty" jsonschema:"Account name"`
	Domain               *string  `json:"domain,omitempty" jsonschema:"Industry domain"`
	Focus                *string  `json:"focus,omitempty" jsonschema:"Focus tier: Platinum, Gold or Silver"`
	Unit                 *string  `json:"unit,omitempty" jsonschema:"Business unit"`
	CompanyRevenue       *float64 `json:"company_revenue,omitempty" jsonschema:"Company revenue"`
	LastYearBusiness     *float64 `json:"last_year_business,omitempty" jsonschema:"Business booked last year"`
	Target2026           *float64 `json:"target_2026,omitempty" jsonschema:"2026 target"`
	Forecast2026         *float64 `json:"forecast_2026,omitempty" jsonschema:"2026 forecast"`
	PipelineValue        *float64 `json:"pipeline_value,omitempty" jsonschema:"Open pipeline value"`
	AttritionRisk        *string  `json:"attrition_risk,omitempty" jsonschema:"Attrition risk"`
	Owner                *string  `json:"account_owner,omitempty" jsonschema:"Account owner"`
	TeamSize             *int     `json:"team_size,omitempty" jsonschema:"Delivery team size"`
	RateCardHealth       *string  `json:"rate_card_health,omitempty" jsonschema:"Rate card health: Above, At or Below"`
	ActiveProjects       *int     `json:"active_projects,omitempty" jsonschema:"Number of active projects"`
	EngagementModel      *string  `json:"engagement_model,omitempty" jsonschema:"Engagement model"`
	ValueChainFit        *string  `json:"value_chain_fit,omitempty" jsonschema:"Value chain fit"`
	RoadmapVisibility    *string  `json:"roadmap_visibility,omitempty" jsonschema:"Roadmap visibility"`
	ChampionName         *string  `json:"champion_name,omitempty" jsonschema:"Champion name"`
	NPSScore             *float64 `json:"nps_score,omitempty" jsonschema:"NPS score"`
	DecisionMakerConnect *bool    `json:"decision_maker_connect,omitempty" jsonschema:"Connected to the decision maker"`
	GrowthPlanReady      *bool    `json:"growth_plan_ready,omitempty" jsonschema:"Growth plan is ready"`
	HealthScore          *float64 `json:"health_score,omitempty" jsonschema:"Health score 0-100"`
}

// Patch converts the fields into an account patch.
func (f AccountFields) Patch() models.AccountPatch {
	return models.AccountPatch{
		Name:                 f.Name,
		Domain:               f.Domain,
		Focus:                f.Focus,
		Unit:                 f.Unit,
		CompanyRevenue:       f.CompanyRevenue,
		LastYearBusiness:     f.LastYearBusiness,
		Target2026:           f.Target2026,
		Forecast2026:         f.Forecast2026,
		PipelineValue:        f.PipelineValue,
		AttritionRisk:        f.AttritionRisk,
		Owner:                f.Owner,
		TeamSize:             f.TeamSize,
		RateCardHealth:       f.RateCardHealth,
		ActiveProjects:       f.ActiveProjects,
		EngagementModel:      f.EngagementModel,
		ValueChainFit:        f.ValueChainFit,
		RoadmapVisibility:    f.RoadmapVisibility,
		ChampionName:         f.ChampionName,
		NPSScore:             f.NPSScore,
		DecisionMakerConnect: f.DecisionMakerConnect,
		GrowthPlanReady:      f.GrowthPlanReady,
		HealthScore:          f.HealthScore,
	}
}

// Account builds a new account from the set fields.
func (f AccountFields) Account() models.Account {
	var a models.Account
	set(&a.Name, f.Name)
	set(&a.Domain, f.Domain)
	set(&a.Focus, f.Focus)
	set(&a.Unit, f.Unit)
	set(&a.CompanyRevenue, f.CompanyRevenue)
	set(&a.LastYearBusiness, f.LastYearBusiness)
	set(&a.Target2026, f.Target2026)
	set(&a.Forecast2026, f.Forecast2026)
	set(&a.PipelineValue, f.PipelineValue)
	set(&a.AttritionRisk, f.AttritionRisk)
	set(&a.Owner, f.Owner)
	set(&a.TeamSize, f.TeamSize)
	set(&a.RateCardHealth, f.RateCardHealth)
	set(&a.ActiveProjects, f.ActiveProjects)
	set(&a.EngagementModel, f.EngagementModel)
	set(&a.ValueChainFit, f.ValueChainFit)
	set(&a.RoadmapVisibility, f.RoadmapVisibility)
	set(&a.ChampionName, f.ChampionName)
	set(&a.NPSScore, f.NPSScore)
	set(&a.DecisionMakerConnect, f.DecisionMakerConnect)
	set(&a.GrowthPlanReady, f.GrowthPlanReady)
	set(&a.HealthScore, f.HealthScore)
	a.RecomputeShortfall()
	return a
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

type CreateAccountOutput struct {
	Created  bool            `json:"created"`
	Accounts []AccountOutput `json:"accounts"`
}

func (h *AccountHandlers) CreateAccount(ctx context.Context, _ *mcp.CallToolRequest, input AccountFields) (*mcp.CallToolResult, CreateAccountOutput, error) {
	account := input.Account()
	if err := models.Validate(account); err != nil {
		return nil, CreateAccountOutput{}, fmt.Errorf("invalid account: %w", err)
	}
	if !h.store.Create(ctx, account) {
		return nil, CreateAccountOutput{}, h.failure("failed to create account")
	}

	accounts := h.store.Accounts()
	out := CreateAccountOutput{Created: true, Accounts: make([]AccountOutput, len(accounts))}
	for i, a := range accounts {
		out.Accounts[i] = accountToOutput(a)
	}
	return nil, out, nil
}

type UpdateAccountInput struct {
	AccountID string        `json:"account_id" jsonschema:"Account ID (required)"`
	Changes   AccountFields `json:"changes" jsonschema:"Fields to change; omitted fields are left as they are"`
}

func (h *AccountHandlers) UpdateAccount(ctx context.Context, _ *mcp.CallToolRequest, input UpdateAccountInput) (*mcp.CallToolResult, AccountOutput, error) {
	if input.AccountID == "" {
		return nil, AccountOutput{}, fmt.Errorf("account_id is required")
	}
	if !h.store.Update(ctx, input.AccountID, input.Changes.Patch()) {
		return nil, AccountOutput{}, h.failure("failed to update account")
	}

	account, ok := h.store.GetByID(input.AccountID)
	if !ok {
		return nil, AccountOutput{}, fmt.Errorf("account %s is not loaded", input.AccountID)
	}
	return nil, accountToOutput(account), nil
}

type DeleteAccountInput struct {
	AccountID string `json:"account_id" jsonschema:"Account ID (required)"`
}

type DeleteAccountOutput struct {
	Deleted   bool   `json:"deleted"`
	AccountID string `json:"account_id"`
}

func (h *AccountHandlers) DeleteAccount(ctx context.Context, _ *mcp.CallToolRequest, input DeleteAccountInput) (*mcp.CallToolResult, DeleteAccountOutput, error) {
	if input.AccountID == "" {
		return nil, DeleteAccountOutput{}, fmt.Errorf("account_id is required")
	}
	if !h.store.Delete(ctx, input.AccountID) {
		return nil, DeleteAccountOutput{}, h.failure("failed to delete account")
	}
	return nil, DeleteAccountOutput{Deleted: true, AccountID: input.AccountID}, nil
}

type SearchByUnitInput struct {
	Unit string `json:"unit" jsonschema:"Business unit to search for (required)"`
}

type SearchByUnitOutput struct {
	Unit     string          `json:"unit"`
	Accounts []AccountOutput `json:"accounts"`
}

func (h *AccountHandlers) SearchByUnit(ctx context.Context, _ *mcp.CallToolRequest, input SearchByUnitInput) (*mcp.CallToolResult, SearchByUnitOutput, error) {
	if input.Unit == "" {
		return nil, SearchByUnitOutput{}, fmt.Errorf("unit is required")
	}
	found := h.store.SearchByUnit(ctx, input.Unit)
	if msg := h.notices.Take(store.LevelError); msg != "" {
		return nil, SearchByUnitOutput{}, fmt.Errorf("failed to search accounts: %s", msg)
	}

	out := SearchByUnitOutput{Unit: input.Unit, Accounts: make([]AccountOutput, len(found))}
	for i, a := range found {
		out.Accounts[i] = accountToOutput(a)
	}
	return nil, out, nil
}

// failure turns the latest store error notification into a tool error.
func (h *AccountHandlers) failure(prefix string) error {
	return noticeError(h.notices, prefix)
}

func noticeError(notices *store.Recorder, prefix string) error {
	if notices != nil {
		if msg := notices.Take(store.LevelError); msg != "" {
			return fmt.Errorf("%s: %s", prefix, msg)
		}
	}
	return fmt.Errorf("%s", prefix)
}

func accountToOutput(a models.Account) AccountOutput {
	out := AccountOutput{
		ID:                   a.ID,
		Name:                 a.Name,
		Domain:               a.Domain,
		Focus:                a.Focus,
		Unit:                 a.Unit,
		CompanyRevenue:       a.CompanyRevenue,
		LastYearBusiness:     a.LastYearBusiness,
		Target2026:           a.Target2026,
		Forecast2026:         a.Forecast2026,
		Shortfall2026:        a.Shortfall2026,
		ShortfallPercent:     a.ShortfallPercent(),
		ShortfallStatus:      string(a.ShortfallStatus()),
		PipelineValue:        a.PipelineValue,
		AttritionRisk:        a.AttritionRisk,
		Owner:                a.Owner,
		TeamSize:             a.TeamSize,
		RateCardHealth:       a.RateCardHealth,
		ActiveProjects:       a.ActiveProjects,
		EngagementModel:      a.EngagementModel,
		ValueChainFit:        a.ValueChainFit,
		RoadmapVisibility:    a.RoadmapVisibility,
		ChampionName:         a.ChampionName,
		NPSScore:             a.NPSScore,
		DecisionMakerConnect: a.DecisionMakerConnect,
		GrowthPlanReady:      a.GrowthPlanReady,
		HealthScore:          a.HealthScore,
		HealthStatus:         string(a.HealthStatus()),
		CreatedAt:            formatTime(a.CreatedAt),
		UpdatedAt:            formatTime(a.UpdatedAt),
	}
	for _, p := range a.Projects {
		out.Projects = append(out.Projects, projectToOutput(p))
	}
	if p := a.Profile(); p != nil {
		po := profileToOutput(*p)
		out.Profile = &po
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
