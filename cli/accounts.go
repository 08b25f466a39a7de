// ABOUTME: Account CLI commands
// ABOUTME: Human-friendly commands for listing, showing and editing client accounts
package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/Akshada2906/circle-insights/models"
	"github.com/Akshada2906/circle-insights/store"
)

// accountFlags registers the editable account fields on a flag set.
type accountFlags struct {
	fs *flag.FlagSet

	name, domain, focus, unit, attrition, owner, champion *string
	rateCard, engagement, valueChain, roadmap            *string
	revenue, lastYear, target, forecast, pipeline        *float64
	nps, health                                          *float64
	teamSize, activeProjects                             *int
	decisionMaker, growthPlan                            *bool
}

func newAccountFlags(fs *flag.FlagSet) *accountFlags {
	return &accountFlags{
		fs:             fs,
		name:           fs.String("name", "", "Account name"),
		domain:         fs.String("domain", "", "Industry domain"),
		focus:          fs.String("focus", "", "Focus tier: Platinum, Gold or Silver"),
		unit:           fs.String("unit", "", "Business unit"),
		attrition:      fs.String("attrition-risk", "", "Attrition risk"),
		owner:          fs.String("owner", "", "Account owner"),
		rateCard:       fs.String("rate-card", "", "Rate card health: Above, At or Below"),
		engagement:     fs.String("engagement", "", "Engagement model"),
		valueChain:     fs.String("value-chain-fit", "", "Value chain fit"),
		roadmap:        fs.String("roadmap", "", "Roadmap visibility"),
		champion:       fs.String("champion", "", "Champion name"),
		revenue:        fs.Float64("revenue", 0, "Company revenue"),
		lastYear:       fs.Float64("last-year", 0, "Business booked last year"),
		target:         fs.Float64("target", 0, "2026 target"),
		forecast:       fs.Float64("forecast", 0, "2026 forecast"),
		pipeline:       fs.Float64("pipeline", 0, "Open pipeline value"),
		nps:            fs.Float64("nps", 0, "NPS score"),
		health:         fs.Float64("health", 0, "Health score 0-100"),
		teamSize:       fs.Int("team-size", 0, "Delivery team size"),
		activeProjects: fs.Int("active-projects", 0, "Number of active projects"),
		decisionMaker:  fs.Bool("decision-maker", false, "Connected to the decision maker"),
		growthPlan:     fs.Bool("growth-plan", false, "Growth plan is ready"),
	}
}

// account builds a full account from every flag value.
func (f *accountFlags) account() models.Account {
	a := models.Account{
		Name:                 *f.name,
		Domain:               *f.domain,
		Focus:                *f.focus,
		Unit:                 *f.unit,
		CompanyRevenue:       *f.revenue,
		LastYearBusiness:     *f.lastYear,
		Target2026:           *f.target,
		Forecast2026:         *f.forecast,
		PipelineValue:        *f.pipeline,
		AttritionRisk:        *f.attrition,
		Owner:                *f.owner,
		TeamSize:             *f.teamSize,
		RateCardHealth:       *f.rateCard,
		ActiveProjects:       *f.activeProjects,
		EngagementModel:      *f.engagement,
		ValueChainFit:        *f.valueChain,
		RoadmapVisibility:    *f.roadmap,
		ChampionName:         *f.champion,
		NPSScore:             *f.nps,
		DecisionMakerConnect: *f.decisionMaker,
		GrowthPlanReady:      *f.growthPlan,
		HealthScore:          *f.health,
	}
	a.RecomputeShortfall()
	return a
}

// patch carries only the flags given on the command line.
func (f *accountFlags) patch() models.AccountPatch {
	var p models.AccountPatch
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			p.Name = f.name
		case "domain":
			p.Domain = f.domain
		case "focus":
			p.Focus = f.focus
		case "unit":
			p.Unit = f.unit
		case "attrition-risk":
			p.AttritionRisk = f.attrition
		case "owner":
			p.Owner = f.owner
		case "rate-card":
			p.RateCardHealth = f.rateCard
		case "engagement":
			p.EngagementModel = f.engagement
		case "value-chain-fit":
			p.ValueChainFit = f.valueChain
		case "roadmap":
			p.RoadmapVisibility = f.roadmap
		case "champion":
			p.ChampionName = f.champion
		case "revenue":
			p.CompanyRevenue = f.revenue
		case "last-year":
			p.LastYearBusiness = f.lastYear
		case "target":
			p.Target2026 = f.target
		case "forecast":
			p.Forecast2026 = f.forecast
		case "pipeline":
			p.PipelineValue = f.pipeline
		case "nps":
			p.NPSScore = f.nps
		case "health":
			p.HealthScore = f.health
		case "team-size":
			p.TeamSize = f.teamSize
		case "active-projects":
			p.ActiveProjects = f.activeProjects
		case "decision-maker":
			p.DecisionMakerConnect = f.decisionMaker
		case "growth-plan":
			p.GrowthPlanReady = f.growthPlan
		}
	})
	return p
}

// ListAccountsCommand lists every account with its shortfall and health bands.
func ListAccountsCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("accounts list", flag.ExitOnError)
	focus := fs.String("focus", "", "Filter by focus tier")
	_ = fs.Parse(args)

	if err := env.load(ctx); err != nil {
		return err
	}

	var accounts []models.Account
	for _, a := range env.Accounts.Accounts() {
		if *focus == "" || a.Focus == *focus {
			accounts = append(accounts, a)
		}
	}
	if len(accounts) == 0 {
		fmt.Fprintln(env.out(), "No accounts found")
		return nil
	}

	w := tabwriter.NewWriter(env.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFOCUS\tOWNER\tTARGET\tFORECAST\tSHORTFALL\tHEALTH\tID")
	fmt.Fprintln(w, "----\t-----\t-----\t------\t--------\t---------\t------\t--")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s %s (%.0f%%)\t%s %.0f\t%s\n",
			a.Name, orDash(a.Focus), orDash(a.Owner),
			money(a.Target2026), money(a.Forecast2026),
			statusIcon(a.ShortfallStatus()), money(a.Shortfall2026), a.ShortfallPercent(),
			statusIcon(a.HealthStatus()), a.HealthScore, a.ID)
	}
	w.Flush()

	fmt.Fprintf(env.out(), "\nTotal: %d account(s)\n", len(accounts))
	return nil
}

// ShowAccountCommand prints one account with its projects and strategic profile.
func ShowAccountCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("accounts show", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("account ID is required")
	}
	id := fs.Arg(0)

	if !env.Accounts.FetchOne(ctx, id) {
		return env.failure("failed to fetch account")
	}
	env.Accounts.FetchProfileFor(ctx, id)

	a, ok := env.Accounts.GetByID(id)
	if !ok {
		return fmt.Errorf("account not found: %s", id)
	}

	out := env.out()
	fmt.Fprintf(out, "%s (%s)\n", a.Name, a.ID)
	fmt.Fprintf(out, "  Domain:     %s\n", orDash(a.Domain))
	fmt.Fprintf(out, "  Focus:      %s\n", orDash(a.Focus))
	fmt.Fprintf(out, "  Unit:       %s\n", orDash(a.Unit))
	fmt.Fprintf(out, "  Owner:      %s\n", orDash(a.Owner))
	fmt.Fprintf(out, "  Target:     %s\n", money(a.Target2026))
	fmt.Fprintf(out, "  Forecast:   %s\n", money(a.Forecast2026))
	fmt.Fprintf(out, "  Shortfall:  %s (%.1f%%) %s %s\n", money(a.Shortfall2026), a.ShortfallPercent(), statusIcon(a.ShortfallStatus()), a.ShortfallStatus())
	fmt.Fprintf(out, "  Pipeline:   %s\n", money(a.PipelineValue))
	fmt.Fprintf(out, "  Team size:  %d\n", a.TeamSize)
	fmt.Fprintf(out, "  Health:     %.0f %s %s\n", a.HealthScore, statusIcon(a.HealthStatus()), a.HealthStatus())
	if a.ChampionName != "" {
		fmt.Fprintf(out, "  Champion:   %s\n", a.ChampionName)
	}

	if p := a.Profile(); p != nil {
		fmt.Fprintln(out, "\nStrategic profile:")
		fmt.Fprintf(out, "  Sponsor:    %s\n", orDash(p.Sponsor))
		fmt.Fprintf(out, "  TDM:        %s\n", orDash(p.TechnicalDecisionMaker))
		fmt.Fprintf(out, "  Influencer: %s\n", orDash(p.Influencer))
		fmt.Fprintf(out, "  QBR:        %s\n", p.QBRHappening)
	}

	if len(a.Projects) > 0 {
		fmt.Fprintln(out, "\nProjects:")
		for _, p := range a.Projects {
			fmt.Fprintf(out, "  • %s [%s] %s\n", p.Name, p.Circle, p.Status)
		}
	}
	return nil
}

// AddAccountCommand creates an account.
func AddAccountCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("accounts add", flag.ExitOnError)
	fields := newAccountFlags(fs)
	_ = fs.Parse(args)

	account := fields.account()
	if err := models.Validate(account); err != nil {
		printValidation(env.out(), err)
		return fmt.Errorf("account not saved: %w", err)
	}

	if !env.Accounts.Create(ctx, account) {
		return env.failure("failed to create account")
	}

	fmt.Fprintf(env.out(), "✓ Account created: %s\n", account.Name)
	if account.Target2026 != 0 {
		fmt.Fprintf(env.out(), "  Shortfall: %s\n", money(account.Shortfall2026))
	}
	return nil
}

// UpdateAccountCommand applies the given flags to an existing account.
func UpdateAccountCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("accounts update", flag.ExitOnError)
	fields := newAccountFlags(fs)
	_ = fs.Parse(args)

	// First positional arg is the account ID
	if fs.NArg() < 1 {
		return fmt.Errorf("account ID is required")
	}
	id := fs.Arg(0)

	patch := fields.patch()
	if patch.Name != nil && *patch.Name == "" {
		return fmt.Errorf("--name cannot be empty")
	}

	if !env.Accounts.Update(ctx, id, patch) {
		return env.failure("failed to update account")
	}

	fmt.Fprintf(env.out(), "✓ Account updated: %s\n", id)
	if a, ok := env.Accounts.GetByID(id); ok && patch.TouchesFinancials() {
		fmt.Fprintf(env.out(), "  Shortfall: %s (%.1f%%)\n", money(a.Shortfall2026), a.ShortfallPercent())
	}
	return nil
}

// DeleteAccountCommand deletes an account after confirmation.
func DeleteAccountCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("accounts delete", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("account ID is required")
	}
	id := fs.Arg(0)

	if !*yes && !env.confirm(fmt.Sprintf("Delete account %s?", id)) {
		fmt.Fprintln(env.out(), "Cancelled")
		return nil
	}

	if !env.Accounts.Delete(ctx, id) {
		return env.failure("failed to delete account")
	}

	fmt.Fprintf(env.out(), "✓ Account deleted: %s\n", id)
	return nil
}

// SearchAccountsCommand queries the backend by business unit.
func SearchAccountsCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("accounts search", flag.ExitOnError)
	unit := fs.String("unit", "", "Business unit (required)")
	_ = fs.Parse(args)

	if *unit == "" {
		return fmt.Errorf("--unit is required")
	}

	found := env.Accounts.SearchByUnit(ctx, *unit)
	if env.Notices != nil {
		if msg := env.Notices.Take(store.LevelError); msg != "" {
			return fmt.Errorf("failed to search accounts: %s", msg)
		}
	}
	if len(found) == 0 {
		fmt.Fprintf(env.out(), "No accounts in unit %s\n", *unit)
		return nil
	}

	w := tabwriter.NewWriter(env.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFOCUS\tUNIT\tID")
	fmt.Fprintln(w, "----\t-----\t----\t--")
	for _, a := range found {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, orDash(a.Focus), a.Unit, a.ID)
	}
	w.Flush()

	fmt.Fprintf(env.out(), "\nTotal: %d account(s)\n", len(found))
	return nil
}
