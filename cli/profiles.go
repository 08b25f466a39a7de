// ABOUTME: Strategic profile CLI commands
// ABOUTME: Shows and saves the stakeholder profile attached to an account
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/Akshada2906/circle-insights/models"
)

// ShowProfileCommand prints the strategic profile of an account.
func ShowProfileCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("profiles show", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("account ID is required")
	}
	id := fs.Arg(0)

	if !env.Accounts.FetchOne(ctx, id) {
		return env.failure("failed to fetch account")
	}
	env.Accounts.FetchProfileFor(ctx, id)

	a, _ := env.Accounts.GetByID(id)
	p := a.Profile()
	if p == nil {
		fmt.Fprintf(env.out(), "No strategic profile for %s\n", a.Name)
		return nil
	}

	out := env.out()
	fmt.Fprintf(out, "%s strategic profile (%s)\n", a.Name, p.ID)
	fmt.Fprintln(out, "\nStakeholder landscape:")
	fmt.Fprintf(out, "  Sponsor:              %s\n", orDash(p.Sponsor))
	fmt.Fprintf(out, "  Decision maker:       %s\n", orDash(p.TechnicalDecisionMaker))
	fmt.Fprintf(out, "  Influencer:           %s\n", orDash(p.Influencer))
	fmt.Fprintf(out, "  Neutral:              %s\n", orDash(p.NeutralStakeholders))
	fmt.Fprintf(out, "  Negative:             %s\n", orDash(p.NegativeStakeholders))
	fmt.Fprintf(out, "  Succession risk:      %s\n", orDash(p.SuccessionRisk))
	fmt.Fprintln(out, "\nCompetition:")
	fmt.Fprintf(out, "  Competitors:          %s\n", orDash(p.Competitors))
	fmt.Fprintf(out, "  Positioning:          %s\n", orDash(p.Positioning))
	fmt.Fprintf(out, "  Incumbency:           %s\n", orDash(p.IncumbencyStrength))
	fmt.Fprintf(out, "  Strengths:            %s\n", orDash(p.RelativeStrengths))
	fmt.Fprintf(out, "  Weaknesses:           %s\n", orDash(p.RelativeWeaknesses))
	fmt.Fprintln(out, "\nInternal readiness:")
	fmt.Fprintf(out, "  Review cadence:       %s\n", orDash(p.ReviewCadence))
	fmt.Fprintf(out, "  QBR happening:        %s\n", p.QBRHappening)
	fmt.Fprintf(out, "  Audit frequency:      %s\n", orDash(p.AuditFrequency))
	return nil
}

// SetProfileCommand creates or updates the strategic profile of an account.
// Flags that are not given keep their current value.
func SetProfileCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("profiles set", flag.ExitOnError)
	sponsor := fs.String("sponsor", "", "Executive sponsor")
	tdm := fs.String("decision-maker", "", "Technical decision maker")
	influencer := fs.String("influencer", "", "Influencers")
	neutral := fs.String("neutral", "", "Neutral stakeholders")
	negative := fs.String("negative", "", "Negative stakeholders")
	succession := fs.String("succession-risk", "", "Succession risk")
	competitors := fs.String("competitors", "", "Competitors present in the account")
	positioning := fs.String("positioning", "", "Our positioning")
	incumbency := fs.String("incumbency", "", "Incumbency strength: High, Medium or Low")
	strengths := fs.String("strengths", "", "Relative strengths")
	weaknesses := fs.String("weaknesses", "", "Relative weaknesses")
	cadence := fs.String("review-cadence", "", "Review cadence")
	qbr := fs.String("qbr", "", "QBR happening: Yes or No")
	audit := fs.String("audit-frequency", "", "Audit frequency")
	_ = fs.Parse(args)

	// First positional arg is the account ID
	if fs.NArg() < 1 {
		return fmt.Errorf("account ID is required")
	}
	id := fs.Arg(0)

	if !env.Accounts.FetchOne(ctx, id) {
		return env.failure("failed to fetch account")
	}
	env.Accounts.FetchProfileFor(ctx, id)
	a, _ := env.Accounts.GetByID(id)

	profile := models.StrategicProfile{AccountID: id, QBRHappening: models.QBRNo}
	if current := a.Profile(); current != nil {
		profile = *current
	}
	profile.AccountName = a.Name

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "sponsor":
			profile.Sponsor = *sponsor
		case "decision-maker":
			profile.TechnicalDecisionMaker = *tdm
		case "influencer":
			profile.Influencer = *influencer
		case "neutral":
			profile.NeutralStakeholders = *neutral
		case "negative":
			profile.NegativeStakeholders = *negative
		case "succession-risk":
			profile.SuccessionRisk = *succession
		case "competitors":
			profile.Competitors = *competitors
		case "positioning":
			profile.Positioning = *positioning
		case "incumbency":
			profile.IncumbencyStrength = *incumbency
		case "strengths":
			profile.RelativeStrengths = *strengths
		case "weaknesses":
			profile.RelativeWeaknesses = *weaknesses
		case "review-cadence":
			profile.ReviewCadence = *cadence
		case "qbr":
			profile.QBRHappening = models.QBRStatus(*qbr)
		case "audit-frequency":
			profile.AuditFrequency = *audit
		}
	})

	if err := models.Validate(profile); err != nil {
		printValidation(env.out(), err)
		return fmt.Errorf("profile not saved: %w", err)
	}
	if !env.Accounts.SaveProfile(ctx, profile) {
		return env.failure("failed to save profile")
	}

	verb := "updated"
	if profile.ID == "" {
		verb = "created"
	}
	fmt.Fprintf(env.out(), "✓ Profile %s for %s\n", verb, a.Name)
	return nil
}
