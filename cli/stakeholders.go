// ABOUTME: Stakeholder CLI commands
// ABOUTME: Adds and lists session-local stakeholders with their derived relationship score
package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Akshada2906/circle-insights/models"
)

// AddStakeholderCommand adds a stakeholder under a project.
func AddStakeholderCommand(_ context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("stakeholders add", flag.ExitOnError)
	account := fs.String("account", "", "Account ID (required)")
	project := fs.String("project", "", "Project ID (required)")
	name := fs.String("name", "", "Stakeholder name (required)")
	designation := fs.String("designation", "", "Designation (required)")
	department := fs.String("department", "", "Department (required)")
	category := fs.String("category", "", "Value chain category: "+strings.Join(models.ValueChainCategories, ", ")+" (required)")
	champion := fs.Bool("champion", false, "Champions us internally")
	connections := fs.String("connections", "", "Comma or semicolon separated connected names")
	_ = fs.Parse(args)

	st, err := env.Stakeholders.Add(models.Stakeholder{
		AccountID:          *account,
		ProjectID:          *project,
		Name:               *name,
		Designation:        *designation,
		Department:         *department,
		ValueChainCategory: *category,
		IsChampion:         *champion,
		Connections:        models.ParseConnections(*connections),
	})
	if err != nil {
		printValidation(env.out(), err)
		return fmt.Errorf("failed to add stakeholder: %w", err)
	}

	fmt.Fprintf(env.out(), "✓ Stakeholder added: %s (ID: %s)\n", st.Name, st.ID)
	fmt.Fprintf(env.out(), "  Relationship score: %d/%d\n", st.RelationshipScore, models.MaxRelationshipScore)
	return nil
}

// ListStakeholdersCommand lists stakeholders, optionally filtered.
func ListStakeholdersCommand(_ context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("stakeholders list", flag.ExitOnError)
	account := fs.String("account", "", "Filter by account ID")
	project := fs.String("project", "", "Filter by project ID")
	_ = fs.Parse(args)

	var found []models.Stakeholder
	switch {
	case *project != "":
		found = env.Stakeholders.ByProject(*project)
	case *account != "":
		found = env.Stakeholders.ByAccount(*account)
	default:
		found = env.Stakeholders.All()
	}

	if len(found) == 0 {
		fmt.Fprintln(env.out(), "No stakeholders found")
		return nil
	}

	w := tabwriter.NewWriter(env.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESIGNATION\tPROJECT\tCHAMPION\tSCORE\tID")
	fmt.Fprintln(w, "----\t-----------\t-------\t--------\t-----\t--")
	for _, st := range found {
		champion := "-"
		if st.IsChampion {
			champion = "★"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			st.Name, st.Designation, orDash(st.ProjectName), champion, st.RelationshipScore, st.ID)
	}
	w.Flush()

	fmt.Fprintf(env.out(), "\nTotal: %d stakeholder(s)\n", len(found))
	return nil
}
