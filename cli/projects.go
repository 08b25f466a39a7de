// ABOUTME: Project CLI commands
// ABOUTME: Adds, lists and deletes the session-local projects of an account
package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Akshada2906/circle-insights/models"
)

// AddProjectCommand adds a project under a loaded account.
func AddProjectCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("projects add", flag.ExitOnError)
	account := fs.String("account", "", "Account ID (required)")
	name := fs.String("name", "", "Project name (required)")
	manager := fs.String("manager", "", "Project manager (required)")
	summary := fs.String("summary", "", "Short summary (required)")
	tech := fs.String("tech", "", "Comma-separated tech stack (required)")
	circle := fs.String("circle", "", "Circle: "+strings.Join(models.Circles, ", ")+" (required)")
	connected := fs.String("connected-with", "", "Comma-separated client people on the project")
	competitor := fs.String("competitor", "", "Competitor present on the project")
	risk := fs.String("competitor-risk", "", "Competitor risk")
	_ = fs.Parse(args)

	if *account == "" {
		return fmt.Errorf("--account is required")
	}
	if !env.Accounts.FetchOne(ctx, *account) {
		return env.failure("failed to fetch account")
	}

	project, err := env.Accounts.AddProject(models.Project{
		AccountID:      *account,
		Name:           *name,
		Manager:        *manager,
		Summary:        *summary,
		TechStack:      strings.Split(*tech, ","),
		Circle:         *circle,
		ConnectedWith:  *connected,
		Competitor:     *competitor,
		CompetitorRisk: *risk,
	})
	if err != nil {
		printValidation(env.out(), err)
		return fmt.Errorf("failed to add project: %w", err)
	}

	fmt.Fprintf(env.out(), "✓ Project added: %s (ID: %s)\n", project.Name, project.ID)
	fmt.Fprintf(env.out(), "  Tech stack: %s\n", strings.Join(project.TechStack, ", "))
	return nil
}

// ListProjectsCommand lists the projects of an account.
func ListProjectsCommand(_ context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("projects list", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("account ID is required")
	}

	projects := env.Accounts.ProjectsFor(fs.Arg(0))
	if len(projects) == 0 {
		fmt.Fprintln(env.out(), "No projects found")
		return nil
	}

	w := tabwriter.NewWriter(env.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCIRCLE\tMANAGER\tSTATUS\tTECH\tID")
	fmt.Fprintln(w, "----\t------\t-------\t------\t----\t--")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.Circle, p.Manager, p.Status, strings.Join(p.TechStack, ","), p.ID)
	}
	w.Flush()

	fmt.Fprintf(env.out(), "\nTotal: %d project(s)\n", len(projects))
	return nil
}

// DeleteProjectCommand removes a project.
func DeleteProjectCommand(_ context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("projects delete", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("project ID is required")
	}

	if err := env.Accounts.DeleteProject(fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	fmt.Fprintf(env.out(), "✓ Project deleted: %s\n", fs.Arg(0))
	return nil
}
