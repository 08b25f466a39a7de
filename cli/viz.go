// ABOUTME: Visualization CLI commands
// ABOUTME: Handles the portfolio dashboard and stakeholder graph generation
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Akshada2906/circle-insights/viz"
)

// DashboardCommand prints the portfolio dashboard.
func DashboardCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := env.load(ctx); err != nil {
		return err
	}

	stats := viz.Portfolio(env.Accounts.Accounts())
	fmt.Fprint(env.out(), viz.RenderDashboard(stats))
	return nil
}

// GraphCommand generates the stakeholder graph of an account as DOT.
func GraphCommand(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("account ID is required")
	}
	id := fs.Arg(0)

	if !env.Accounts.FetchOne(ctx, id) {
		return env.failure("failed to fetch account")
	}
	account, _ := env.Accounts.GetByID(id)

	dot, stats, err := viz.StakeholderGraph(account, account.Projects, env.Stakeholders.ByAccount(id))
	if err != nil {
		return fmt.Errorf("failed to generate graph: %w", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(dot), 0644); err != nil {
			return err
		}
		fmt.Fprintf(env.out(), "✓ Graph written to %s (%d nodes, %d edges)\n", *output, stats.Nodes, stats.Edges)
		return nil
	}

	fmt.Fprintln(env.out(), dot)
	return nil
}
