// ABOUTME: Entry point for the Circle Insights CLI, TUI and MCP server
// ABOUTME: Loads configuration, wires the stores and routes to subcommands
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/Akshada2906/circle-insights/api"
	"github.com/Akshada2906/circle-insights/cli"
	"github.com/Akshada2906/circle-insights/config"
	"github.com/Akshada2906/circle-insights/store"
	"github.com/Akshada2906/circle-insights/tui"
)

const version = "0.1.0"

type subcommand func(ctx context.Context, env *cli.Env, args []string) error

var groups = map[string]map[string]subcommand{
	"accounts": {
		"list":   cli.ListAccountsCommand,
		"show":   cli.ShowAccountCommand,
		"add":    cli.AddAccountCommand,
		"update": cli.UpdateAccountCommand,
		"delete": cli.DeleteAccountCommand,
		"search": cli.SearchAccountsCommand,
	},
	"profiles": {
		"show": cli.ShowProfileCommand,
		"set":  cli.SetProfileCommand,
	},
	"projects": {
		"add":    cli.AddProjectCommand,
		"list":   cli.ListProjectsCommand,
		"delete": cli.DeleteProjectCommand,
	},
	"stakeholders": {
		"add":  cli.AddStakeholderCommand,
		"list": cli.ListStakeholdersCommand,
	},
}

var singles = map[string]subcommand{
	"dashboard": cli.DashboardCommand,
	"graph":     cli.GraphCommand,
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses global flags and dispatches one command. Errors are returned
// rather than exiting so deferred cleanup always runs.
func run(argv []string) error {
	// Global flags
	global := flag.NewFlagSet("circle", flag.ContinueOnError)
	showVersion := global.Bool("version", false, "Show version and exit")
	baseURL := global.String("base-url", "", "API base URL (overrides config and CIRCLE_API_BASE_URL)")
	logLevel := global.String("log-level", "", "Log level: debug, info, warn, error")
	global.Usage = printUsage

	if err := global.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Printf("circle version %s\n", version)
		return nil
	}

	args := global.Args()
	if len(args) == 0 {
		printUsage()
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, commandArgs := args[0], args[1:]

	// The TUI owns the terminal, so its logs go to a file.
	logOut := io.Writer(os.Stderr)
	if command == "tui" {
		logFile, err := openTUILog()
		if err != nil {
			return err
		}
		defer logFile.Close()
		logOut = logFile
	}

	logger, err := config.NewLogger(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	switch command {
	case "config":
		return configCommand(cfg, commandArgs)
	case "mock-api":
		if err := cli.MockAPICommand(ctx, logger, cfg.MockPort, commandArgs); err != nil {
			return fmt.Errorf("mock backend failed: %w", err)
		}
		return nil
	}

	sub, ok := lookup(command, commandArgs)
	if !ok && command != "mcp" && command != "tui" {
		fmt.Printf("Unknown command: %s\n", strings.Join(args, " "))
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}

	env, err := newEnv(cfg, logger, command == "mcp")
	if err != nil {
		return err
	}

	switch command {
	case "mcp":
		if err := cli.MCPCommand(ctx, env, logger, version); err != nil {
			return fmt.Errorf("MCP server failed: %w", err)
		}
		return nil
	case "tui":
		return tui.Run(ctx, env.Accounts, env.Stakeholders, env.Notices)
	}

	if _, grouped := groups[command]; grouped {
		commandArgs = commandArgs[1:]
	}
	return sub(ctx, env, commandArgs)
}

// newEnv wires the gateway and stores. Store notifications are also logged
// when nothing else will show them.
func newEnv(cfg *config.Config, logger *log.Logger, logNotices bool) (*cli.Env, error) {
	client := api.NewClient(cfg.ClientOptions(logger))

	notices := &store.Recorder{}
	if logNotices {
		notices.Next = store.LogNotifier{Logger: logger}
	}

	accounts, err := store.NewAccountStore(client, store.WithLogger(logger), store.WithNotifier(notices))
	if err != nil {
		return nil, err
	}
	stakeholders, err := store.NewStakeholderStore(accounts)
	if err != nil {
		return nil, err
	}

	return &cli.Env{Accounts: accounts, Stakeholders: stakeholders, Notices: notices}, nil
}

func lookup(command string, args []string) (subcommand, bool) {
	if run, ok := singles[command]; ok {
		return run, true
	}
	group, ok := groups[command]
	if !ok || len(args) == 0 {
		return nil, false
	}
	run, ok := group[args[0]]
	return run, ok
}

func configCommand(cfg *config.Config, args []string) error {
	if len(args) == 0 || args[0] == "show" {
		fmt.Printf("Config file: %s\n", config.Path())
		fmt.Printf("  base_url:  %s\n", cfg.BaseURL)
		fmt.Printf("  log_level: %s\n", cfg.LogLevel)
		fmt.Printf("  mock_port: %d\n", cfg.MockPort)
		return nil
	}
	if args[0] == "set-url" && len(args) == 2 {
		if err := cfg.SetBaseURL(args[1]); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("✓ Base URL set to %s\n", args[1])
		return nil
	}
	return fmt.Errorf("usage: circle config [show | set-url <url>]")
}

func openTUILog() (*os.File, error) {
	path, err := xdg.StateFile(config.AppName + "/tui.log")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

func printUsage() {
	fmt.Printf(`circle v%s - Circle Insights portfolio client

USAGE:
  circle [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --base-url <url>       API base URL (default: %s)
  --log-level <level>    Log level: debug, info, warn, error

COMMANDS:
  accounts               Account commands
  profiles               Strategic profile commands
  projects               Project commands (local to this session)
  stakeholders           Stakeholder commands (local to this session)
  dashboard              Portfolio dashboard
  graph <account-id>     Stakeholder graph as DOT
  tui                    Interactive dashboard
  mcp                    Start MCP server for agent integration
  mock-api               Serve an in-memory backend for development
  config                 Show or change the saved configuration

ACCOUNT COMMANDS:
  circle accounts list [--focus <tier>]
  circle accounts show <id>
  circle accounts add --name <name> [--focus --unit --owner --target --forecast --health ...]
  circle accounts update [flags] <id>     Only the given flags are sent
  circle accounts delete [--yes] <id>
  circle accounts search --unit <unit>

PROFILE COMMANDS:
  circle profiles show <account-id>
  circle profiles set [--sponsor --decision-maker --influencer --qbr Yes|No ...] <account-id>

PROJECT COMMANDS:
  circle projects add --account <id> --name <name> --manager <name> --summary <text>
                      --tech <a,b> --circle <Cloud|Data|AI|Security|DevOps>
  circle projects list <account-id>
  circle projects delete <project-id>

STAKEHOLDER COMMANDS:
  circle stakeholders add --account <id> --project <id> --name <name>
                          --designation <d> --department <d> --category <c>
                          [--champion] [--connections "a;b"]
  circle stakeholders list [--account <id>] [--project <id>]

EXAMPLES:
  # Run the mock backend and list accounts against it
  circle mock-api --port 8000 &
  circle accounts add --name "Acme Corp" --focus Gold --target 1200000 --forecast 900000
  circle accounts list

  # Start MCP server
  circle mcp

`, version, api.DefaultBaseURL)
}
