// ABOUTME: Mock backend subcommand
// ABOUTME: Serves the in-memory account dashboard API for local development
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Akshada2906/circle-insights/mockapi"
)

// MockAPICommand runs the mock backend until ctx is cancelled.
func MockAPICommand(ctx context.Context, logger *log.Logger, defaultPort int, args []string) error {
	fs := flag.NewFlagSet("mock-api", flag.ExitOnError)
	port := fs.Int("port", defaultPort, "Port to listen on")
	host := fs.String("host", "127.0.0.1", "Interface to bind")
	_ = fs.Parse(args)

	server := mockapi.New(mockapi.WithLogger(logger))
	addr := fmt.Sprintf("%s:%d", *host, *port)
	logger.Info("point the client at", "base_url", fmt.Sprintf("http://%s%s", addr, mockapi.BasePath))
	return server.ListenAndServe(ctx, addr)
}
