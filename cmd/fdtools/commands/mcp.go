package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/fdtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: fdtools mcp\n\n")
		Writef(fs.Output(), "Serve the closure, candidate_keys and bcnf tools over MCP on stdin/stdout.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  FDTOOLS_CACHE_ENABLED         cache closures between calls (default true)\n")
		Writef(fs.Output(), "  FDTOOLS_CACHE_MAX_SIZE        closures kept in the cache (default 32)\n")
		Writef(fs.Output(), "  FDTOOLS_CACHE_TTL             cache entry lifetime (default 15m)\n")
		Writef(fs.Output(), "  FDTOOLS_MAX_ATTRIBUTES        largest schema accepted (default 8)\n")
		Writef(fs.Output(), "  FDTOOLS_MAX_DEPENDENCIES      most dependencies accepted per call (default 64)\n")
		Writef(fs.Output(), "  FDTOOLS_CLOSURE_LIMIT         default page size of the closure tool (default 100)\n")
		Writef(fs.Output(), "  FDTOOLS_BCNF_TRACE            include the decomposition trace by default (default true)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process receives SIGINT or SIGTERM.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
