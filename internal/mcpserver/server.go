// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes fdtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/fdtools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `fdtools MCP server: computes functional dependency closures, candidate keys and BCNF decompositions.

Every tool takes a relation: {"schema": ["A","B","C","D"], "fds": [{"lhs": ["B"], "rhs": ["C"]}, {"lhs": ["D"], "rhs": ["A"]}]}.

Configuration: All defaults are configurable via FDTOOLS_* environment variables set in your MCP client config.

Key settings:
- FDTOOLS_MAX_ATTRIBUTES (default: 8): largest schema accepted; closure cost doubles per attribute
- FDTOOLS_MAX_DEPENDENCIES (default: 64): largest dependency list accepted
- FDTOOLS_CLOSURE_LIMIT (default: 100): default page size of the closure tool
- FDTOOLS_MAX_CLOSURE_LINES (default: 1000): hard cap on closure lines per call
- FDTOOLS_BCNF_TRACE (default: true): include the decomposition trace in bcnf output
- FDTOOLS_CACHE_ENABLED (default: true): cache computed closures per session
- FDTOOLS_CACHE_TTL (default: 15m): lifetime of a cached closure

Caching: Closures are cached by a digest of the canonical schema and dependency set, so calling closure, candidate_keys and bcnf on the same relation computes the closure once.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		closureCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "fdtools", Version: fdtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "closure",
		Description: "Compute the closure of a set of functional dependencies over a schema using Armstrong's axioms. Returns the implied dependencies as sorted \"LHS -> RHS\" lines, smallest first. Trivial dependencies are omitted unless include_trivial=true. The closure grows exponentially with the schema; use offset/limit to page through it. Default page size is configurable via FDTOOLS_CLOSURE_LIMIT.",
	}, handleClosure)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "candidate_keys",
		Description: "Find the candidate keys (minimal superkeys) of a schema under a set of functional dependencies. Also returns the prime attributes. Use superkeys=true to list every superkey as well.",
	}, handleCandidateKeys)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bcnf",
		Description: "Check whether a schema is in Boyce-Codd normal form and decompose it losslessly into BCNF relations. Returns the violating dependencies with severity (error: 2NF violation, warning: 3NF violation, info: BCNF only), the resulting relations in order, the decomposition trace and a fingerprint of the trace. Trace inclusion is configurable via FDTOOLS_BCNF_TRACE.",
	}, handleBCNF)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ClosureLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ClosureLimit
	}
	if limit > cfg.MaxClosureLines {
		limit = cfg.MaxClosureLines
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
