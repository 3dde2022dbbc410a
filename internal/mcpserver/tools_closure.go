package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type closureInput struct {
	Relation       relationInput `json:"relation"                  jsonschema:"The schema and its functional dependencies"`
	IncludeTrivial bool          `json:"include_trivial,omitempty" jsonschema:"Include trivial dependencies (rhs contained in lhs)"`
	Offset         int           `json:"offset,omitempty"          jsonschema:"Skip the first N dependencies (for pagination)"`
	Limit          int           `json:"limit,omitempty"           jsonschema:"Maximum number of dependencies to return (default 100)"`
}

type closureOutput struct {
	Schema       string   `json:"schema"`
	Iterations   int      `json:"iterations"`
	ClosureSize  int      `json:"closure_size"`
	Total        int      `json:"total"`
	Returned     int      `json:"returned"`
	Dependencies []string `json:"dependencies,omitempty"`
}

func handleClosure(_ context.Context, _ *mcp.CallToolRequest, input closureInput) (*mcp.CallToolResult, closureOutput, error) {
	res, err := input.Relation.resolve()
	if err != nil {
		return errResult(err), closureOutput{}, nil
	}

	var lines []string
	if input.IncludeTrivial {
		lines = res.Strings()
	} else {
		nonTrivial := res.NonTrivial()
		lines = makeSlice[string](len(nonTrivial))
		for _, f := range nonTrivial {
			lines = append(lines, f.String())
		}
	}

	page := paginate(lines, input.Offset, input.Limit)
	return nil, closureOutput{
		Schema:       res.Schema.String(),
		Iterations:   res.Iterations,
		ClosureSize:  res.Closure.Len(),
		Total:        len(lines),
		Returned:     len(page),
		Dependencies: page,
	}, nil
}
