package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fdtools/keys"
	"github.com/erraggy/fdtools/normalizer"
)

type bcnfInput struct {
	Relation relationInput `json:"relation"        jsonschema:"The schema and its functional dependencies"`
	Trace    *bool         `json:"trace,omitempty" jsonschema:"Include the step-by-step decomposition trace"`
}

type bcnfViolation struct {
	Dependency string `json:"dependency"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
}

type bcnfOutput struct {
	InBCNF         bool            `json:"in_bcnf"`
	ViolationCount int             `json:"violation_count"`
	Violations     []bcnfViolation `json:"violations,omitempty"`
	Relations      [][]string      `json:"relations"`
	Lossless       bool            `json:"lossless"`
	Fingerprint    string          `json:"fingerprint"`
	RunID          string          `json:"run_id"`
	Trace          []string        `json:"trace,omitempty"`
}

func handleBCNF(_ context.Context, _ *mcp.CallToolRequest, input bcnfInput) (*mcp.CallToolResult, bcnfOutput, error) {
	trace := cfg.BCNFTrace
	if input.Trace != nil {
		trace = *input.Trace
	}

	res, err := input.Relation.resolve()
	if err != nil {
		return errResult(err), bcnfOutput{}, nil
	}

	superkeys := keys.Find(res.Schema, res.Closure)
	violations := normalizer.ListViolations(res.Schema, res.Closure, superkeys)
	decomposed, err := normalizer.Decompose(res.Schema, res.Closure)
	if err != nil {
		return errResult(err), bcnfOutput{}, nil
	}

	output := bcnfOutput{
		InBCNF:         len(violations) == 0,
		ViolationCount: len(violations),
		Lossless:       decomposed.IsLosslessJoin(),
		Fingerprint:    decomposed.Fingerprint(),
		RunID:          decomposed.RunID.String(),
	}
	output.Violations = makeSlice[bcnfViolation](len(violations))
	for _, v := range violations {
		output.Violations = append(output.Violations, bcnfViolation{
			Dependency: v.FD.String(),
			Severity:   v.Severity.String(),
			Message:    v.Message,
		})
	}
	output.Relations = makeSlice[[]string](len(decomposed.Relations))
	for _, rel := range decomposed.Relations {
		output.Relations = append(output.Relations, rel.Schema.Names())
	}
	if trace {
		output.Trace = decomposed.Trace()
	}
	return nil, output, nil
}
