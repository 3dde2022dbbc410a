package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fdtools/fd"
	"github.com/erraggy/fdtools/keys"
)

type keysInput struct {
	Relation  relationInput `json:"relation"            jsonschema:"The schema and its functional dependencies"`
	Superkeys bool          `json:"superkeys,omitempty" jsonschema:"Also list every superkey, not only the minimal ones"`
}

type keysOutput struct {
	Schema        string     `json:"schema"`
	CandidateKeys [][]string `json:"candidate_keys"`
	Prime         []string   `json:"prime_attributes"`
	Superkeys     [][]string `json:"superkeys,omitempty"`
}

func namesOf(sets []fd.AttributeSet) [][]string {
	out := makeSlice[[]string](len(sets))
	for _, s := range sets {
		out = append(out, s.Names())
	}
	return out
}

func handleCandidateKeys(_ context.Context, _ *mcp.CallToolRequest, input keysInput) (*mcp.CallToolResult, keysOutput, error) {
	res, err := input.Relation.resolve()
	if err != nil {
		return errResult(err), keysOutput{}, nil
	}

	superkeys := keys.Find(res.Schema, res.Closure)
	candidates := keys.Minimal(superkeys)
	output := keysOutput{
		Schema:        res.Schema.String(),
		CandidateKeys: namesOf(candidates),
		Prime:         keys.Prime(candidates).Names(),
	}
	if input.Superkeys {
		output.Superkeys = namesOf(superkeys)
	}
	return nil, output, nil
}
