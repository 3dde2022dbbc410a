package main

import (
	"fmt"
	"os"

	"github.com/erraggy/fdtools"
	"github.com/erraggy/fdtools/cmd/fdtools/commands"
)

// commandNames lists every command for typo suggestions.
var commandNames = []string{"closure", "keys", "bcnf", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var handler func([]string) error
	switch command {
	case "version", "-v", "--version":
		fmt.Println(versionText())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "closure":
		handler = commands.HandleClosure
	case "keys":
		handler = commands.HandleKeys
	case "bcnf":
		handler = commands.HandleBCNF
	case "mcp":
		handler = commands.HandleMCP
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// versionText is the output of the version command.
func versionText() string {
	return "fdtools v" + fdtools.Version() + "\n" + fdtools.BuildInfo()
}

// suggestCommand returns the closest command within edit distance 2, or ""
// when none is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`fdtools - Functional Dependency Tools

Usage:
  fdtools <command> [options]

Commands:
  closure     Compute the closure of a set of functional dependencies
  keys        List the candidate keys of a relation
  bcnf        Check for BCNF and decompose into BCNF relations
  mcp         Serve the tools over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Examples:
  fdtools closure -schema ABCD -fd B:C -fd D:A
  fdtools keys -schema ABCDE -fd AB:C -fd C:D -fd D:A
  fdtools bcnf -schema ABCD -fd B:C -fd D:A
  fdtools bcnf -schema order_id,customer,city -fd order_id:customer -fd customer:city --format json

Run 'fdtools <command> --help' for more information on a command.`)
}
