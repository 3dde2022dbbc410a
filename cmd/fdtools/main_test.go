package main

import (
	"strings"
	"testing"

	"github.com/erraggy/fdtools"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"closur", "closure"},
		{"clsoure", "closure"},
		{"closre", "closure"},
		{"kyes", "keys"},
		{"key", "keys"},
		{"bcfn", "bcnf"},
		{"bnf", "bcnf"},
		{"mc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"normalization", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"bcnf", "bcnf", 0},
		{"kitten", "sitting", 3},
		{"clé", "cle", 1},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVersionText(t *testing.T) {
	got := versionText()
	if !strings.HasPrefix(got, "fdtools v"+fdtools.Version()+"\n") {
		t.Errorf("versionText() = %q, want the version on the first line", got)
	}
	if !strings.HasSuffix(got, fdtools.BuildInfo()) {
		t.Errorf("versionText() = %q, want it to end with BuildInfo()", got)
	}
}
