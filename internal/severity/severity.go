// Package severity provides severity level constants for the dependency
// violations reported by the normalizer package.
//
// A violating dependency X -> Y is graded by the weakest normal form it breaks:
//   - SeverityInfo: the schema is in 3NF but not BCNF (Y holds only prime attributes)
//   - SeverityWarning: a transitive dependency on a non-key (3NF violation)
//   - SeverityError: a partial dependency on part of a candidate key (2NF violation)
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

import "fmt"

// Severity indicates how badly a dependency breaks normalization.
type Severity int

const (
	// SeverityInfo indicates a BCNF violation in an otherwise 3NF schema.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a transitive dependency of non-prime
	// attributes on a non-key attribute set.
	SeverityWarning

	// SeverityError indicates a partial dependency of non-prime attributes
	// on a proper subset of a candidate key.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// NormalForm names the weakest normal form a violation of this severity breaks.
func (s Severity) NormalForm() string {
	switch s {
	case SeverityInfo:
		return "BCNF"
	case SeverityWarning:
		return "3NF"
	case SeverityError:
		return "2NF"
	default:
		return ""
	}
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityInfo || s > SeverityError {
		return nil, fmt.Errorf("severity: unknown level %d", int(s))
	}
	return []byte(s.String()), nil
}

// Classify grades a violating dependency. partial reports whether the
// determinant is a proper subset of some candidate key and nonPrime whether
// the dependent side contains an attribute outside every candidate key.
func Classify(partial, nonPrime bool) Severity {
	switch {
	case nonPrime && partial:
		return SeverityError
	case nonPrime:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
