// Package fderrors provides structured error types for the fdtools library.
//
// Import path: github.com/erraggy/fdtools/fderrors
//
// Every failure raised by the fd, closure, keys and normalizer packages wraps
// one of these types, so callers can tell a malformed dependency apart from a
// schema mismatch or an internal defect with [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [DependencyError]: a dependency with an empty side, or one that cannot be split on
//   - [AttributeError]: a dependency mentions an attribute outside the schema
//   - [InputShapeError]: a closure seed in an unrecognized shape
//   - [InconsistencyError]: an internal invariant was breached (a defect)
//   - [ResourceLimitError]: a schema too large to enumerate its powerset
//   - [ConfigError]: invalid or missing options
//
// # Sentinel Errors
//
//   - [ErrInvalidDependency]: Matches any [DependencyError]
//   - [ErrAttributeNotInSchema]: Matches any [AttributeError]
//   - [ErrUnsupportedInputShape]: Matches any [InputShapeError]
//   - [ErrInternalInconsistency]: Matches any [InconsistencyError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	res, err := closure.Compute(schema, seed)
//	if errors.Is(err, fderrors.ErrAttributeNotInSchema) {
//	    // the seed mentions an unknown attribute
//	}
//
//	var attrErr *fderrors.AttributeError
//	if errors.As(err, &attrErr) {
//	    fmt.Printf("unknown attribute %s in %s\n", attrErr.Attribute, attrErr.Dependency)
//	}
package fderrors
