// Package errors provides the classified error primitives used across the generator.
//
// Key features:
//   - ErrorCategory: broad classification (config, not_found, content, filesystem, build)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - ClassifiedError: structured error with category, severity, and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting for the CLI
//
// Example usage:
//
//	err := errors.NotFoundError("required site file is missing").
//		WithContext("file", "header.md").
//		WithCause(statErr).
//		Build()
package errors
