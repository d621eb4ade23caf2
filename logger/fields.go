package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across classbuilder.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Generated elements
	FieldClass     = "class"
	FieldMethod    = "method"
	FieldProperty  = "property"
	FieldModifier  = "modifier"
	FieldQualifier = "qualifier"
	FieldExtender  = "extender"
	FieldImport    = "import"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Files and paths
	FieldFile   = "file"
	FieldFormat = "format"
	FieldOp     = "op"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	cb := classbuilder.New(logger.ComponentLogger("classbuilder"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l
}
