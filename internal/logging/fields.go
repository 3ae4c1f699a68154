// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldWorkingDir = "working_dir"
	FieldFiles      = "files"

	// Pipeline fields.
	FieldOffset     = "offset"
	FieldMath       = "math"
	FieldEval       = "eval"
	FieldAnswer     = "answer"
	FieldExpression = "expression"
	FieldResult     = "result"
	FieldDelimiters = "delimiters"
	FieldSelections = "selections"

	// Configuration fields.
	FieldFormat = "format"
	FieldWrite  = "write"
	FieldBackup = "backup"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
