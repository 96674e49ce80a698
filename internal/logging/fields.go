package logging

// Field name constants for structured logging.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"
	FieldConfig = "config"

	// Document fields.
	FieldLine     = "line"
	FieldText     = "text"
	FieldLines    = "lines"
	FieldLayers   = "layers"
	FieldWarnings = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
