package logger

// Standard field names for structured logging.
const (
	FieldRunID      = "run_id"
	FieldModule     = "module"
	FieldFile       = "file"
	FieldQualifier  = "qualifier"
	FieldName       = "name"
	FieldCandidates = "candidates"
	FieldChosen     = "chosen"
	FieldCount      = "count"
	FieldError      = "error"
	FieldDurationMS = "duration_ms"
)
