package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldSignal    = "signal"
	FieldPath      = "path"
	FieldRunID     = "run_id"
	FieldRecords   = "records"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentBackend = "backend"
	ComponentService = "service"
)
