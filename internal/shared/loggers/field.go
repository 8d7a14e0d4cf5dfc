package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldSource = "source"
	FieldLine   = "line"
	FieldReport = "report"

	FieldDuration   = "duration"
	FieldErrorCode  = "error_code"
	FieldErrorStack = "error_stack"
)
