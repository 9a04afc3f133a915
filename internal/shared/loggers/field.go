package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldTraceID        = "trace_id"
	FieldTraceSource    = "trace_source"
	FieldTraceFormat    = "trace_format"
	FieldLine           = "line"
	FieldDiagnosticKind = "diagnostic_kind"
	FieldRunID          = "run_id"
	FieldSubframe       = "subframe"
)
