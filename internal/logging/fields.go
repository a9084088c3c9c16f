package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldTag        = "tag"
	FieldDurationMS = "duration_ms"
)
