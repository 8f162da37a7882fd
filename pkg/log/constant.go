package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// RequestIDField is the field name used for the request id set by the http layer.
	RequestIDField = "request_id"
)
