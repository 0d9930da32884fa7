package constants

const (
	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderRetryAfter    = "Retry-After"

	// BearerScheme prefixes the token in the Authorization header.
	BearerScheme = "Bearer"

	// Context keys
	ContextKeyClientUID = "client_uid"
	ContextKeyRequestID = "request_id"

	// Server modes accepted by --env and server.mode
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)
