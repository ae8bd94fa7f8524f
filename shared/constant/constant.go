package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUsername  contextKey = "username"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	FieldDisplayOrder = "display_order"
	FieldIsActive     = "is_active"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStorageScopeName    = "storage"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
	RequestHeaderForwardedFor  = "X-Forwarded-For"
	RequestHeaderRealIP        = "X-Real-IP"

	ResponseHeaderAuthChallenge  = "WWW-Authenticate"
	ResponseHeaderContentOptions = "X-Content-Type-Options"
	ResponseHeaderFrameOptions   = "X-Frame-Options"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
)

const (
	BasicAuthChallenge = `Basic realm="admin", charset="UTF-8"`
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
