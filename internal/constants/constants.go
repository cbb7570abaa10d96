package constants

const (
	// SessionCookieName is the cookie that carries the session id
	SessionCookieName = "pm_session"

	// ContextKeyUserID is both the session key and the gin context key for the current user id
	ContextKeyUserID = "IdUsuario"

	// ContextKeyRequestID holds the per-request correlation id
	ContextKeyRequestID = "request_id"

	// ContextKeyUsuario holds the signed-in *models.Usuario
	ContextKeyUsuario = "usuario_actual"

	// ContextKeyID holds the parsed :id route parameter
	ContextKeyID = "id"

	// HeaderRequestID carries the correlation id in and out
	HeaderRequestID = "X-Request-ID"
)

// LoginPath is where unauthenticated browser requests are sent.
const LoginPath = "/Cuenta/Login"

const (
	MinPasswordLength  = 8
	TempPasswordLength = 12
	// MaxPasswordBytes is the most bcrypt accepts
	MaxPasswordBytes = 72
)

const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// MaxBlobSize caps logos and photos stored in the catalogs.
const MaxBlobSize = 2 << 20
