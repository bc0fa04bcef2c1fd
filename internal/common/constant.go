package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// access token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a client-generated correlation id so that
// retried requests can be matched in server logs.
const RequestIDHeaderName = "X-Request-Id"

// Storage keys for the durable token pair. These match the keys the web
// client of the same service uses, so the names are fixed.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
)

// Role names as issued in the access token's role claim.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)
