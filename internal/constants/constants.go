package constants

// Pagination bounds
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MinPasswordLength is the minimum accepted password length on registration.
const MinPasswordLength = 8

// ContextKeyUser is the gin context key holding the authenticated user.
const ContextKeyUser = "current_user"

// AuthHeaderPrefix is the expected Authorization header scheme.
const AuthHeaderPrefix = "Bearer "
