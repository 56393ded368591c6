package common

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "token"

// Roles a user record may carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
