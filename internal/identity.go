package internal

import "strings"

// Session is the identity the verification collaborator hands the core: one
// verified email plus an admin flag derived from the injected allow-list. An
// empty email means no login, which blocks every identity-gated operation.
type Session struct {
	Email string
	Admin bool
}

// NewSession derives a session from a verified email and the configuration
func NewSession(email string, cfg *Config) Session {
	email = strings.ToLower(strings.TrimSpace(email))
	return Session{
		Email: email,
		Admin: cfg.IsAdmin(email),
	}
}

// LoggedIn reports whether the session carries a verified email
func (s Session) LoggedIn() bool {
	return s.Email != ""
}
