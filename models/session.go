package models

import "time"

// Session is the explicit per-request session object. It is resolved by
// the auth middleware from the bearer token and handed to services as an
// argument; nothing in this codebase keeps session state in a global.
type Session struct {
	ID               string    `json:"id"`
	DefaultProfileID string    `json:"defaultProfileId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ProfileID returns the profile the request targets: an explicit override
// wins, otherwise the session's default.
func (s *Session) ProfileID(override string) string {
	if override != "" {
		return override
	}
	if s == nil {
		return ""
	}
	return s.DefaultProfileID
}
