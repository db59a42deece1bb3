// Package session tracks which user, if any, is authenticated in this
// process run. The session is an explicit object handed to every service
// that needs the current user; there is no package-level global.
package session

import (
	"github.com/savorly/savorly/internal/domain/user"
)

// Session holds at most one authenticated user. All data operations run on
// the UI's single logical thread, so access is not synchronized.
type Session struct {
	current *user.User
}

// New returns a logged-out session.
func New() *Session {
	return &Session{}
}

// Set installs the authenticated user.
func (s *Session) Set(u *user.User) {
	s.current = u
}

// Clear logs the session out.
func (s *Session) Clear() {
	s.current = nil
}

// Current returns the authenticated user, or nil when logged out.
func (s *Session) Current() *user.User {
	return s.current
}

// IsLoggedIn reports whether a user is authenticated.
func (s *Session) IsLoggedIn() bool {
	return s.current != nil
}
