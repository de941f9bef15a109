package session

import (
	"time"

	"github.com/dmitrijs2005/passvault/internal/client/services"
)

// NoticeKind tells confirmations from errors.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is a transient message shown until At+TTL.
type Notice struct {
	Text string
	Kind NoticeKind
	At   time.Time
	TTL  time.Duration
}

// Active reports whether the notice is still visible at now.
func (n *Notice) Active(now time.Time) bool {
	return n != nil && now.Sub(n.At) < n.TTL
}

// Session is the single owner of all in-flight input. It is not safe for
// concurrent use.
type Session struct {
	State    State
	Identity *services.Identity
	Notice   *Notice

	// ViewportHeight is the number of list lines visible at once, at least 1.
	ViewportHeight int

	// Quit is set when the operator chose Exit.
	Quit bool
}

// NewSession returns a session on the Start screen.
func NewSession(viewportHeight int) *Session {
	return &Session{
		State:          Start{},
		ViewportHeight: max(viewportHeight, 1),
	}
}

// LoggedIn reports whether an identity is held.
func (s *Session) LoggedIn() bool {
	return s.Identity != nil
}

// Close wipes the identity key.
func (s *Session) Close() {
	s.Identity.Wipe()
	s.Identity = nil
}
