package model

// Session holds the client-side state shared between screens.
// It lives only as long as the client and is never persisted.
type Session struct {
	UserName     string
	Email        string
	LovedCount   int
	BlockedCount int
}

// SignedIn reports whether a user name has been set.
func (s Session) SignedIn() bool {
	return s.UserName != ""
}
