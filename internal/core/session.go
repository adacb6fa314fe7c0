package core

// StaticSession is a Session backed by a fixed bearer token, typically read
// from configuration. An empty token means unauthenticated.
type StaticSession struct {
	token string
}

// NewStaticSession creates a session from a pre-issued token.
func NewStaticSession(token string) *StaticSession {
	return &StaticSession{token: token}
}

// Token returns the bearer token and whether the session is authenticated.
func (s *StaticSession) Token() (string, bool) {
	return s.token, s.token != ""
}
