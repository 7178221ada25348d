package models

// Session is the authenticated state of the client.
// The zero value means "not authenticated".
type Session struct {
	// Token is the opaque bearer credential issued by the server.
	Token string

	// User is the profile returned together with the token.
	User *User
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
