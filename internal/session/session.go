// Package session holds the durable client-local authentication state of the
// console: the current bearer token and the identity of the logged-in user.
package session

// User represents the identity of the logged-in user as reported by the login endpoint
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session represents the persisted authentication state.
// A user identity is only ever stored alongside a token; a token may exist
// without an identity (the server never relies on the identity record).
type Session struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// Empty reports whether the session holds neither a token nor a user identity
func (session *Session) Empty() bool {
	return session.Token == "" && session.User == nil
}
