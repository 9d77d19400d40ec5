package admin

// Credential is an entry of the admin credential list.
type Credential struct {
	Email        string
	PasswordHash string
}

// Session is what a successful login hands back to the caller. The caller
// keeps it and passes it to every admin write; nothing else holds it.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Valid reports whether the session carries a token at all. The token
// itself is opaque.
func (s Session) Valid() bool {
	return s.Token != ""
}
