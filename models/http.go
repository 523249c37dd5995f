package models

// Credentials is the part of a register or login body that both endpoints
// require to be non-empty.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	Role               *string `json:"role,omitempty"`
	LanguagePreference *string `json:"languagePreference,omitempty"`
}

// Credentials returns the email/password pair of the request.
func (r RegisterRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials returns the email/password pair of the request.
func (r LoginRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}
