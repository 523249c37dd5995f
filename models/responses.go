package models

// RegisterResponse is returned by POST /users with status 201.
type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LoginResponse is returned by POST /login with status 200.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
