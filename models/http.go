package models

// SignupRequest is the body of POST /api/auth/signup and POST /api/users.
type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Credentials is the body of POST /api/auth/signin.
//
// The struct exists only for the duration of a single request. It must never
// be logged or persisted; the plaintext password leaves the process only as
// input to the bcrypt comparison.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the only shape returned to a client after a successful
// signup or signin. It never includes the password hash.
type AuthResponse struct {
	User        PublicUser `json:"user"`
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   string     `json:"expires_in"`
}

// MessageResponse is a generic informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}
