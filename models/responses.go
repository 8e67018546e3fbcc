package models

// AuthPayload is the success response of the signup and login operations:
// the account (never including the password hash) together with a freshly
// issued bearer token.
type AuthPayload struct {
	User      User   `json:"user"`
	AuthToken string `json:"auth_token"`
}

// ErrorResponse is the uniform error body returned by the HTTP layer.
// The message is user-facing; internal details stay in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}
