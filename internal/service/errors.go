package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the uniform login failure: an unknown email
	// and a wrong password map to this same error so that the response never
	// reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired = errors.New("token is expired")
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrIdentityNotFound is returned when a valid token's subject no longer
	// resolves to an existing user.
	ErrIdentityNotFound = errors.New("token subject no longer exists")

	// ErrPermissionDenied is returned when the acting identity does not own
	// the purchase it attempts to mutate.
	ErrPermissionDenied = errors.New("permission denied")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
