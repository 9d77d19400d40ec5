package admin

import "errors"

// InvalidCredentialsMessage is the envelope error text of a failed login.
const InvalidCredentialsMessage = "Invalid credentials"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("admin session required")
	ErrOperationFailed    = errors.New("operation failed")
)
