package application

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFieldNotFound    = errors.New("field not found")
	ErrRequestNotFound  = errors.New("signing request not found")
	ErrSignerNotFound   = errors.New("signer not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrForbidden covers both ownership failures and signer credential
	// mismatches. A valid token with the wrong email gets this, not a 404,
	// so the existence of the request is never leaked by accident and a
	// legitimate signer who mistyped their address gets a correctable error.
	ErrForbidden = errors.New("access denied")

	ErrInvalidInput = errors.New("invalid input")

	ErrConflict    = errors.New("operation conflicts with current state")
	ErrGone        = errors.New("signing request expired")
	ErrNotYourTurn = errors.New("not this signer's turn")

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already registered")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

// ValidationError reports a finalize attempt blocked by unfilled required
// fields. Unfilled carries the count so the caller can show progress.
type ValidationError struct {
	Unfilled int64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d required field(s) still unfilled", e.Unfilled)
}
