package appstate

import (
	"errors"
	"fmt"

	"jobdesk/internal/store"
)

// Sentinel errors for the login flow.
var (
	// ErrNoAccount means login was attempted before any signup.
	ErrNoAccount = errors.New("no account found")
	// ErrInvalidCredentials means the submitted pair does not match the
	// stored credentials.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a required field that was empty after trimming.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// FetchError wraps a transport failure while loading the job catalog.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch jobs: %v", e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

// ErrorMessage converts an operation error into the inline message a screen
// shows. Errors are never fatal and never retried automatically.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Msg
	}
	if errors.Is(err, ErrNoAccount) {
		return "No account found. Please sign up first."
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return "Invalid username or password"
	}

	var fErr *FetchError
	if errors.As(err, &fErr) {
		return "Failed to fetch jobs. Please try again later."
	}

	var sErr *store.StorageError
	if errors.As(err, &sErr) {
		return "Failed to load app data"
	}

	return err.Error()
}
