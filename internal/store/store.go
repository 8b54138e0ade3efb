// Package store is the durable key-value layer the app persists through.
// Values are plain strings; composite state (user data, feedback history)
// is stored as its JSON-serialized form and parsed on read.
//
// Each Get/Set/Delete is atomic for its key. There is no multi-key
// transaction, so cross-key consistency across a crash is not guaranteed.
package store

import "fmt"

// Keys recognized by the application. These are the exact key strings the
// mobile client has always used, so an existing on-device store keeps
// working after an upgrade.
const (
	KeyIsLoggedIn   = "isLoggedIn"
	KeyIsDarkMode   = "isDarkMode"
	KeyUserData     = "userData"
	KeyProfileImage = "profileImage"
	KeyFeedback     = "feedback"
)

// Store is a string-keyed get/set/delete of string values.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes value under key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases the underlying resources.
	Close() error
}

// StorageError wraps a failed durable-store read or write.
type StorageError struct {
	Op  string // "get", "set" or "delete"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
