package appstate

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"jobdesk/internal/store"
)

// userData is the single stored credential record. The original client kept
// the password in plaintext; this implementation stores a bcrypt hash behind
// the same contract, which changes the persisted schema deliberately.
type userData struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Session tracks the logged-in identity. There is only ever one locally
// stored account: a second signup overwrites it.
type Session struct {
	store store.Store
	log   zerolog.Logger

	authenticated bool
	username      string
}

func NewSession(st store.Store, log zerolog.Logger) *Session {
	return &Session{store: st, log: log}
}

// Authenticated reports whether the session is logged in.
func (s *Session) Authenticated() bool { return s.authenticated }

// Username returns the logged-in username, empty when not authenticated.
func (s *Session) Username() string { return s.username }

// SignUp creates (or overwrites) the stored account and authenticates.
// The logged-in flag is persisted before the call returns, so dependent
// state only reacts once the write has acknowledged.
func (s *Session) SignUp(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return &ValidationError{Msg: "Please enter both username and password"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(userData{Username: username, PasswordHash: string(hash)})
	if err != nil {
		return err
	}
	if err := s.store.Set(store.KeyUserData, string(raw)); err != nil {
		return err
	}
	if err := s.store.Set(store.KeyIsLoggedIn, "true"); err != nil {
		return err
	}

	s.authenticated = true
	s.username = username
	s.log.Info().Str("username", username).Msg("signup successful")
	return nil
}

// LogIn authenticates against the stored credential pair. The username is
// compared exactly; the password against the stored bcrypt hash.
func (s *Session) LogIn(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return &ValidationError{Msg: "Please enter both username and password"}
	}

	raw, found, err := s.store.Get(store.KeyUserData)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoAccount
	}

	var u userData
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return &store.StorageError{Op: "get", Key: store.KeyUserData, Err: err}
	}

	if username != u.Username ||
		bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	if err := s.store.Set(store.KeyIsLoggedIn, "true"); err != nil {
		return err
	}

	s.authenticated = true
	s.username = u.Username
	s.log.Info().Str("username", u.Username).Msg("login successful")
	return nil
}

// LogOut clears only the logged-in flag. The stored credential record is
// kept, so the account can log back in.
func (s *Session) LogOut() error {
	if err := s.store.Delete(store.KeyIsLoggedIn); err != nil {
		return err
	}
	s.authenticated = false
	s.username = ""
	return nil
}

// Restore rebuilds the session at app start from the durable store. It
// reports whether a logged-in session was restored.
func (s *Session) Restore() (bool, error) {
	flag, _, err := s.store.Get(store.KeyIsLoggedIn)
	if err != nil {
		return false, err
	}
	raw, found, err := s.store.Get(store.KeyUserData)
	if err != nil {
		return false, err
	}

	if flag != "true" || !found {
		s.authenticated = false
		return false, nil
	}

	var u userData
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return false, &store.StorageError{Op: "get", Key: store.KeyUserData, Err: err}
	}

	s.authenticated = true
	s.username = u.Username
	if s.username == "" {
		s.username = "User"
	}
	return true, nil
}

// UpdateUsername renames the stored account in place, keeping the password
// hash. A blank new name is a silent no-op, matching the profile screen.
func (s *Session) UpdateUsername(newUsername string) error {
	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" {
		return nil
	}

	raw, found, err := s.store.Get(store.KeyUserData)
	if err != nil {
		return err
	}

	var u userData
	if found {
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return &store.StorageError{Op: "get", Key: store.KeyUserData, Err: err}
		}
	}
	u.Username = newUsername

	out, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.store.Set(store.KeyUserData, string(out)); err != nil {
		return err
	}

	s.username = newUsername
	return nil
}
