package appstate

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/store"
)

func newTestSession(t *testing.T) (*Session, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	return NewSession(st, zerolog.Nop()), st
}

func TestSignUpThenLogIn(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.SignUp("alice", "pw1"))
	assert.True(t, s.Authenticated())
	assert.Equal(t, "alice", s.Username())

	require.NoError(t, s.LogOut())
	assert.False(t, s.Authenticated())

	require.NoError(t, s.LogIn("alice", "pw1"))
	assert.True(t, s.Authenticated())
}

func TestLogInWrongPassword(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SignUp("alice", "pw1"))
	require.NoError(t, s.LogOut())

	err := s.LogIn("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, s.Authenticated())
}

func TestLogInUsernameIsCaseSensitive(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SignUp("alice", "pw1"))
	require.NoError(t, s.LogOut())

	assert.ErrorIs(t, s.LogIn("Alice", "pw1"), ErrInvalidCredentials)
}

func TestLogInBeforeSignUp(t *testing.T) {
	s, _ := newTestSession(t)
	assert.ErrorIs(t, s.LogIn("alice", "pw1"), ErrNoAccount)
}

func TestEmptyFieldsAreValidationErrors(t *testing.T) {
	s, _ := newTestSession(t)

	var vErr *ValidationError
	assert.ErrorAs(t, s.SignUp("  ", "pw1"), &vErr)
	assert.ErrorAs(t, s.SignUp("alice", "   "), &vErr)
	assert.ErrorAs(t, s.LogIn("", ""), &vErr)
}

func TestSecondSignUpOverwritesTheOnlyAccount(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SignUp("alice", "pw1"))
	require.NoError(t, s.SignUp("bob", "pw2"))
	require.NoError(t, s.LogOut())

	assert.ErrorIs(t, s.LogIn("alice", "pw1"), ErrInvalidCredentials)
	require.NoError(t, s.LogIn("bob", "pw2"))
}

func TestLogOutKeepsStoredCredentials(t *testing.T) {
	s, st := newTestSession(t)
	require.NoError(t, s.SignUp("alice", "pw1"))
	require.NoError(t, s.LogOut())

	_, found, err := st.Get(store.KeyUserData)
	require.NoError(t, err)
	assert.True(t, found, "credentials must survive logout")

	_, found, err = st.Get(store.KeyIsLoggedIn)
	require.NoError(t, err)
	assert.False(t, found, "logged-in flag must be cleared")
}

func TestRestoreAcrossRestart(t *testing.T) {
	st := store.NewMemory()
	s := NewSession(st, zerolog.Nop())
	require.NoError(t, s.SignUp("alice", "pw1"))

	// A fresh session over the same store simulates an app restart.
	s2 := NewSession(st, zerolog.Nop())
	restored, err := s2.Restore()
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, "alice", s2.Username())

	require.NoError(t, s2.LogOut())
	s3 := NewSession(st, zerolog.Nop())
	restored, err = s3.Restore()
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestPasswordIsNotStoredInPlaintext(t *testing.T) {
	s, st := newTestSession(t)
	require.NoError(t, s.SignUp("alice", "hunter2"))

	raw, _, err := st.Get(store.KeyUserData)
	require.NoError(t, err)
	assert.NotContains(t, raw, "hunter2")
}

func TestUpdateUsernameKeepsPassword(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SignUp("alice", "pw1"))

	require.NoError(t, s.UpdateUsername("alice cooper"))
	assert.Equal(t, "alice cooper", s.Username())

	require.NoError(t, s.LogOut())
	require.NoError(t, s.LogIn("alice cooper", "pw1"))

	// Blank rename is a no-op.
	require.NoError(t, s.UpdateUsername("   "))
	assert.Equal(t, "alice cooper", s.Username())
}
