package appstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/store"
)

func TestSubmitWhitespaceIsNoOp(t *testing.T) {
	st := store.NewMemory()
	f := NewFeedbackLog(st)

	require.NoError(t, f.Submit("   "))

	_, found, err := st.Get(store.KeyFeedback)
	require.NoError(t, err)
	assert.False(t, found, "persisted sequence must be unchanged")
	assert.False(t, f.JustSubmitted())
}

func TestSubmitAppendsEntry(t *testing.T) {
	f := NewFeedbackLog(store.NewMemory())

	before := time.Now()
	require.NoError(t, f.Submit("Great app"))

	entries, err := f.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Great app", entries[0].Text)
	assert.False(t, entries[0].Date.Before(before))

	require.NoError(t, f.Submit("Second thoughts"))
	entries, err = f.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Great app", entries[0].Text, "order must be oldest first")
}

func TestFeedbackSurvivesReload(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, NewFeedbackLog(st).Submit("persisted"))

	entries, err := NewFeedbackLog(st).Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted", entries[0].Text)
}

func TestJustSubmittedClearsAfterTwoSeconds(t *testing.T) {
	f := NewFeedbackLog(store.NewMemory())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return now }

	require.NoError(t, f.Submit("hi"))
	assert.True(t, f.JustSubmitted())

	now = now.Add(1900 * time.Millisecond)
	assert.True(t, f.JustSubmitted())

	now = now.Add(200 * time.Millisecond)
	assert.False(t, f.JustSubmitted())
}
