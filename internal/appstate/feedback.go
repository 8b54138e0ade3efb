package appstate

import (
	"encoding/json"
	"strings"
	"time"

	"jobdesk/internal/store"
)

// submittedBanner is how long the "thank you" indicator stays visible after
// a successful submission.
const submittedBanner = 2 * time.Second

// FeedbackEntry is one submitted feedback item. Entries are append-only and
// never edited or deleted; the persisted sequence grows unbounded.
type FeedbackEntry struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// FeedbackLog is the durably persisted feedback sequence.
type FeedbackLog struct {
	store store.Store
	now   func() time.Time

	submittedAt time.Time
}

func NewFeedbackLog(st store.Store) *FeedbackLog {
	return &FeedbackLog{store: st, now: time.Now}
}

// Submit appends text with the current timestamp. Whitespace-only text is a
// silent no-op and leaves the persisted sequence unchanged.
func (f *FeedbackLog) Submit(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	entries, err := f.Entries()
	if err != nil {
		return err
	}

	now := f.now()
	entries = append(entries, FeedbackEntry{Text: text, Date: now})

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := f.store.Set(store.KeyFeedback, string(raw)); err != nil {
		return err
	}

	f.submittedAt = now
	return nil
}

// Entries returns the persisted sequence, oldest first.
func (f *FeedbackLog) Entries() ([]FeedbackEntry, error) {
	raw, found, err := f.store.Get(store.KeyFeedback)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var entries []FeedbackEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, &store.StorageError{Op: "get", Key: store.KeyFeedback, Err: err}
	}
	return entries, nil
}

// JustSubmitted reports whether a submission succeeded within the last two
// seconds, driving the transient success banner.
func (f *FeedbackLog) JustSubmitted() bool {
	if f.submittedAt.IsZero() {
		return false
	}
	return f.now().Sub(f.submittedAt) < submittedBanner
}
