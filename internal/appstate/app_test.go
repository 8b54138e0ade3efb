package appstate

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/source"
	"jobdesk/internal/store"
)

func newTestApp(src Source) *App {
	return New(storeForTest(), src, zerolog.Nop())
}

func storeForTest() *memStore { return &memStore{values: map[string]string{}} }

// memStore mirrors store.Memory but lets tests inject failures.
type memStore struct {
	values map[string]string
	setErr error
}

func (m *memStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func (m *memStore) Close() error { return nil }

func TestSignUpLoadsCatalog(t *testing.T) {
	src := &fakeSource{posts: []source.Post{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}}}
	app := newTestApp(src)

	require.NoError(t, app.SignUp(context.Background(), "alice", "pw1"))

	assert.Equal(t, 2, app.Catalog.Len())
	assert.Empty(t, app.LastError())
}

func TestSignUpSurvivesCatalogFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("offline")}
	app := newTestApp(src)

	require.NoError(t, app.SignUp(context.Background(), "alice", "pw1"))

	assert.True(t, app.Session.Authenticated(), "fetch failure must not undo the signup")
	assert.Equal(t, "Failed to fetch jobs. Please try again later.", app.LastError())
}

func TestStartRestoresSessionAndPrefs(t *testing.T) {
	src := &fakeSource{posts: []source.Post{{ID: 1, Title: "one"}}}
	st := storeForTest()

	first := New(st, src, zerolog.Nop())
	require.NoError(t, first.SignUp(context.Background(), "alice", "pw1"))
	require.NoError(t, first.Prefs.SetDarkMode(true))

	// A fresh App over the same store is a process restart. Favorites are
	// deliberately not persisted.
	first.Favorites.Toggle(1)

	second := New(st, src, zerolog.Nop())
	require.NoError(t, second.Start(context.Background()))

	assert.True(t, second.Session.Authenticated())
	assert.Equal(t, "alice", second.Session.Username())
	assert.True(t, second.Prefs.DarkMode())
	assert.Equal(t, 1, second.Catalog.Len())
	assert.False(t, second.Favorites.IsFavorite(1), "favorites do not survive restart")
}

func TestStartWithoutSessionSkipsCatalogLoad(t *testing.T) {
	calls := 0
	src := &fakeSource{onCall: func() { calls++ }}
	app := newTestApp(src)

	require.NoError(t, app.Start(context.Background()))

	assert.False(t, app.Session.Authenticated())
	assert.Zero(t, calls, "catalog must not load when logged out")
}

func TestHomeView(t *testing.T) {
	src := &fakeSource{posts: []source.Post{
		{ID: 1, Title: "a"}, {ID: 2, Title: "b"}, {ID: 3, Title: "c"}, {ID: 4, Title: "d"},
	}}
	app := newTestApp(src)
	require.NoError(t, app.SignUp(context.Background(), "alice", "pw1"))

	home := app.Home()
	assert.Equal(t, "alice", home.Username)
	assert.Equal(t, DefaultProfileImage, home.ProfileImage)
	assert.Len(t, home.Latest, 3)
	assert.Equal(t, "a", home.Latest[0].Title)
}

func TestListingsView(t *testing.T) {
	src := &fakeSource{posts: []source.Post{
		{ID: 3, Title: "Tech Lead"},  // id%3==0 -> Tech
		{ID: 1, Title: "Copy Lead"},  // Marketing
		{ID: 2, Title: "Closer"},     // Sales
	}}
	app := newTestApp(src)
	require.NoError(t, app.SignUp(context.Background(), "alice", "pw1"))

	view := app.Listings("", "tech")
	require.Len(t, view.Jobs, 1)
	assert.Equal(t, 3, view.Jobs[0].ID)
	assert.Equal(t, Categories, view.Categories)
}

func TestDetailView(t *testing.T) {
	src := &fakeSource{posts: []source.Post{
		{ID: 3, Title: "a"}, {ID: 6, Title: "b"}, {ID: 9, Title: "c"},
	}}
	app := newTestApp(src)
	require.NoError(t, app.SignUp(context.Background(), "alice", "pw1"))

	job := app.Catalog.Jobs()[0]
	app.Favorites.Toggle(job.ID)

	detail := app.Detail(job)
	assert.True(t, detail.IsFavorite)
	require.Len(t, detail.Related, 2)
	assert.Equal(t, 6, detail.Related[0].ID)
}

func TestProfileViewDerivedEmail(t *testing.T) {
	app := newTestApp(&fakeSource{})
	require.NoError(t, app.SignUp(context.Background(), "Alice Cooper", "pw1"))

	profile := app.Profile()
	assert.Equal(t, "alicecooper@example.com", profile.Email)
}

func TestStorageFailureSurfacesMessage(t *testing.T) {
	st := storeForTest()
	st.setErr = &store.StorageError{Op: "set", Key: store.KeyUserData, Err: errors.New("disk full")}
	app := New(st, &fakeSource{}, zerolog.Nop())

	err := app.SignUp(context.Background(), "alice", "pw1")
	require.Error(t, err)
	assert.Equal(t, "Failed to load app data", app.LastError())
	assert.False(t, app.Session.Authenticated())
}

func TestErrorMessageMapping(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&ValidationError{Msg: "Please enter both username and password"}, "Please enter both username and password"},
		{ErrNoAccount, "No account found. Please sign up first."},
		{ErrInvalidCredentials, "Invalid username or password"},
		{&FetchError{Err: errors.New("timeout")}, "Failed to fetch jobs. Please try again later."},
	}
	for _, c := range cases {
		if got := ErrorMessage(c.err); got != c.want {
			t.Errorf("ErrorMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
