package appstate

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"jobdesk/internal/store"
)

// Categories are the listings screen's filter chips. "All" maps to the empty
// category, which matches everything.
var Categories = []string{"All", "Tech", "Marketing", "Sales"}

// App is the explicitly owned application state. Screens hold a reference to
// it and mutate state only through its operations, never through ad hoc
// field writes from the view layer.
type App struct {
	Session   *Session
	Catalog   *Catalog
	Favorites *Favorites
	Prefs     *Prefs
	Feedback  *FeedbackLog

	log       zerolog.Logger
	lastError string
}

// New wires the application state onto a durable store and a job source.
func New(st store.Store, src Source, log zerolog.Logger) *App {
	return &App{
		Session:   NewSession(st, log),
		Catalog:   NewCatalog(src, log),
		Favorites: NewFavorites(),
		Prefs:     NewPrefs(st),
		Feedback:  NewFeedbackLog(st),
		log:       log,
	}
}

// Start is the app-launch path: restore preferences and the session from the
// store, and load the catalog when a logged-in session was restored.
func (a *App) Start(ctx context.Context) error {
	if err := a.Prefs.Load(); err != nil {
		a.lastError = ErrorMessage(err)
		return err
	}

	restored, err := a.Session.Restore()
	if err != nil {
		a.lastError = ErrorMessage(err)
		return err
	}
	if restored {
		a.loadCatalog(ctx)
	}
	return nil
}

// SignUp creates the account and, on success, loads the catalog. A catalog
// load failure does not undo the signup; it surfaces on the home screen.
func (a *App) SignUp(ctx context.Context, username, password string) error {
	if err := a.Session.SignUp(username, password); err != nil {
		a.lastError = ErrorMessage(err)
		return err
	}
	a.lastError = ""
	a.loadCatalog(ctx)
	return nil
}

// LogIn authenticates and, on success, loads the catalog.
func (a *App) LogIn(ctx context.Context, username, password string) error {
	if err := a.Session.LogIn(username, password); err != nil {
		a.lastError = ErrorMessage(err)
		return err
	}
	a.lastError = ""
	a.loadCatalog(ctx)
	return nil
}

// LogOut de-authenticates. Preferences and the stored credentials survive.
func (a *App) LogOut() error {
	if err := a.Session.LogOut(); err != nil {
		a.lastError = ErrorMessage(err)
		return err
	}
	a.lastError = ""
	return nil
}

func (a *App) loadCatalog(ctx context.Context) {
	if err := a.Catalog.Load(ctx); err != nil {
		a.lastError = ErrorMessage(err)
		return
	}
	a.lastError = ""
}

// LastError is the inline message for the screen currently showing state.
func (a *App) LastError() string { return a.lastError }

// Screen data contracts. Each view struct is exactly what one screen renders.

// HomeView is what the home screen renders.
type HomeView struct {
	Username     string
	ProfileImage string
	Loading      bool
	Error        string
	Latest       []JobRecord
}

func (a *App) Home() HomeView {
	username := a.Session.Username()
	if username == "" {
		username = "User"
	}
	return HomeView{
		Username:     username,
		ProfileImage: a.Prefs.ProfileImage(),
		Loading:      a.Catalog.Loading(),
		Error:        a.lastError,
		Latest:       a.Catalog.Latest(3),
	}
}

// ListingsView is the searchable, category-filtered job list.
type ListingsView struct {
	Jobs       []JobRecord
	Categories []string
}

func (a *App) Listings(searchText, category string) ListingsView {
	return ListingsView{
		Jobs:       Filter(a.Catalog.Jobs(), searchText, category),
		Categories: Categories,
	}
}

// DetailView is one job plus its favorite state and related postings.
type DetailView struct {
	Job        JobRecord
	IsFavorite bool
	Related    []JobRecord
}

func (a *App) Detail(job JobRecord) DetailView {
	return DetailView{
		Job:        job,
		IsFavorite: a.Favorites.IsFavorite(job.ID),
		Related:    a.Catalog.Related(job),
	}
}

// ProfileView backs the profile screen. The email is display-only, derived
// from the username the same way the client always has.
type ProfileView struct {
	Username     string
	Email        string
	ProfileImage string
	DarkMode     bool
}

func (a *App) Profile() ProfileView {
	username := a.Session.Username()
	if username == "" {
		username = "User"
	}
	local := strings.ReplaceAll(strings.ToLower(username), " ", "")
	return ProfileView{
		Username:     username,
		Email:        local + "@example.com",
		ProfileImage: a.Prefs.ProfileImage(),
		DarkMode:     a.Prefs.DarkMode(),
	}
}

// SettingsView backs the settings screen.
type SettingsView struct {
	DarkMode      bool
	AvailableJobs int
}

func (a *App) Settings() SettingsView {
	return SettingsView{
		DarkMode:      a.Prefs.DarkMode(),
		AvailableJobs: a.Catalog.Len(),
	}
}

// FeedbackView backs the feedback screen.
type FeedbackView struct {
	Entries       []FeedbackEntry
	JustSubmitted bool
}

func (a *App) FeedbackHistory() (FeedbackView, error) {
	entries, err := a.Feedback.Entries()
	if err != nil {
		return FeedbackView{}, err
	}
	return FeedbackView{
		Entries:       entries,
		JustSubmitted: a.Feedback.JustSubmitted(),
	}, nil
}
