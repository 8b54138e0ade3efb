package appstate

import "jobdesk/internal/store"

// DefaultProfileImage is the placeholder shown until the user picks one.
const DefaultProfileImage = "https://via.placeholder.com/150"

// Prefs are the user preferences persisted independently of the session.
// Both survive logout.
type Prefs struct {
	store        store.Store
	darkMode     bool
	profileImage string
}

func NewPrefs(st store.Store) *Prefs {
	return &Prefs{store: st, profileImage: DefaultProfileImage}
}

// Load reads the persisted preferences; absent keys keep their defaults.
func (p *Prefs) Load() error {
	dark, _, err := p.store.Get(store.KeyIsDarkMode)
	if err != nil {
		return err
	}
	p.darkMode = dark == "true"

	img, found, err := p.store.Get(store.KeyProfileImage)
	if err != nil {
		return err
	}
	if found {
		p.profileImage = img
	}
	return nil
}

func (p *Prefs) DarkMode() bool { return p.darkMode }

// SetDarkMode persists the flag before updating the in-memory value.
func (p *Prefs) SetDarkMode(v bool) error {
	value := "false"
	if v {
		value = "true"
	}
	if err := p.store.Set(store.KeyIsDarkMode, value); err != nil {
		return err
	}
	p.darkMode = v
	return nil
}

func (p *Prefs) ProfileImage() string { return p.profileImage }

func (p *Prefs) SetProfileImage(uri string) error {
	if err := p.store.Set(store.KeyProfileImage, uri); err != nil {
		return err
	}
	p.profileImage = uri
	return nil
}
