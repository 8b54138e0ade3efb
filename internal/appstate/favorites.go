package appstate

import mapset "github.com/deckarep/golang-set/v2"

// Favorites is the set of favorited job ids. It lives in memory only and is
// lost on restart, while preferences and the session are persisted. The
// asymmetry matches the shipped client and is kept on purpose.
type Favorites struct {
	ids mapset.Set[int]
}

func NewFavorites() *Favorites {
	return &Favorites{ids: mapset.NewSet[int]()}
}

// Toggle adds jobID to the set if absent, removes it if present.
func (f *Favorites) Toggle(jobID int) {
	if !f.ids.Add(jobID) {
		f.ids.Remove(jobID)
	}
}

// IsFavorite reports membership.
func (f *Favorites) IsFavorite(jobID int) bool {
	return f.ids.Contains(jobID)
}

// Count returns the number of favorited jobs.
func (f *Favorites) Count() int {
	return f.ids.Cardinality()
}
