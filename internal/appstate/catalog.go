package appstate

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"jobdesk/internal/source"
)

const maxRelatedJobs = 3

// Source is the remote endpoint the catalog loads from.
type Source interface {
	FetchPosts(ctx context.Context) ([]source.Post, error)
}

// Catalog holds the session's normalized job records. The catalog is
// replaced wholesale on every successful load and never mutated in place.
type Catalog struct {
	source Source
	log    zerolog.Logger

	mu      sync.Mutex
	jobs    []JobRecord
	loading bool
}

func NewCatalog(src Source, log zerolog.Logger) *Catalog {
	return &Catalog{source: src, log: log}
}

// Load fetches and normalizes the full record list. On transport failure it
// returns a *FetchError and leaves the previous catalog unchanged. No record
// is dropped for missing fields.
//
// A second Load racing the first resolves last-write-wins; there is no
// ordering token and no cancellation of the in-flight fetch.
func (c *Catalog) Load(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	posts, err := c.source.FetchPosts(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("job fetch failed")
		return &FetchError{Err: err}
	}

	jobs := make([]JobRecord, 0, len(posts))
	for _, p := range posts {
		jobs = append(jobs, jobFromPost(p))
	}

	c.mu.Lock()
	c.jobs = jobs
	c.mu.Unlock()

	c.log.Info().Int("jobs", len(jobs)).Msg("catalog loaded")
	return nil
}

// Loading reports whether a load is in flight, for the busy indicator.
func (c *Catalog) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Catalog) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// Jobs returns the current catalog in load order.
func (c *Catalog) Jobs() []JobRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.jobs
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.jobs)
}

// Latest returns the first n records, the home screen's "Latest Jobs" strip.
func (c *Catalog) Latest(n int) []JobRecord {
	jobs := c.Jobs()
	if len(jobs) > n {
		jobs = jobs[:n]
	}
	return jobs
}

// Related returns up to 3 other records sharing job's category, excluding
// the record itself, in catalog order.
func (c *Catalog) Related(job JobRecord) []JobRecord {
	var related []JobRecord
	for _, j := range c.Jobs() {
		if j.ID == job.ID || j.Category != job.Category {
			continue
		}
		related = append(related, j)
		if len(related) == maxRelatedJobs {
			break
		}
	}
	return related
}
