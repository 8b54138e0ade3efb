// Package source holds the HTTP clients for the third-party JSON APIs the
// job catalog is proxied from.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	DefaultPostsURL    = "https://jsonplaceholder.typicode.com/posts"
	DefaultJobPostsURL = "https://jsonfakery.com/job-posts"

	httpTimeout = 15 * time.Second
)

// Post is a raw JSONPlaceholder post. Any additional fields the endpoint
// returns are ignored.
type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// JobID is the loosely typed id the jsonfakery endpoint serves. It is
// usually a UUID-style string, occasionally a bare number; either shape
// decodes without failing the batch.
type JobID string

func (id *JobID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*id = JobID(s)
	return nil
}

// Int parses the leading decimal digits of the id, so "42" is 42 and a
// UUID such as "9b021c04-..." becomes 9. Ids with no leading digits parse
// to 0; colliding ids land on the same record, last upsert wins.
func (id JobID) Int() int {
	s := string(id)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

// JobPost is a raw jsonfakery job posting. Every field except the id may be
// absent; callers apply their own fallbacks.
type JobPost struct {
	ID          JobID  `json:"id"`
	JobTitle    string `json:"job_title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Salary      string `json:"salary"`
	Image       string `json:"image"`
}

// Client fetches raw post records over HTTP.
type Client struct {
	postsURL    string
	jobPostsURL string
	client      *http.Client
}

// NewClient constructs a Client with a shared HTTP client. Empty URLs fall
// back to the public endpoints.
func NewClient(postsURL, jobPostsURL string) *Client {
	if postsURL == "" {
		postsURL = DefaultPostsURL
	}
	if jobPostsURL == "" {
		jobPostsURL = DefaultJobPostsURL
	}
	return &Client{
		postsURL:    postsURL,
		jobPostsURL: jobPostsURL,
		client:      &http.Client{Timeout: httpTimeout},
	}
}

// FetchPosts retrieves the full post list from the JSONPlaceholder-shaped
// endpoint.
func (c *Client) FetchPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.getJSON(ctx, c.postsURL, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FetchJobPosts retrieves the loosely-shaped job postings from the
// jsonfakery endpoint.
func (c *Client) FetchJobPosts(ctx context.Context) ([]JobPost, error) {
	var posts []JobPost
	if err := c.getJSON(ctx, c.jobPostsURL, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d: %s", url, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return nil
}

// CategoryFor buckets a post id into a demo category. The client and the
// backend historically disagreed on this rule (id%2 vs id%3); id%3 is the
// one kept, since it produces all three categories the listings screen
// filters on.
func CategoryFor(id int) string {
	switch id % 3 {
	case 0:
		return "Tech"
	case 1:
		return "Marketing"
	default:
		return "Sales"
	}
}
