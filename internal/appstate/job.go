// Package appstate is the application-state core of the jobdesk mobile
// client: session/auth, the in-memory job catalog, filtering, favorites,
// preferences and the feedback log. Screens read projections of this state
// and mutate it only through the operations defined here.
package appstate

import (
	"fmt"

	"jobdesk/internal/source"
)

// Fallback values used whenever a source field is absent. Normalization is
// total: every JobRecord field ends up non-empty.
const (
	FallbackTitle       = "Untitled"
	FallbackDescription = "No description available."
	FallbackCompany     = "Unknown Company"
	FallbackLocation    = "Unknown Location"
	FallbackCategory    = "General"
	FallbackSalary      = "Salary not specified"
	FallbackImage       = "https://via.placeholder.com/300x150"
)

// JobRecord is a normalized job posting. Records are created in bulk when
// the catalog is (re)loaded and are immutable for the session.
type JobRecord struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Salary      string `json:"salary"`
	Image       string `json:"image"`
}

// Normalize fills every blank field of r with its documented fallback.
func Normalize(r JobRecord) JobRecord {
	if r.Title == "" {
		r.Title = FallbackTitle
	}
	if r.Description == "" {
		r.Description = FallbackDescription
	}
	if r.Company == "" {
		r.Company = FallbackCompany
	}
	if r.Location == "" {
		r.Location = FallbackLocation
	}
	if r.Category == "" {
		r.Category = FallbackCategory
	}
	if r.Salary == "" {
		r.Salary = FallbackSalary
	}
	if r.Image == "" {
		r.Image = FallbackImage
	}
	return r
}

// jobFromPost maps a raw post into a JobRecord. The post shape is treated as
// opaque beyond {id, title, body}; the remaining fields are demo-derived the
// same way the backend derives them.
func jobFromPost(p source.Post) JobRecord {
	return Normalize(JobRecord{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Body,
		Company:     fmt.Sprintf("Company %d", p.ID),
		Location:    "Remote",
		Category:    source.CategoryFor(p.ID),
		Salary:      "$50,000 - $70,000",
		Image:       fmt.Sprintf("https://picsum.photos/300/150?random=%d", p.ID),
	})
}
