package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobdesk/internal/cache"
	"jobdesk/internal/models"
	"jobdesk/internal/source"
)

// PostSource is the slice of the source client the job service needs.
type PostSource interface {
	FetchPosts(ctx context.Context) ([]source.Post, error)
	FetchJobPosts(ctx context.Context) ([]source.JobPost, error)
}

type JobService struct {
	DB     *gorm.DB
	Source PostSource
	Cache  *cache.JobCache
	Log    zerolog.Logger
}

func NewJobService(db *gorm.DB, src PostSource, jc *cache.JobCache, log zerolog.Logger) *JobService {
	return &JobService{DB: db, Source: src, Cache: jc, Log: log}
}

// FetchAndStore pulls the post list from the primary source, maps each post
// to a Job and upserts it by id. Each record is upserted independently: a
// partial failure leaves earlier records updated with no rollback.
func (s *JobService) FetchAndStore(ctx context.Context) ([]models.Job, error) {
	posts, err := s.Source.FetchPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	jobs := make([]models.Job, 0, len(posts))
	for _, p := range posts {
		jobs = append(jobs, MapPost(p))
	}

	if err := s.upsertJobs(ctx, jobs); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx)
	s.Log.Info().Int("jobs", len(jobs)).Msg("jobs fetched and stored")
	return jobs, nil
}

// FetchFromJSONFakery is the alternate-source variant of the same upsert
// flow, with looser field defaults because the endpoint's records are
// sparsely populated.
func (s *JobService) FetchFromJSONFakery(ctx context.Context) ([]models.Job, error) {
	posts, err := s.Source.FetchJobPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch job posts: %w", err)
	}

	jobs := make([]models.Job, 0, len(posts))
	for _, p := range posts {
		jobs = append(jobs, MapJobPost(p))
	}

	if err := s.upsertJobs(ctx, jobs); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx)
	s.Log.Info().Int("jobs", len(jobs)).Msg("jobs fetched from jsonfakery and stored")
	return jobs, nil
}

// ListJobs returns the full stored collection, cache-aside through Redis.
func (s *JobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	if jobs, hit := s.Cache.Get(ctx); hit {
		return jobs, nil
	}

	var jobs []models.Job
	if err := s.DB.WithContext(ctx).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	s.Cache.Set(ctx, jobs)
	return jobs, nil
}

func (s *JobService) upsertJobs(ctx context.Context, jobs []models.Job) error {
	for _, job := range jobs {
		err := s.DB.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(&job).Error
		if err != nil {
			return fmt.Errorf("upsert job %d: %w", job.ID, err)
		}
	}
	return nil
}

// MapPost maps a JSONPlaceholder post with the strict demo defaults.
func MapPost(p source.Post) models.Job {
	return models.Job{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Body,
		Company:     fmt.Sprintf("Company %d", p.ID),
		Location:    "Remote",
		Category:    source.CategoryFor(p.ID),
		Salary:      "$50,000 - $70,000",
		Image:       fmt.Sprintf("https://picsum.photos/300/150?random=%d", p.ID),
	}
}

// MapJobPost maps a jsonfakery posting, falling back field by field since
// the source leaves most of them out. The id keeps only its leading digits,
// so UUID ids degrade to small numbers that can collide across records.
func MapJobPost(p source.JobPost) models.Job {
	id := p.ID.Int()

	job := models.Job{
		ID:          id,
		Title:       p.JobTitle,
		Description: p.Description,
		Company:     p.Company,
		Location:    p.Location,
		Category:    p.Category,
		Salary:      p.Salary,
		Image:       p.Image,
	}
	if job.Title == "" {
		job.Title = "Untitled"
	}
	if job.Description == "" {
		job.Description = "No description"
	}
	if job.Company == "" {
		job.Company = "Unknown Company"
	}
	if job.Location == "" {
		job.Location = "Remote"
	}
	if job.Category == "" {
		job.Category = "General"
	}
	if job.Salary == "" {
		job.Salary = "$50,000 - $70,000"
	}
	if job.Image == "" {
		job.Image = fmt.Sprintf("https://picsum.photos/300/150?random=%d", job.ID)
	}
	return job
}
