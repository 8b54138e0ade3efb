package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/models"
)

// JobStorer is what the handlers need from the job service.
type JobStorer interface {
	FetchAndStore(ctx context.Context) ([]models.Job, error)
	FetchFromJSONFakery(ctx context.Context) ([]models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
}

type JobHandler struct {
	jobs JobStorer
}

// NewJobHandler creates the handler with its dependencies.
func NewJobHandler(jobs JobStorer) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// FetchAndStore is the GET /api/jobs/fetch-and-store endpoint.
func (h *JobHandler) FetchAndStore(c *gin.Context) {
	jobs, err := h.jobs.FetchAndStore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch and store jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Jobs fetched and stored successfully",
		"jobs":    jobs,
	})
}

// FetchFromJSONFakery is the GET /api/jobs/fetch-from-jsonfakery endpoint.
func (h *JobHandler) FetchFromJSONFakery(c *gin.Context) {
	jobs, err := h.jobs.FetchFromJSONFakery(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch and store jobs from jsonfakery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Jobs fetched from jsonfakery and stored successfully",
		"jobs":    jobs,
	})
}

// ListJobs is the GET /api/jobs endpoint, returning the full collection.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "jobdesk-api"})
}
