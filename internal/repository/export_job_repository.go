package repository

import (
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

// ExportJobRepository tracks export jobs in memory, keyed by job id. Jobs use
// opaque string ids minted by the service layer, not allocator ranges.
type ExportJobRepository struct {
	mu   sync.RWMutex
	jobs map[string]models.ExportJob
}

// NewExportJobRepository constructs an empty registry.
func NewExportJobRepository() *ExportJobRepository {
	return &ExportJobRepository{jobs: make(map[string]models.ExportJob)}
}

// Add inserts a new job.
func (r *ExportJobRepository) Add(job models.ExportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; ok {
		return appErrors.New(appErrors.KindDuplicateID, http.StatusConflict, fmt.Sprintf("export job %s already exists", job.ID))
	}
	r.jobs[job.ID] = job
	return nil
}

// GetByID returns the job with the given id.
func (r *ExportJobRepository) GetByID(id string) (models.ExportJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return models.ExportJob{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("export job %s not found", id))
	}
	return job, nil
}

// List returns jobs newest first.
func (r *ExportJobRepository) List() []models.ExportJob {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ExportJob, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *ExportJobRepository) mutate(id string, fn func(*models.ExportJob)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("export job %s not found", id))
	}
	fn(&job)
	r.jobs[id] = job
	return nil
}

// MarkRunning moves a job to RUNNING.
func (r *ExportJobRepository) MarkRunning(id string) error {
	return r.mutate(id, func(job *models.ExportJob) {
		job.Status = models.ExportStatusRunning
		job.ErrorMessage = ""
	})
}

// MarkDone records the rendered file and moves the job to DONE.
func (r *ExportJobRepository) MarkDone(id, file string) error {
	return r.mutate(id, func(job *models.ExportJob) {
		now := time.Now().UTC()
		job.Status = models.ExportStatusDone
		job.File = file
		job.ErrorMessage = ""
		job.FinishedAt = &now
	})
}

// MarkFailed moves a job to FAILED with the failure message.
func (r *ExportJobRepository) MarkFailed(id, message string) error {
	return r.mutate(id, func(job *models.ExportJob) {
		now := time.Now().UTC()
		job.Status = models.ExportStatusFailed
		job.ErrorMessage = message
		job.FinishedAt = &now
	})
}

// Requeue returns a failed attempt to QUEUED, keeping the error note for
// inspection.
func (r *ExportJobRepository) Requeue(id, message string) error {
	return r.mutate(id, func(job *models.ExportJob) {
		job.Status = models.ExportStatusQueued
		job.ErrorMessage = message
	})
}

// DeleteFinishedBefore drops DONE and FAILED jobs finished before the cutoff
// and returns their rendered file paths so callers can remove the files too.
func (r *ExportJobRepository) DeleteFinishedBefore(cutoff time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var files []string
	for id, job := range r.jobs {
		if job.FinishedAt == nil || job.FinishedAt.After(cutoff) {
			continue
		}
		if job.Status != models.ExportStatusDone && job.Status != models.ExportStatusFailed {
			continue
		}
		if job.File != "" {
			files = append(files, job.File)
		}
		delete(r.jobs, id)
	}
	return files
}

// Count returns the number of tracked jobs.
func (r *ExportJobRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}
