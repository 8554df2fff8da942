package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/jobs"
)

type exportJobStore interface {
	Add(models.ExportJob) error
	GetByID(string) (models.ExportJob, error)
	List() []models.ExportJob
	MarkRunning(id string) error
	MarkDone(id, file string) error
	MarkFailed(id, message string) error
	Requeue(id, message string) error
	DeleteFinishedBefore(cutoff time.Time) []string
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

type exportGenerator interface {
	Generate(job *models.ExportJob) (*ExportResult, error)
}

type exportRecorder interface {
	RecordExport(dataset, format string)
}

// CreateExportRequest describes an export job submission. CourseID is only
// consulted for the course-roster dataset.
type CreateExportRequest struct {
	Dataset  string `json:"dataset" validate:"required"`
	Format   string `json:"format" validate:"required"`
	CourseID int64  `json:"course_id"`
}

// ExportJobConfig governs retries and cleanup.
type ExportJobConfig struct {
	ResultTTL       time.Duration
	CleanupInterval time.Duration
	MaxRetries      int
}

// ExportDownload aggregates resolved download data.
type ExportDownload struct {
	File     *os.File
	Filename string
	Format   models.ExportFormat
}

// ExportJobService orchestrates export job lifecycle management.
type ExportJobService struct {
	repo      exportJobStore
	courses   courseReader
	queue     jobDispatcher
	exporter  *ExportService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ExportJobConfig
}

// NewExportJobService constructs the export job service.
func NewExportJobService(repo exportJobStore, courses courseReader, queue jobDispatcher, exporter *ExportService, validate *validator.Validate, logger *zap.Logger, cfg ExportJobConfig) *ExportJobService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &ExportJobService{
		repo:      repo,
		courses:   courses,
		queue:     queue,
		exporter:  exporter,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateJob validates the request, registers the job, and enqueues it.
func (s *ExportJobService) CreateJob(req CreateExportRequest) (*models.ExportJob, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid export payload")
	}
	dataset := models.ExportDataset(req.Dataset)
	format := models.ExportFormat(req.Format)
	if err := ValidateJobRequest(dataset, format, req.CourseID); err != nil {
		return nil, err
	}
	if dataset == models.ExportDatasetRoster && !s.courses.Exists(req.CourseID) {
		return nil, appErrors.NotFound("course", req.CourseID)
	}
	job := models.ExportJob{
		ID:        uuid.NewString(),
		Dataset:   dataset,
		Format:    format,
		Status:    models.ExportStatusQueued,
		CreatedAt: time.Now().UTC(),
	}
	if dataset == models.ExportDatasetRoster {
		job.CourseID = req.CourseID
	}
	if err := s.repo.Add(job); err != nil {
		return nil, err
	}
	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: string(job.Dataset)}); err != nil {
		if markErr := s.repo.MarkFailed(job.ID, "failed to enqueue job"); markErr != nil {
			s.logger.Sugar().Warnw("failed to mark job failed", "job_id", job.ID, "error", markErr)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}
	return &job, nil
}

// GetJob returns job metadata.
func (s *ExportJobService) GetJob(id string) (models.ExportJob, error) {
	return s.repo.GetByID(id)
}

// ListJobs returns all tracked jobs, newest first.
func (s *ExportJobService) ListJobs() []models.ExportJob {
	return s.repo.List()
}

// ResolveDownload opens the rendered file for a finished job.
func (s *ExportJobService) ResolveDownload(id string) (*ExportDownload, error) {
	job, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job.Status != models.ExportStatusDone {
		return nil, appErrors.InvalidStatef("export job %s is not finished", id)
	}
	file, err := s.exporter.Open(job.File)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to open export file")
	}
	return &ExportDownload{
		File:     file,
		Filename: filepath.Base(job.File),
		Format:   job.Format,
	}, nil
}

// StartCleanup boots a goroutine that purges expired jobs and their files
// periodically.
func (s *ExportJobService) StartCleanup(ctx context.Context) {
	if s.cfg.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.cleanupExpired()
			}
		}
	}()
}

func (s *ExportJobService) cleanupExpired() {
	cutoff := time.Now().UTC().Add(-s.cfg.ResultTTL)
	for _, file := range s.repo.DeleteFinishedBefore(cutoff) {
		if err := s.exporter.Delete(file); err != nil {
			s.logger.Sugar().Warnw("cleanup delete failed", "file", file, "error", err)
		}
	}
	if _, err := s.exporter.Cleanup(s.cfg.ResultTTL); err != nil {
		s.logger.Sugar().Warnw("filesystem cleanup failed", "error", err)
	}
}

// ExportWorker bridges queue jobs to the ExportService.
type ExportWorker struct {
	repo       exportJobStore
	exporter   exportGenerator
	recorder   exportRecorder
	logger     *zap.Logger
	maxRetries int
}

// NewExportWorker constructs a worker. The recorder may be nil.
func NewExportWorker(repo exportJobStore, exporter exportGenerator, recorder exportRecorder, maxRetries int, logger *zap.Logger) *ExportWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &ExportWorker{
		repo:       repo,
		exporter:   exporter,
		recorder:   recorder,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// Handle processes a queue job. Returning an error hands the job back to the
// queue's retry loop; the terminal attempt marks the job FAILED.
func (w *ExportWorker) Handle(ctx context.Context, job jobs.Job) error {
	record, err := w.repo.GetByID(job.ID)
	if err != nil {
		return err
	}
	if err := w.repo.MarkRunning(job.ID); err != nil {
		return err
	}
	result, err := w.exporter.Generate(&record)
	if err != nil {
		msg := err.Error()
		if job.Attempt >= w.maxRetries {
			if markErr := w.repo.MarkFailed(job.ID, msg); markErr != nil {
				w.logger.Sugar().Warnw("failed to mark job failed", "job_id", job.ID, "error", markErr)
			}
		} else {
			if markErr := w.repo.Requeue(job.ID, msg); markErr != nil {
				w.logger.Sugar().Warnw("failed to requeue job", "job_id", job.ID, "error", markErr)
			}
		}
		return err
	}
	if err := w.repo.MarkDone(job.ID, result.RelativePath); err != nil {
		w.logger.Sugar().Warnw("failed to mark job done", "job_id", job.ID, "error", err)
		return err
	}
	if w.recorder != nil {
		w.recorder.RecordExport(string(record.Dataset), string(record.Format))
	}
	w.logger.Info("export rendered",
		zap.String("job_id", job.ID),
		zap.String("dataset", string(record.Dataset)),
		zap.String("file", result.RelativePath),
		zap.Int("rows", result.Rows))
	return nil
}
