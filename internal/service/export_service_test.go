package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averra-labs/trainhub/internal/models"
	"github.com/averra-labs/trainhub/internal/repository"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
	"github.com/averra-labs/trainhub/pkg/jobs"
	"github.com/averra-labs/trainhub/pkg/storage"
)

type exportFixture struct {
	exporter    *ExportService
	store       *storage.LocalStorage
	students    *repository.StudentRepository
	courses     *repository.CourseRepository
	enrollments *repository.EnrollmentRepository
	alloc       *idgen.Allocator
}

func newExportFixture(t *testing.T) *exportFixture {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	alloc, err := idgen.New(idgen.Config{})
	require.NoError(t, err)
	f := &exportFixture{
		store:       store,
		students:    repository.NewStudentRepository(),
		courses:     repository.NewCourseRepository(),
		enrollments: repository.NewEnrollmentRepository(),
		alloc:       alloc,
	}
	f.exporter = NewExportService(f.students, f.courses, f.enrollments, alloc, store, ExportConfig{ResultTTL: time.Hour}, nil, nil, nil)
	return f
}

func (f *exportFixture) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, f.students.Add(models.Student{
		Person: models.Person{ID: 1000, FirstName: "Ana", LastName: "Petrova", Email: "ana@example.com"},
		Batch:  "2026A",
		Active: true,
	}))
	require.NoError(t, f.courses.Add(models.Course{ID: 2000, Name: "Go Fundamentals", Description: "intro", DurationWeeks: 8, Active: true}))
	require.NoError(t, f.enrollments.Add(models.Enrollment{
		ID: 3000, StudentID: 1000, CourseID: 2000,
		EnrolledOn: models.DateOnly(time.Now()),
		Status:     models.EnrollmentStatusActive,
	}))
}

func TestExportServiceGenerateStudentsCSV(t *testing.T) {
	f := newExportFixture(t)
	f.seed(t)

	result, err := f.exporter.Generate(&models.ExportJob{Dataset: models.ExportDatasetStudents, Format: models.ExportFormatCSV})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rows)

	payload, err := os.ReadFile(f.store.Path(result.RelativePath))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "First Name")
	assert.Contains(t, string(payload), "ana@example.com")
}

func TestExportServiceGenerateCapacityPDF(t *testing.T) {
	f := newExportFixture(t)

	result, err := f.exporter.Generate(&models.ExportJob{Dataset: models.ExportDatasetCapacity, Format: models.ExportFormatPDF})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Rows)

	payload, err := os.ReadFile(f.store.Path(result.RelativePath))
	require.NoError(t, err)
	assert.True(t, len(payload) > 4 && string(payload[:4]) == "%PDF")
}

func TestExportServiceGenerateRoster(t *testing.T) {
	f := newExportFixture(t)
	f.seed(t)

	result, err := f.exporter.Generate(&models.ExportJob{Dataset: models.ExportDatasetRoster, Format: models.ExportFormatCSV, CourseID: 2000})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rows)

	payload, err := os.ReadFile(f.store.Path(result.RelativePath))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "Ana Petrova")
}

func TestExportServiceGenerateRosterMissingCourse(t *testing.T) {
	f := newExportFixture(t)

	_, err := f.exporter.Generate(&models.ExportJob{Dataset: models.ExportDatasetRoster, Format: models.ExportFormatCSV, CourseID: 2999})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

type captureDispatcher struct {
	jobs []jobs.Job
	err  error
}

func (d *captureDispatcher) Enqueue(job jobs.Job) error {
	if d.err != nil {
		return d.err
	}
	d.jobs = append(d.jobs, job)
	return nil
}

type failingGenerator struct{}

func (failingGenerator) Generate(job *models.ExportJob) (*ExportResult, error) {
	return nil, fmt.Errorf("render blew up")
}

func TestExportJobServiceCreateAndProcess(t *testing.T) {
	f := newExportFixture(t)
	f.seed(t)
	registry := repository.NewExportJobRepository()
	dispatcher := &captureDispatcher{}
	svc := NewExportJobService(registry, f.courses, dispatcher, f.exporter, nil, nil, ExportJobConfig{})
	worker := NewExportWorker(registry, f.exporter, nil, 3, nil)

	job, err := svc.CreateJob(CreateExportRequest{Dataset: "students", Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusQueued, job.Status)
	require.Len(t, dispatcher.jobs, 1)

	require.NoError(t, worker.Handle(context.Background(), dispatcher.jobs[0]))

	stored, err := svc.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusDone, stored.Status)
	assert.NotEmpty(t, stored.File)

	download, err := svc.ResolveDownload(job.ID)
	require.NoError(t, err)
	require.NotNil(t, download.File)
	assert.Equal(t, models.ExportFormatCSV, download.Format)
	require.NoError(t, download.File.Close())
}

func TestExportJobServiceRejectsUnknownDataset(t *testing.T) {
	f := newExportFixture(t)
	registry := repository.NewExportJobRepository()
	svc := NewExportJobService(registry, f.courses, &captureDispatcher{}, f.exporter, nil, nil, ExportJobConfig{})

	_, err := svc.CreateJob(CreateExportRequest{Dataset: "invoices", Format: "csv"})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))

	_, err = svc.CreateJob(CreateExportRequest{Dataset: "students", Format: "xlsx"})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestExportJobServiceRosterRequiresExistingCourse(t *testing.T) {
	f := newExportFixture(t)
	registry := repository.NewExportJobRepository()
	svc := NewExportJobService(registry, f.courses, &captureDispatcher{}, f.exporter, nil, nil, ExportJobConfig{})

	_, err := svc.CreateJob(CreateExportRequest{Dataset: "course-roster", Format: "pdf", CourseID: 2000})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))

	_, err = svc.CreateJob(CreateExportRequest{Dataset: "course-roster", Format: "pdf"})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestExportJobServiceResolveDownloadNotReady(t *testing.T) {
	f := newExportFixture(t)
	registry := repository.NewExportJobRepository()
	svc := NewExportJobService(registry, f.courses, &captureDispatcher{}, f.exporter, nil, nil, ExportJobConfig{})

	job, err := svc.CreateJob(CreateExportRequest{Dataset: "students", Format: "csv"})
	require.NoError(t, err)

	_, err = svc.ResolveDownload(job.ID)
	require.Error(t, err)
	assert.True(t, appErrors.IsInvalidState(err))
}

func TestExportWorkerMarksFailedAfterRetries(t *testing.T) {
	registry := repository.NewExportJobRepository()
	require.NoError(t, registry.Add(models.ExportJob{
		ID:        "job-1",
		Dataset:   models.ExportDatasetStudents,
		Format:    models.ExportFormatCSV,
		Status:    models.ExportStatusQueued,
		CreatedAt: time.Now().UTC(),
	}))
	worker := NewExportWorker(registry, failingGenerator{}, nil, 3, nil)

	err := worker.Handle(context.Background(), jobs.Job{ID: "job-1", Attempt: 1})
	require.Error(t, err)
	stored, err := registry.GetByID("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusQueued, stored.Status)

	err = worker.Handle(context.Background(), jobs.Job{ID: "job-1", Attempt: 3})
	require.Error(t, err)
	stored, err = registry.GetByID("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusFailed, stored.Status)
	assert.Contains(t, stored.ErrorMessage, "render blew up")
}
