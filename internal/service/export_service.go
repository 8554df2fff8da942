package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/export"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type studentExportSource interface {
	FindAll() []models.Student
	GetByID(int64) (models.Student, error)
}

type courseExportSource interface {
	FindAll() []models.Course
	GetByID(int64) (models.Course, error)
}

type enrollmentExportSource interface {
	FindAll() []models.Enrollment
	FindByCourseID(int64) []models.Enrollment
}

type capacitySource interface {
	Snapshot() []idgen.KindUsage
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Format       models.ExportFormat
	Rows         int
}

// ExportService builds datasets from the in-memory stores and persists
// rendered files.
type ExportService struct {
	students    studentExportSource
	courses     courseExportSource
	enrollments enrollmentExportSource
	capacity    capacitySource
	storage     fileStorage
	csv         csvRenderer
	pdf         pdfRenderer
	logger      *zap.Logger
	cfg         ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(students studentExportSource, courses courseExportSource, enrollments enrollmentExportSource, capacity capacitySource, storage fileStorage, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		capacity:    capacity,
		storage:     storage,
		csv:         csv,
		pdf:         pdf,
		logger:      logger,
		cfg:         cfg,
	}
}

// Generate builds the job's dataset and stores the rendered export.
func (s *ExportService) Generate(job *models.ExportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	dataset, title, err := s.buildDataset(job)
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch job.Format {
	case models.ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case models.ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
	default:
		err = fmt.Errorf("unsupported format %s", job.Format)
	}
	if err != nil {
		return nil, err
	}

	filename := s.buildFilename(job)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		RelativePath: relPath,
		Format:       job.Format,
		Rows:         len(dataset.Rows),
	}, nil
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when
// ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) buildFilename(job *models.ExportJob) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	dataset := strings.ReplaceAll(string(job.Dataset), "-", "_")
	if job.Dataset == models.ExportDatasetRoster {
		dataset = fmt.Sprintf("%s_%d", dataset, job.CourseID)
	}
	return fmt.Sprintf("%s_%s.%s", dataset, timestamp, job.Format)
}

func (s *ExportService) buildDataset(job *models.ExportJob) (export.Dataset, string, error) {
	switch job.Dataset {
	case models.ExportDatasetStudents:
		return s.buildStudentDataset()
	case models.ExportDatasetCourses:
		return s.buildCourseDataset()
	case models.ExportDatasetEnrollments:
		return s.buildEnrollmentDataset()
	case models.ExportDatasetRoster:
		return s.buildRosterDataset(job.CourseID)
	case models.ExportDatasetCapacity:
		return s.buildCapacityDataset()
	default:
		return export.Dataset{}, "", fmt.Errorf("unsupported dataset %s", job.Dataset)
	}
}

func (s *ExportService) buildStudentDataset() (export.Dataset, string, error) {
	dataset := export.Dataset{
		Headers: []string{"ID", "First Name", "Last Name", "Email", "Batch", "Active"},
	}
	for _, st := range s.students.FindAll() {
		dataset.AddRow(
			strconv.FormatInt(st.ID, 10),
			st.FirstName,
			st.LastName,
			st.Email,
			st.Batch,
			strconv.FormatBool(st.Active),
		)
	}
	return dataset, "Student Register", nil
}

func (s *ExportService) buildCourseDataset() (export.Dataset, string, error) {
	dataset := export.Dataset{
		Headers: []string{"ID", "Name", "Description", "Duration (weeks)", "Active"},
	}
	for _, c := range s.courses.FindAll() {
		dataset.AddRow(
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Description,
			strconv.Itoa(c.DurationWeeks),
			strconv.FormatBool(c.Active),
		)
	}
	return dataset, "Course Catalog", nil
}

func (s *ExportService) buildEnrollmentDataset() (export.Dataset, string, error) {
	dataset := export.Dataset{
		Headers: []string{"ID", "Student ID", "Course ID", "Enrolled On", "Status"},
	}
	for _, e := range s.enrollments.FindAll() {
		dataset.AddRow(
			strconv.FormatInt(e.ID, 10),
			strconv.FormatInt(e.StudentID, 10),
			strconv.FormatInt(e.CourseID, 10),
			e.EnrolledOn.Format("2006-01-02"),
			string(e.Status),
		)
	}
	return dataset, "Enrollment Ledger", nil
}

func (s *ExportService) buildRosterDataset(courseID int64) (export.Dataset, string, error) {
	course, err := s.courses.GetByID(courseID)
	if err != nil {
		return export.Dataset{}, "", err
	}
	dataset := export.Dataset{
		Headers: []string{"Enrollment ID", "Student ID", "Student", "Email", "Batch", "Enrolled On", "Status"},
	}
	for _, e := range s.enrollments.FindByCourseID(courseID) {
		var name, email, batch string
		if student, err := s.students.GetByID(e.StudentID); err == nil {
			name = student.DisplayName()
			email = student.Email
			batch = student.Batch
		}
		dataset.AddRow(
			strconv.FormatInt(e.ID, 10),
			strconv.FormatInt(e.StudentID, 10),
			name,
			email,
			batch,
			e.EnrolledOn.Format("2006-01-02"),
			string(e.Status),
		)
	}
	title := fmt.Sprintf("Roster %s", course.Name)
	return dataset, title, nil
}

func (s *ExportService) buildCapacityDataset() (export.Dataset, string, error) {
	dataset := export.Dataset{
		Headers: []string{"Kind", "Range Start", "Range End", "Issued", "Remaining", "Usage (%)"},
	}
	for _, u := range s.capacity.Snapshot() {
		dataset.AddRow(
			string(u.Kind),
			strconv.FormatInt(u.Range.Start, 10),
			strconv.FormatInt(u.Range.End, 10),
			strconv.FormatInt(u.Issued, 10),
			strconv.FormatInt(u.Remaining, 10),
			fmt.Sprintf("%.2f", u.UsagePercent*100),
		)
	}
	return dataset, "Id Capacity Report", nil
}

// ValidateJobRequest rejects unsupported dataset and format combinations
// before a job is accepted.
func ValidateJobRequest(dataset models.ExportDataset, format models.ExportFormat, courseID int64) error {
	if !dataset.Valid() {
		return appErrors.Validationf("unsupported dataset %q", dataset)
	}
	if !format.Valid() {
		return appErrors.Validationf("unsupported format %q", format)
	}
	if dataset == models.ExportDatasetRoster && courseID <= 0 {
		return appErrors.Validation("course_id is required for course-roster exports")
	}
	return nil
}
