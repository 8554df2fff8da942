package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type studentImportStore interface {
	Add(models.Student) error
	Exists(int64) bool
}

type courseImportStore interface {
	Add(models.Course) error
	Exists(int64) bool
}

type externalRegistrar interface {
	Validate(kind idgen.Kind, id int64) error
	RegisterExternal(kind idgen.Kind, id int64) error
}

// ImportStudentRecord is one externally sourced student row. The id comes
// with the record instead of being issued here. A nil Active means the
// source did not say; such rows arrive active, like freshly created ones.
type ImportStudentRecord struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Batch     string `json:"batch" validate:"required"`
	Active    *bool  `json:"active"`
}

// ImportCourseRecord is one externally sourced course row.
type ImportCourseRecord struct {
	ID            int64  `json:"id" validate:"required,gt=0"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description" validate:"required"`
	DurationWeeks int    `json:"duration_weeks" validate:"required,gt=0"`
	Active        *bool  `json:"active"`
}

func activeOrDefault(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

// ImportFailure records why one row was rejected.
type ImportFailure struct {
	Index  int    `json:"index"`
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// ImportSummary reports the outcome of one import batch. Rows whose id is
// already present count as skipped so re-running a batch stays harmless;
// everything else that fails lands in Failures.
type ImportSummary struct {
	BatchID  string          `json:"batch_id"`
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
	Failures []ImportFailure `json:"failures,omitempty"`
}

// ImportService loads externally sourced records with pre-assigned ids,
// keeping the allocator's counters ahead of them.
type ImportService struct {
	students  studentImportStore
	courses   courseImportStore
	registrar externalRegistrar
	validator *validator.Validate
	logger    *zap.Logger
}

// NewImportService constructs the import service.
func NewImportService(students studentImportStore, courses courseImportStore, registrar externalRegistrar, validate *validator.Validate, logger *zap.Logger) *ImportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{students: students, courses: courses, registrar: registrar, validator: validate, logger: logger}
}

// ImportStudents loads a batch of student records. Each row is validated,
// range-checked, registered with the allocator, then stored. A cancelled
// context stops the batch and returns the partial summary.
func (s *ImportService) ImportStudents(ctx context.Context, records []ImportStudentRecord) (*ImportSummary, error) {
	summary := &ImportSummary{BatchID: uuid.NewString()}
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			s.logSummary("students", summary)
			return summary, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "import cancelled")
		}
		if err := s.validator.Struct(rec); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		if err := models.ValidateEmail(rec.Email); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		if err := s.registrar.Validate(idgen.KindStudent, rec.ID); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		if s.students.Exists(rec.ID) {
			summary.Skipped++
			continue
		}
		if err := s.registrar.RegisterExternal(idgen.KindStudent, rec.ID); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		student := models.Student{
			Person: models.Person{
				ID:        rec.ID,
				FirstName: rec.FirstName,
				LastName:  rec.LastName,
				Email:     rec.Email,
			},
			Batch:  rec.Batch,
			Active: activeOrDefault(rec.Active),
		}
		if err := s.students.Add(student); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		summary.Imported++
	}
	s.logSummary("students", summary)
	return summary, nil
}

// ImportCourses loads a batch of course records following the same pipeline
// as ImportStudents.
func (s *ImportService) ImportCourses(ctx context.Context, records []ImportCourseRecord) (*ImportSummary, error) {
	summary := &ImportSummary{BatchID: uuid.NewString()}
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			s.logSummary("courses", summary)
			return summary, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "import cancelled")
		}
		if err := s.validator.Struct(rec); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		if err := s.registrar.Validate(idgen.KindCourse, rec.ID); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		if s.courses.Exists(rec.ID) {
			summary.Skipped++
			continue
		}
		if err := s.registrar.RegisterExternal(idgen.KindCourse, rec.ID); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		course := models.Course{
			ID:            rec.ID,
			Name:          rec.Name,
			Description:   rec.Description,
			DurationWeeks: rec.DurationWeeks,
			Active:        activeOrDefault(rec.Active),
		}
		if err := s.courses.Add(course); err != nil {
			summary.fail(i, rec.ID, err)
			continue
		}
		summary.Imported++
	}
	s.logSummary("courses", summary)
	return summary, nil
}

func (s *ImportService) logSummary(dataset string, summary *ImportSummary) {
	s.logger.Info("import batch finished",
		zap.String("dataset", dataset),
		zap.String("batch_id", summary.BatchID),
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", len(summary.Failures)))
}

func (m *ImportSummary) fail(index int, id int64, err error) {
	m.Failures = append(m.Failures, ImportFailure{Index: index, ID: id, Reason: err.Error()})
}
