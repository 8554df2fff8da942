package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type enrollmentRepository interface {
	Add(models.Enrollment) error
	GetByID(int64) (models.Enrollment, error)
	FindAll() []models.Enrollment
	FindByStudentID(int64) []models.Enrollment
	FindByCourseID(int64) []models.Enrollment
	FindByStatus(models.EnrollmentStatus) []models.Enrollment
	UpdateStatus(int64, models.EnrollmentStatus) error
	IsStudentEnrolled(int64, int64) bool
	CountByStatus(models.EnrollmentStatus) int
	Count() int
}

type studentReader interface {
	GetByID(int64) (models.Student, error)
	Exists(int64) bool
}

type courseReader interface {
	GetByID(int64) (models.Course, error)
	Exists(int64) bool
}

// EnrollRequest describes enrollment creation payload.
type EnrollRequest struct {
	StudentID int64 `json:"student_id" validate:"required,gt=0"`
	CourseID  int64 `json:"course_id" validate:"required,gt=0"`
}

// EnrollmentService orchestrates enrollment workflows.
type EnrollmentService struct {
	repo      enrollmentRepository
	students  studentReader
	courses   courseReader
	alloc     idAllocator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, students studentReader, courses courseReader, alloc idAllocator, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, students: students, courses: courses, alloc: alloc, validator: validate, logger: logger}
}

// Enroll registers a student into a course. The student and course must both
// exist and be active, and the pair must not already hold an enrollment in
// any status. The checks run in that order so callers see the most specific
// failure first.
func (s *EnrollmentService) Enroll(req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	student, err := s.students.GetByID(req.StudentID)
	if err != nil {
		return nil, err
	}
	if !student.Active {
		return nil, appErrors.InvalidStatef("student %d is not active", req.StudentID)
	}
	course, err := s.courses.GetByID(req.CourseID)
	if err != nil {
		return nil, err
	}
	if !course.Active {
		return nil, appErrors.InvalidStatef("course %d is not active", req.CourseID)
	}
	if s.repo.IsStudentEnrolled(req.StudentID, req.CourseID) {
		return nil, appErrors.InvalidStatef("student %d already has an enrollment for course %d", req.StudentID, req.CourseID)
	}
	id, err := s.alloc.Next(idgen.KindEnrollment)
	if err != nil {
		return nil, err
	}
	enrollment := models.Enrollment{
		ID:         id,
		StudentID:  req.StudentID,
		CourseID:   req.CourseID,
		EnrolledOn: models.DateOnly(time.Now()),
		Status:     models.EnrollmentStatusActive,
	}
	if err := s.repo.Add(enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Get returns the enrollment with the given id.
func (s *EnrollmentService) Get(id int64) (models.Enrollment, error) {
	return s.repo.GetByID(id)
}

// List returns every enrollment in creation order.
func (s *EnrollmentService) List() []models.Enrollment {
	return s.repo.FindAll()
}

// ListByStudent returns the student's enrollments. The student must exist.
func (s *EnrollmentService) ListByStudent(studentID int64) ([]models.Enrollment, error) {
	if !s.students.Exists(studentID) {
		return nil, appErrors.NotFound("student", studentID)
	}
	return s.repo.FindByStudentID(studentID), nil
}

// ListByCourse returns the course's enrollments. The course must exist.
func (s *EnrollmentService) ListByCourse(courseID int64) ([]models.Enrollment, error) {
	if !s.courses.Exists(courseID) {
		return nil, appErrors.NotFound("course", courseID)
	}
	return s.repo.FindByCourseID(courseID), nil
}

// ListByStatus returns enrollments currently in the given status.
func (s *EnrollmentService) ListByStatus(status models.EnrollmentStatus) ([]models.Enrollment, error) {
	if !status.Valid() {
		return nil, appErrors.Validationf("unknown enrollment status %q", status)
	}
	return s.repo.FindByStatus(status), nil
}

// CountByStatus returns how many enrollments hold the given status.
func (s *EnrollmentService) CountByStatus(status models.EnrollmentStatus) (int, error) {
	if !status.Valid() {
		return 0, appErrors.Validationf("unknown enrollment status %q", status)
	}
	return s.repo.CountByStatus(status), nil
}

// IsEnrolled reports whether the pair holds an enrollment in any status.
func (s *EnrollmentService) IsEnrolled(studentID, courseID int64) bool {
	return s.repo.IsStudentEnrolled(studentID, courseID)
}

// SetStatus moves an enrollment to the given status. Any transition is
// permitted, including back to ACTIVE.
func (s *EnrollmentService) SetStatus(id int64, status models.EnrollmentStatus) error {
	if !status.Valid() {
		return appErrors.Validationf("unknown enrollment status %q", status)
	}
	return s.repo.UpdateStatus(id, status)
}

// Complete marks an enrollment COMPLETED.
func (s *EnrollmentService) Complete(id int64) error {
	return s.SetStatus(id, models.EnrollmentStatusCompleted)
}

// Cancel marks an enrollment CANCELLED. The pair stays blocked for future
// enrollments.
func (s *EnrollmentService) Cancel(id int64) error {
	return s.SetStatus(id, models.EnrollmentStatusCancelled)
}

// Count returns the total number of enrollments.
func (s *EnrollmentService) Count() int {
	return s.repo.Count()
}
