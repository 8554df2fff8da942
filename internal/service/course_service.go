package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type courseRepository interface {
	Add(models.Course) error
	GetByID(int64) (models.Course, error)
	FindAll() []models.Course
	FindAllActive() []models.Course
	FindByNameContaining(string) []models.Course
	FindByDurationRange(int, int) []models.Course
	Update(models.Course) error
	Activate(int64) error
	Deactivate(int64) error
	Exists(int64) bool
	Count() int
	CountActive() int
}

// CreateCourseRequest holds payload for publishing courses.
type CreateCourseRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description" validate:"required"`
	DurationWeeks int    `json:"duration_weeks" validate:"required,gt=0"`
}

// UpdateCourseRequest holds payload for updating courses.
type UpdateCourseRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description" validate:"required"`
	DurationWeeks int    `json:"duration_weeks" validate:"required,gt=0"`
	Active        bool   `json:"active"`
}

// CourseService handles course use-cases.
type CourseService struct {
	repo      courseRepository
	alloc     idAllocator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, alloc idAllocator, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, alloc: alloc, validator: validate, logger: logger}
}

// Create publishes a new active course under a freshly issued id.
func (s *CourseService) Create(req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid course payload")
	}
	id, err := s.alloc.Next(idgen.KindCourse)
	if err != nil {
		return nil, err
	}
	course := models.Course{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		Active:        true,
	}
	if err := s.repo.Add(course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Get returns the course with the given id.
func (s *CourseService) Get(id int64) (models.Course, error) {
	return s.repo.GetByID(id)
}

// List returns every course in publication order.
func (s *CourseService) List() []models.Course {
	return s.repo.FindAll()
}

// ListActive returns active courses only.
func (s *CourseService) ListActive() []models.Course {
	return s.repo.FindAllActive()
}

// SearchByName returns courses whose name contains the pattern.
func (s *CourseService) SearchByName(pattern string) []models.Course {
	return s.repo.FindByNameContaining(pattern)
}

// ListByDurationRange returns courses running between minWeeks and maxWeeks
// inclusive.
func (s *CourseService) ListByDurationRange(minWeeks, maxWeeks int) ([]models.Course, error) {
	if minWeeks < 0 || maxWeeks < minWeeks {
		return nil, appErrors.Validationf("invalid duration range [%d, %d]", minWeeks, maxWeeks)
	}
	return s.repo.FindByDurationRange(minWeeks, maxWeeks), nil
}

// Update rewrites an existing course's fields. The id never changes.
func (s *CourseService) Update(id int64, req UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	course.Name = req.Name
	course.Description = req.Description
	course.DurationWeeks = req.DurationWeeks
	course.Active = req.Active
	if err := s.repo.Update(course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Activate opens the course for enrollment.
func (s *CourseService) Activate(id int64) error {
	return s.repo.Activate(id)
}

// Deactivate closes the course to new enrollments. Existing enrollments are
// left untouched.
func (s *CourseService) Deactivate(id int64) error {
	return s.repo.Deactivate(id)
}

// Exists reports whether a course with the given id is published.
func (s *CourseService) Exists(id int64) bool {
	return s.repo.Exists(id)
}

// Count returns the total number of courses.
func (s *CourseService) Count() int {
	return s.repo.Count()
}

// CountActive returns the number of active courses.
func (s *CourseService) CountActive() int {
	return s.repo.CountActive()
}
