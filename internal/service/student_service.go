package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type studentRepository interface {
	Add(models.Student) error
	GetByID(int64) (models.Student, error)
	FindAll() []models.Student
	FindAllActive() []models.Student
	FindByBatch(string) []models.Student
	FindByEmail(string) []models.Student
	Update(models.Student) error
	Activate(int64) error
	Deactivate(int64) error
	Exists(int64) bool
	Count() int
	CountActive() int
}

type idAllocator interface {
	Next(kind idgen.Kind) (int64, error)
}

// CreateStudentRequest holds payload for registering students.
type CreateStudentRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Batch     string `json:"batch" validate:"required"`
}

// UpdateStudentRequest holds payload for updating students.
type UpdateStudentRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Batch     string `json:"batch" validate:"required"`
	Active    bool   `json:"active"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	alloc     idAllocator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, alloc idAllocator, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, alloc: alloc, validator: validate, logger: logger}
}

// Create registers a new active student under a freshly issued id.
func (s *StudentService) Create(req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if err := models.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	id, err := s.alloc.Next(idgen.KindStudent)
	if err != nil {
		return nil, err
	}
	student := models.Student{
		Person: models.Person{ID: id, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email},
		Batch:  req.Batch,
		Active: true,
	}
	if err := s.repo.Add(student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Get returns the student with the given id.
func (s *StudentService) Get(id int64) (models.Student, error) {
	return s.repo.GetByID(id)
}

// List returns every student in registration order.
func (s *StudentService) List() []models.Student {
	return s.repo.FindAll()
}

// ListActive returns active students only.
func (s *StudentService) ListActive() []models.Student {
	return s.repo.FindAllActive()
}

// ListByBatch returns students in the given batch.
func (s *StudentService) ListByBatch(batch string) []models.Student {
	return s.repo.FindByBatch(batch)
}

// FindByEmail returns students whose email matches.
func (s *StudentService) FindByEmail(email string) []models.Student {
	return s.repo.FindByEmail(email)
}

// Update rewrites an existing student's fields. The id never changes.
func (s *StudentService) Update(id int64, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if err := models.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	student, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.Batch = req.Batch
	student.Active = req.Active
	if err := s.repo.Update(student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Activate marks the student active.
func (s *StudentService) Activate(id int64) error {
	return s.repo.Activate(id)
}

// Deactivate marks the student inactive. Existing enrollments are left
// untouched; only future enrollments are blocked.
func (s *StudentService) Deactivate(id int64) error {
	return s.repo.Deactivate(id)
}

// Exists reports whether a student with the given id is registered.
func (s *StudentService) Exists(id int64) bool {
	return s.repo.Exists(id)
}

// Count returns the total number of students.
func (s *StudentService) Count() int {
	return s.repo.Count()
}

// CountActive returns the number of active students.
func (s *StudentService) CountActive() int {
	return s.repo.CountActive()
}
