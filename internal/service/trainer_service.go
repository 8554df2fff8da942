package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type trainerRepository interface {
	Add(models.Trainer) error
	GetByID(int64) (models.Trainer, error)
	FindAll() []models.Trainer
	FindBySpecialization(string) []models.Trainer
	Update(models.Trainer) error
	Exists(int64) bool
	Count() int
}

// CreateTrainerRequest holds payload for onboarding trainers.
type CreateTrainerRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Specialization  string `json:"specialization" validate:"required"`
	YearsExperience int    `json:"years_experience" validate:"gte=0"`
}

// UpdateTrainerRequest holds payload for updating trainers.
type UpdateTrainerRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Specialization  string `json:"specialization" validate:"required"`
	YearsExperience int    `json:"years_experience" validate:"gte=0"`
}

// TrainerService handles trainer use-cases.
type TrainerService struct {
	repo      trainerRepository
	alloc     idAllocator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTrainerService constructs the trainer service.
func NewTrainerService(repo trainerRepository, alloc idAllocator, validate *validator.Validate, logger *zap.Logger) *TrainerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrainerService{repo: repo, alloc: alloc, validator: validate, logger: logger}
}

// Create onboards a new trainer under a freshly issued id.
func (s *TrainerService) Create(req CreateTrainerRequest) (*models.Trainer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid trainer payload")
	}
	if err := models.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	id, err := s.alloc.Next(idgen.KindTrainer)
	if err != nil {
		return nil, err
	}
	trainer := models.Trainer{
		Person: models.Person{
			ID:        id,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
		},
		Specialization:  req.Specialization,
		YearsExperience: req.YearsExperience,
	}
	if err := s.repo.Add(trainer); err != nil {
		return nil, err
	}
	return &trainer, nil
}

// Get returns the trainer with the given id.
func (s *TrainerService) Get(id int64) (models.Trainer, error) {
	return s.repo.GetByID(id)
}

// List returns every trainer in onboarding order.
func (s *TrainerService) List() []models.Trainer {
	return s.repo.FindAll()
}

// ListBySpecialization returns trainers matching the specialization,
// case-insensitive.
func (s *TrainerService) ListBySpecialization(specialization string) []models.Trainer {
	return s.repo.FindBySpecialization(specialization)
}

// Update rewrites an existing trainer's fields. The id never changes.
func (s *TrainerService) Update(id int64, req UpdateTrainerRequest) (*models.Trainer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid trainer payload")
	}
	if err := models.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	trainer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	trainer.FirstName = req.FirstName
	trainer.LastName = req.LastName
	trainer.Email = req.Email
	trainer.Specialization = req.Specialization
	trainer.YearsExperience = req.YearsExperience
	if err := s.repo.Update(trainer); err != nil {
		return nil, err
	}
	return &trainer, nil
}

// Exists reports whether a trainer with the given id is onboarded.
func (s *TrainerService) Exists(id int64) bool {
	return s.repo.Exists(id)
}

// Count returns the total number of trainers.
func (s *TrainerService) Count() int {
	return s.repo.Count()
}
