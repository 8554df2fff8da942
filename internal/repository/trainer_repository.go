package repository

import (
	"strings"

	"github.com/averra-labs/trainhub/internal/models"
)

// TrainerRepository holds the in-memory trainer collection.
type TrainerRepository struct {
	*Store[models.Trainer]
}

// NewTrainerRepository constructs an empty TrainerRepository.
func NewTrainerRepository() *TrainerRepository {
	return &TrainerRepository{
		Store: NewStore[models.Trainer]("trainer",
			func(t models.Trainer) int64 { return t.ID }),
	}
}

// FindBySpecialization returns trainers matching the specialization,
// case-insensitively.
func (r *TrainerRepository) FindBySpecialization(specialization string) []models.Trainer {
	return r.filter(func(t models.Trainer) bool {
		return strings.EqualFold(t.Specialization, specialization)
	})
}
