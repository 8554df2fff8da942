package repository

import (
	"strings"

	"github.com/averra-labs/trainhub/internal/models"
)

// StudentRepository holds the in-memory student collection.
type StudentRepository struct {
	*ActiveStore[models.Student]
}

// NewStudentRepository constructs an empty StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		ActiveStore: NewActiveStore[models.Student]("student",
			func(s models.Student) int64 { return s.ID },
			func(s models.Student) bool { return s.Active },
			func(s *models.Student, active bool) { s.Active = active },
		),
	}
}

// FindByBatch returns students in the given batch, case-insensitively.
func (r *StudentRepository) FindByBatch(batch string) []models.Student {
	return r.filter(func(s models.Student) bool {
		return strings.EqualFold(s.Batch, batch)
	})
}

// FindByEmail returns students whose email matches, case-insensitively.
func (r *StudentRepository) FindByEmail(email string) []models.Student {
	return r.filter(func(s models.Student) bool {
		return strings.EqualFold(s.Email, email)
	})
}
