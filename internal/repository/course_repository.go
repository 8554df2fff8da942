package repository

import (
	"strings"

	"github.com/averra-labs/trainhub/internal/models"
)

// CourseRepository holds the in-memory course collection.
type CourseRepository struct {
	*ActiveStore[models.Course]
}

// NewCourseRepository constructs an empty CourseRepository.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		ActiveStore: NewActiveStore[models.Course]("course",
			func(c models.Course) int64 { return c.ID },
			func(c models.Course) bool { return c.Active },
			func(c *models.Course, active bool) { c.Active = active },
		),
	}
}

// FindByNameContaining returns courses whose name contains pattern,
// case-insensitively.
func (r *CourseRepository) FindByNameContaining(pattern string) []models.Course {
	needle := strings.ToLower(pattern)
	return r.filter(func(c models.Course) bool {
		return strings.Contains(strings.ToLower(c.Name), needle)
	})
}

// FindByDurationRange returns courses running between minWeeks and maxWeeks
// inclusive.
func (r *CourseRepository) FindByDurationRange(minWeeks, maxWeeks int) []models.Course {
	return r.filter(func(c models.Course) bool {
		return c.DurationWeeks >= minWeeks && c.DurationWeeks <= maxWeeks
	})
}
