package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averra-labs/trainhub/internal/models"
)

func testCourse(id int64, name string, weeks int) models.Course {
	return models.Course{
		ID:            id,
		Name:          name,
		Description:   name + " fundamentals",
		DurationWeeks: weeks,
		Active:        true,
	}
}

func TestCourseRepositoryFindByNameContaining(t *testing.T) {
	repo := NewCourseRepository()
	require.NoError(t, repo.Add(testCourse(2000, "Go Fundamentals", 6)))
	require.NoError(t, repo.Add(testCourse(2001, "Advanced Go", 8)))
	require.NoError(t, repo.Add(testCourse(2002, "SQL Basics", 4)))

	matches := repo.FindByNameContaining("go")
	require.Len(t, matches, 2)
	assert.Equal(t, int64(2000), matches[0].ID)
	assert.Equal(t, int64(2001), matches[1].ID)

	assert.Empty(t, repo.FindByNameContaining("rust"))
}

func TestCourseRepositoryFindByDurationRange(t *testing.T) {
	repo := NewCourseRepository()
	require.NoError(t, repo.Add(testCourse(2000, "Short", 2)))
	require.NoError(t, repo.Add(testCourse(2001, "Medium", 6)))
	require.NoError(t, repo.Add(testCourse(2002, "Long", 12)))

	// Bounds are inclusive on both ends.
	matches := repo.FindByDurationRange(2, 6)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(2000), matches[0].ID)
	assert.Equal(t, int64(2001), matches[1].ID)

	assert.Empty(t, repo.FindByDurationRange(13, 20))
}

func TestCourseRepositoryActiveLifecycle(t *testing.T) {
	repo := NewCourseRepository()
	require.NoError(t, repo.Add(testCourse(2000, "Go Fundamentals", 6)))

	require.NoError(t, repo.Deactivate(2000))
	assert.Zero(t, repo.CountActive())
	got, err := repo.GetByID(2000)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.NoError(t, repo.Activate(2000))
	assert.Equal(t, 1, repo.CountActive())
}
