package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averra-labs/trainhub/internal/models"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

func testEnrollment(id, studentID, courseID int64, status models.EnrollmentStatus) models.Enrollment {
	return models.Enrollment{
		ID:         id,
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledOn: models.DateOnly(time.Now()),
		Status:     status,
	}
}

func seedEnrollments(t *testing.T, repo *EnrollmentRepository, enrollments ...models.Enrollment) {
	t.Helper()
	for _, e := range enrollments {
		require.NoError(t, repo.Add(e))
	}
}

func TestEnrollmentRepositoryFindByStudentAndCourse(t *testing.T) {
	repo := NewEnrollmentRepository()
	seedEnrollments(t, repo,
		testEnrollment(3000, 1000, 2000, models.EnrollmentStatusActive),
		testEnrollment(3001, 1000, 2001, models.EnrollmentStatusCancelled),
		testEnrollment(3002, 1001, 2000, models.EnrollmentStatusCompleted),
	)

	got, ok := repo.FindByStudentAndCourse(1000, 2001)
	require.True(t, ok)
	assert.Equal(t, int64(3001), got.ID)

	// Any status counts as a link, cancelled included.
	assert.True(t, repo.IsStudentEnrolled(1000, 2001))
	assert.False(t, repo.IsStudentEnrolled(1001, 2001))
}

func TestEnrollmentRepositoryFindersByStudentAndCourseID(t *testing.T) {
	repo := NewEnrollmentRepository()
	seedEnrollments(t, repo,
		testEnrollment(3000, 1000, 2000, models.EnrollmentStatusActive),
		testEnrollment(3001, 1000, 2001, models.EnrollmentStatusCompleted),
		testEnrollment(3002, 1001, 2000, models.EnrollmentStatusActive),
	)

	byStudent := repo.FindByStudentID(1000)
	require.Len(t, byStudent, 2)
	assert.Equal(t, int64(3000), byStudent[0].ID)
	assert.Equal(t, int64(3001), byStudent[1].ID)

	byCourse := repo.FindByCourseID(2000)
	require.Len(t, byCourse, 2)

	active := repo.FindActiveByStudentID(1000)
	require.Len(t, active, 1)
	assert.Equal(t, int64(3000), active[0].ID)

	activeByCourse := repo.FindActiveByCourseID(2000)
	require.Len(t, activeByCourse, 2)
}

func TestEnrollmentRepositoryStatusQueries(t *testing.T) {
	repo := NewEnrollmentRepository()
	seedEnrollments(t, repo,
		testEnrollment(3000, 1000, 2000, models.EnrollmentStatusActive),
		testEnrollment(3001, 1001, 2000, models.EnrollmentStatusCompleted),
		testEnrollment(3002, 1002, 2000, models.EnrollmentStatusActive),
	)

	active := repo.FindByStatus(models.EnrollmentStatusActive)
	require.Len(t, active, 2)
	assert.Equal(t, 2, repo.CountByStatus(models.EnrollmentStatusActive))
	assert.Equal(t, 1, repo.CountByStatus(models.EnrollmentStatusCompleted))
	assert.Zero(t, repo.CountByStatus(models.EnrollmentStatusCancelled))
}

func TestEnrollmentRepositoryUpdateStatus(t *testing.T) {
	repo := NewEnrollmentRepository()
	seedEnrollments(t, repo,
		testEnrollment(3000, 1000, 2000, models.EnrollmentStatusActive),
	)

	require.NoError(t, repo.UpdateStatus(3000, models.EnrollmentStatusCompleted))
	got, err := repo.GetByID(3000)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusCompleted, got.Status)

	err = repo.UpdateStatus(9999, models.EnrollmentStatusCancelled)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}
