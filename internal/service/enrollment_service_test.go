package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averra-labs/trainhub/internal/models"
	"github.com/averra-labs/trainhub/internal/repository"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type enrollmentFixture struct {
	svc         *EnrollmentService
	enrollments *repository.EnrollmentRepository
	students    *repository.StudentRepository
	courses     *repository.CourseRepository
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()
	alloc, err := idgen.New(idgen.Config{})
	require.NoError(t, err)
	f := &enrollmentFixture{
		enrollments: repository.NewEnrollmentRepository(),
		students:    repository.NewStudentRepository(),
		courses:     repository.NewCourseRepository(),
	}
	f.svc = NewEnrollmentService(f.enrollments, f.students, f.courses, alloc, nil, nil)
	return f
}

func (f *enrollmentFixture) seedStudent(t *testing.T, id int64, active bool) {
	t.Helper()
	require.NoError(t, f.students.Add(models.Student{
		Person: models.Person{ID: id, FirstName: "Ana", LastName: "Petrova", Email: "ana.petrova@example.com"},
		Batch:  "2026A",
		Active: active,
	}))
}

func (f *enrollmentFixture) seedCourse(t *testing.T, id int64, active bool) {
	t.Helper()
	require.NoError(t, f.courses.Add(models.Course{
		ID:            id,
		Name:          "Go Fundamentals",
		Description:   "Intro to Go",
		DurationWeeks: 8,
		Active:        active,
	}))
}

func TestEnrollmentServiceEnroll(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, true)

	enrollment, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), enrollment.ID)
	assert.Equal(t, models.EnrollmentStatusActive, enrollment.Status)
	assert.True(t, enrollment.EnrolledOn.Equal(models.DateOnly(enrollment.EnrolledOn)))
	assert.Equal(t, 1, f.enrollments.Count())
}

func TestEnrollmentServiceEnrollMissingStudent(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedCourse(t, 2000, true)

	_, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
	assert.Equal(t, 0, f.enrollments.Count())
}

func TestEnrollmentServiceEnrollInactiveStudent(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, false)
	f.seedCourse(t, 2000, true)

	_, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.Error(t, err)
	assert.True(t, appErrors.IsInvalidState(err))
	assert.Equal(t, 0, f.enrollments.Count())
}

func TestEnrollmentServiceEnrollMissingCourse(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)

	_, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestEnrollmentServiceEnrollInactiveCourseLeavesLedgerUntouched(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, false)

	_, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.Error(t, err)
	assert.True(t, appErrors.IsInvalidState(err))
	assert.Equal(t, 0, f.enrollments.Count())
	assert.Empty(t, f.svc.List())
}

func TestEnrollmentServiceEnrollDuplicatePair(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, true)

	_, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)

	_, err = f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.Error(t, err)
	assert.True(t, appErrors.IsInvalidState(err))
	assert.Equal(t, 1, f.enrollments.Count())
}

func TestEnrollmentServiceEnrollBlockedAfterCancel(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, true)

	enrollment, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(enrollment.ID))

	_, err = f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.Error(t, err)
	assert.True(t, appErrors.IsInvalidState(err))
}

func TestEnrollmentServiceEnrollRejectsZeroIDs(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.svc.Enroll(EnrollRequest{StudentID: 0, CourseID: 2000})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestEnrollmentServiceSetStatusAllowsAnyTransition(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, true)

	enrollment, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)

	require.NoError(t, f.svc.Complete(enrollment.ID))
	got, err := f.svc.Get(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusCompleted, got.Status)

	require.NoError(t, f.svc.SetStatus(enrollment.ID, models.EnrollmentStatusActive))
	got, err = f.svc.Get(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusActive, got.Status)

	require.NoError(t, f.svc.Cancel(enrollment.ID))
	require.NoError(t, f.svc.SetStatus(enrollment.ID, models.EnrollmentStatusActive))
	got, err = f.svc.Get(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusActive, got.Status)
}

func TestEnrollmentServiceSetStatusRejectsUnknown(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, true)

	enrollment, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)

	err = f.svc.SetStatus(enrollment.ID, models.EnrollmentStatus("PAUSED"))
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestEnrollmentServiceSetStatusMissing(t *testing.T) {
	f := newEnrollmentFixture(t)

	err := f.svc.SetStatus(3000, models.EnrollmentStatusCompleted)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestEnrollmentServiceListByStudentRequiresStudent(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.svc.ListByStudent(1000)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))

	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, true)
	_, err = f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)

	list, err := f.svc.ListByStudent(1000)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEnrollmentServiceListByCourseRequiresCourse(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.svc.ListByCourse(2000)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))

	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, true)
	_, err = f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)

	list, err := f.svc.ListByCourse(2000)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEnrollmentServiceListByStatusAndCounts(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)
	f.seedStudent(t, 1001, true)
	f.seedCourse(t, 2000, true)

	first, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)
	_, err = f.svc.Enroll(EnrollRequest{StudentID: 1001, CourseID: 2000})
	require.NoError(t, err)
	require.NoError(t, f.svc.Complete(first.ID))

	active, err := f.svc.ListByStatus(models.EnrollmentStatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	completed, err := f.svc.CountByStatus(models.EnrollmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)

	_, err = f.svc.ListByStatus(models.EnrollmentStatus("OPEN"))
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestEnrollmentServiceIsEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.seedStudent(t, 1000, true)
	f.seedCourse(t, 2000, true)

	assert.False(t, f.svc.IsEnrolled(1000, 2000))

	enrollment, err := f.svc.Enroll(EnrollRequest{StudentID: 1000, CourseID: 2000})
	require.NoError(t, err)
	assert.True(t, f.svc.IsEnrolled(1000, 2000))

	require.NoError(t, f.svc.Cancel(enrollment.ID))
	assert.True(t, f.svc.IsEnrolled(1000, 2000))
}
