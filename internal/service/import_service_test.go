package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averra-labs/trainhub/internal/repository"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

type importFixture struct {
	svc      *ImportService
	alloc    *idgen.Allocator
	students *repository.StudentRepository
	courses  *repository.CourseRepository
}

func newImportFixture(t *testing.T, ranges map[idgen.Kind]idgen.Range) *importFixture {
	t.Helper()
	alloc, err := idgen.New(idgen.Config{Ranges: ranges})
	require.NoError(t, err)
	f := &importFixture{
		alloc:    alloc,
		students: repository.NewStudentRepository(),
		courses:  repository.NewCourseRepository(),
	}
	f.svc = NewImportService(f.students, f.courses, alloc, nil, nil)
	return f
}

func importStudentRecord(id int64) ImportStudentRecord {
	return ImportStudentRecord{
		ID:        id,
		FirstName: "Ana",
		LastName:  "Petrova",
		Email:     "ana.petrova@example.com",
		Batch:     "2026A",
	}
}

func TestImportServiceImportStudents(t *testing.T) {
	f := newImportFixture(t, nil)

	summary, err := f.svc.ImportStudents(context.Background(), []ImportStudentRecord{
		importStudentRecord(1500),
		importStudentRecord(1501),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, summary.BatchID)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 0, summary.Skipped)
	assert.Empty(t, summary.Failures)
	assert.Equal(t, 2, f.students.Count())

	next, err := f.alloc.Next(idgen.KindStudent)
	require.NoError(t, err)
	assert.Equal(t, int64(1502), next)
}

func TestImportServiceDefaultsOmittedActiveFlag(t *testing.T) {
	f := newImportFixture(t, nil)

	inactive := false
	flagged := importStudentRecord(1501)
	flagged.Active = &inactive

	summary, err := f.svc.ImportStudents(context.Background(), []ImportStudentRecord{
		importStudentRecord(1500),
		flagged,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)

	defaulted, err := f.students.GetByID(1500)
	require.NoError(t, err)
	assert.True(t, defaulted.Active, "row without an active flag should arrive active")

	explicit, err := f.students.GetByID(1501)
	require.NoError(t, err)
	assert.False(t, explicit.Active)
}

func TestImportServiceSkipsDuplicates(t *testing.T) {
	f := newImportFixture(t, nil)

	_, err := f.svc.ImportStudents(context.Background(), []ImportStudentRecord{importStudentRecord(1500)})
	require.NoError(t, err)

	summary, err := f.svc.ImportStudents(context.Background(), []ImportStudentRecord{importStudentRecord(1500)})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, f.students.Count())
}

func TestImportServiceRecordsFailures(t *testing.T) {
	f := newImportFixture(t, nil)

	outOfRange := importStudentRecord(50)
	badEmail := importStudentRecord(1501)
	badEmail.Email = "not-an-email"
	missingName := importStudentRecord(1502)
	missingName.FirstName = ""

	summary, err := f.svc.ImportStudents(context.Background(), []ImportStudentRecord{
		outOfRange,
		badEmail,
		missingName,
		importStudentRecord(1503),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	require.Len(t, summary.Failures, 3)
	assert.Equal(t, 0, summary.Failures[0].Index)
	assert.Equal(t, int64(50), summary.Failures[0].ID)
	assert.Equal(t, 1, f.students.Count())
}

func TestImportServiceCapacityReached(t *testing.T) {
	f := newImportFixture(t, map[idgen.Kind]idgen.Range{
		idgen.KindStudent: {Start: 1000, End: 1001},
	})

	for i := 0; i < 2; i++ {
		_, err := f.alloc.Next(idgen.KindStudent)
		require.NoError(t, err)
	}

	summary, err := f.svc.ImportStudents(context.Background(), []ImportStudentRecord{importStudentRecord(1000)})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Imported)
	require.Len(t, summary.Failures, 1)
	assert.Contains(t, summary.Failures[0].Reason, "capacity")
}

func TestImportServiceImportCourses(t *testing.T) {
	f := newImportFixture(t, nil)

	summary, err := f.svc.ImportCourses(context.Background(), []ImportCourseRecord{
		{ID: 2500, Name: "Go Fundamentals", Description: "intro", DurationWeeks: 8},
		{ID: 2501, Name: "Advanced Go", Description: "generics and concurrency", DurationWeeks: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 2, f.courses.Count())

	course, err := f.courses.GetByID(2500)
	require.NoError(t, err)
	assert.True(t, course.Active)

	next, err := f.alloc.Next(idgen.KindCourse)
	require.NoError(t, err)
	assert.Equal(t, int64(2502), next)
}

func TestImportServiceCancelledContext(t *testing.T) {
	f := newImportFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := f.svc.ImportStudents(ctx, []ImportStudentRecord{importStudentRecord(1500)})
	require.Error(t, err)
	assert.Equal(t, 0, summary.Imported)
	assert.Equal(t, 0, f.students.Count())
}
