package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averra-labs/trainhub/internal/repository"
	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

func newStudentService(t *testing.T) (*StudentService, *repository.StudentRepository) {
	t.Helper()
	alloc, err := idgen.New(idgen.Config{})
	require.NoError(t, err)
	repo := repository.NewStudentRepository()
	return NewStudentService(repo, alloc, nil, nil), repo
}

func TestStudentServiceCreate(t *testing.T) {
	svc, repo := newStudentService(t)

	student, err := svc.Create(CreateStudentRequest{
		FirstName: "Ana",
		LastName:  "Petrova",
		Email:     "ana.petrova@example.com",
		Batch:     "2026A",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), student.ID)
	assert.True(t, student.Active)
	assert.Equal(t, 1, repo.Count())

	second, err := svc.Create(CreateStudentRequest{
		FirstName: "Boris",
		LastName:  "Ilic",
		Email:     "boris.ilic@example.com",
		Batch:     "2026A",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), second.ID)
}

func TestStudentServiceCreateRejectsMissingFields(t *testing.T) {
	svc, repo := newStudentService(t)

	_, err := svc.Create(CreateStudentRequest{FirstName: "Ana", Email: "ana@example.com", Batch: "2026A"})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
	assert.Equal(t, 0, repo.Count())
}

func TestStudentServiceCreateRejectsBadEmail(t *testing.T) {
	svc, _ := newStudentService(t)

	for _, email := range []string{"not-an-email", "two@@example.com", "@example.com", "ana@example"} {
		_, err := svc.Create(CreateStudentRequest{FirstName: "Ana", LastName: "Petrova", Email: email, Batch: "2026A"})
		require.Error(t, err, "email %q", email)
		assert.True(t, appErrors.IsValidation(err), "email %q", email)
	}
}

func TestStudentServiceCreateRangeExhausted(t *testing.T) {
	alloc, err := idgen.New(idgen.Config{Ranges: map[idgen.Kind]idgen.Range{
		idgen.KindStudent: {Start: 1000, End: 1001},
	}})
	require.NoError(t, err)
	repo := repository.NewStudentRepository()
	svc := NewStudentService(repo, alloc, nil, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(CreateStudentRequest{FirstName: "Ana", LastName: "Petrova", Email: "ana@example.com", Batch: "2026A"})
		require.NoError(t, err)
	}
	_, err = svc.Create(CreateStudentRequest{FirstName: "Ana", LastName: "Petrova", Email: "ana@example.com", Batch: "2026A"})
	require.Error(t, err)
	assert.True(t, appErrors.IsRangeExhausted(err))
	assert.Equal(t, 2, repo.Count())
}

func TestStudentServiceUpdate(t *testing.T) {
	svc, _ := newStudentService(t)

	student, err := svc.Create(CreateStudentRequest{FirstName: "Ana", LastName: "Petrova", Email: "ana@example.com", Batch: "2026A"})
	require.NoError(t, err)

	updated, err := svc.Update(student.ID, UpdateStudentRequest{
		FirstName: "Ana",
		LastName:  "Ilic",
		Email:     "ana.ilic@example.com",
		Batch:     "2026B",
		Active:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, student.ID, updated.ID)
	assert.Equal(t, "Ilic", updated.LastName)
	assert.Equal(t, "2026B", updated.Batch)
}

func TestStudentServiceUpdateMissing(t *testing.T) {
	svc, _ := newStudentService(t)

	_, err := svc.Update(1000, UpdateStudentRequest{FirstName: "A", LastName: "B", Email: "a@b.io", Batch: "X", Active: true})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestStudentServiceDeactivateThenListActive(t *testing.T) {
	svc, _ := newStudentService(t)

	first, err := svc.Create(CreateStudentRequest{FirstName: "Ana", LastName: "Petrova", Email: "ana@example.com", Batch: "2026A"})
	require.NoError(t, err)
	_, err = svc.Create(CreateStudentRequest{FirstName: "Boris", LastName: "Ilic", Email: "boris@example.com", Batch: "2026A"})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(first.ID))

	assert.Len(t, svc.ListActive(), 1)
	assert.Equal(t, 2, svc.Count())
	assert.Equal(t, 1, svc.CountActive())
	assert.True(t, svc.Exists(first.ID))

	require.NoError(t, svc.Activate(first.ID))
	assert.Len(t, svc.ListActive(), 2)
}

func TestStudentServiceGetMissing(t *testing.T) {
	svc, _ := newStudentService(t)

	_, err := svc.Get(1404)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestStudentServiceListByBatch(t *testing.T) {
	svc, _ := newStudentService(t)

	_, err := svc.Create(CreateStudentRequest{FirstName: "Ana", LastName: "Petrova", Email: "ana@example.com", Batch: "2026A"})
	require.NoError(t, err)
	_, err = svc.Create(CreateStudentRequest{FirstName: "Boris", LastName: "Ilic", Email: "boris@example.com", Batch: "2026B"})
	require.NoError(t, err)

	assert.Len(t, svc.ListByBatch("2026a"), 1)
	assert.Len(t, svc.FindByEmail("ANA@example.com"), 1)
}
