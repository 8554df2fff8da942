package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averra-labs/trainhub/internal/models"
)

func testStudent(id int64, first, last, email, batch string) models.Student {
	return models.Student{
		Person: models.Person{ID: id, FirstName: first, LastName: last, Email: email},
		Batch:  batch,
		Active: true,
	}
}

func seedStudents(t *testing.T, repo *StudentRepository, students ...models.Student) {
	t.Helper()
	for _, s := range students {
		require.NoError(t, repo.Add(s))
	}
}

func TestStudentRepositoryFindByBatch(t *testing.T) {
	repo := NewStudentRepository()
	seedStudents(t, repo,
		testStudent(1000, "Ana", "Silva", "ana@example.com", "2026-A"),
		testStudent(1001, "Ben", "Okafor", "ben@example.com", "2026-B"),
		testStudent(1002, "Cho", "Mori", "cho@example.com", "2026-a"),
	)

	batch := repo.FindByBatch("2026-A")
	require.Len(t, batch, 2)
	assert.Equal(t, int64(1000), batch[0].ID)
	assert.Equal(t, int64(1002), batch[1].ID)

	assert.Empty(t, repo.FindByBatch("2027-A"))
}

func TestStudentRepositoryFindByEmail(t *testing.T) {
	repo := NewStudentRepository()
	seedStudents(t, repo,
		testStudent(1000, "Ana", "Silva", "Ana@Example.com", "2026-A"),
		testStudent(1001, "Ben", "Okafor", "ben@example.com", "2026-A"),
	)

	matches := repo.FindByEmail("ana@example.com")
	require.Len(t, matches, 1)
	assert.Equal(t, int64(1000), matches[0].ID)

	assert.Empty(t, repo.FindByEmail("nobody@example.com"))
}

func TestStudentRepositoryActiveLifecycle(t *testing.T) {
	repo := NewStudentRepository()
	seedStudents(t, repo,
		testStudent(1000, "Ana", "Silva", "ana@example.com", "2026-A"),
		testStudent(1001, "Ben", "Okafor", "ben@example.com", "2026-A"),
	)

	require.NoError(t, repo.Deactivate(1001))
	active := repo.FindAllActive()
	require.Len(t, active, 1)
	assert.Equal(t, int64(1000), active[0].ID)
	assert.Equal(t, 1, repo.CountActive())
	assert.Equal(t, 2, repo.Count())

	require.NoError(t, repo.Activate(1001))
	assert.Equal(t, 2, repo.CountActive())
}
