package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

type widget struct {
	ID     int64
	Label  string
	Active bool
}

func newWidgetStore() *Store[widget] {
	return NewStore[widget]("widget", func(w widget) int64 { return w.ID })
}

func newWidgetActiveStore() *ActiveStore[widget] {
	return NewActiveStore[widget]("widget",
		func(w widget) int64 { return w.ID },
		func(w widget) bool { return w.Active },
		func(w *widget, active bool) { w.Active = active },
	)
}

func TestStoreAddRejectsDuplicateID(t *testing.T) {
	store := newWidgetStore()

	require.NoError(t, store.Add(widget{ID: 1, Label: "first"}))
	err := store.Add(widget{ID: 1, Label: "second"})
	require.Error(t, err)
	assert.True(t, appErrors.IsDuplicateID(err))

	// The rejected insert must leave the original untouched.
	assert.Equal(t, 1, store.Count())
	got, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Label)
}

func TestStoreFindByIDAndGetByID(t *testing.T) {
	store := newWidgetStore()
	require.NoError(t, store.Add(widget{ID: 7, Label: "seven"}))

	got, ok := store.FindByID(7)
	require.True(t, ok)
	assert.Equal(t, "seven", got.Label)

	_, ok = store.FindByID(8)
	assert.False(t, ok)

	_, err := store.GetByID(8)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "widget")
}

func TestStoreFindAllReturnsDefensiveCopy(t *testing.T) {
	store := newWidgetStore()
	require.NoError(t, store.Add(widget{ID: 1, Label: "a"}))
	require.NoError(t, store.Add(widget{ID: 2, Label: "b"}))
	require.NoError(t, store.Add(widget{ID: 3, Label: "c"}))

	all := store.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})

	all[0].Label = "mutated"
	all[1] = widget{ID: 99}

	got, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Label)
	assert.False(t, store.Exists(99))
}

func TestStoreUpdateReplacesWholeEntity(t *testing.T) {
	store := newWidgetStore()
	require.NoError(t, store.Add(widget{ID: 1, Label: "old", Active: true}))

	require.NoError(t, store.Update(widget{ID: 1, Label: "new"}))
	got, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Label)
	assert.False(t, got.Active)

	err = store.Update(widget{ID: 2, Label: "ghost"})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
	assert.Equal(t, 1, store.Count())
}

func TestStoreDeleteByID(t *testing.T) {
	store := newWidgetStore()
	require.NoError(t, store.Add(widget{ID: 1}))
	require.NoError(t, store.Add(widget{ID: 2}))

	assert.True(t, store.DeleteByID(1))
	assert.False(t, store.DeleteByID(1))
	assert.Equal(t, 1, store.Count())
	assert.False(t, store.Exists(1))
	assert.True(t, store.Exists(2))
}

func TestStoreClear(t *testing.T) {
	store := newWidgetStore()
	require.NoError(t, store.Add(widget{ID: 1}))
	require.NoError(t, store.Add(widget{ID: 2}))

	store.Clear()
	assert.Zero(t, store.Count())
	assert.Empty(t, store.FindAll())

	// The id becomes insertable again; id reuse policy lives with the
	// allocator, not the store.
	require.NoError(t, store.Add(widget{ID: 1}))
}

func TestActiveStoreFindAllActive(t *testing.T) {
	store := newWidgetActiveStore()
	require.NoError(t, store.Add(widget{ID: 1, Active: true}))
	require.NoError(t, store.Add(widget{ID: 2, Active: false}))
	require.NoError(t, store.Add(widget{ID: 3, Active: true}))

	active := store.FindAllActive()
	require.Len(t, active, 2)
	assert.Equal(t, int64(1), active[0].ID)
	assert.Equal(t, int64(3), active[1].ID)
	assert.Equal(t, 2, store.CountActive())
	assert.Equal(t, 3, store.Count())
}

func TestActiveStoreActivateDeactivateIdempotent(t *testing.T) {
	store := newWidgetActiveStore()
	require.NoError(t, store.Add(widget{ID: 1, Active: true}))

	require.NoError(t, store.Deactivate(1))
	got, err := store.GetByID(1)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.NoError(t, store.Deactivate(1))
	got, err = store.GetByID(1)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.NoError(t, store.Activate(1))
	require.NoError(t, store.Activate(1))
	got, err = store.GetByID(1)
	require.NoError(t, err)
	assert.True(t, got.Active)

	err = store.Activate(42)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestStoreConcurrentAdds(t *testing.T) {
	store := newWidgetStore()

	const goroutines, perGoroutine = 8, 50
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for i := int64(0); i < perGoroutine; i++ {
				_ = store.Add(widget{ID: base*perGoroutine + i})
			}
		}(int64(g))
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, store.Count())
}
