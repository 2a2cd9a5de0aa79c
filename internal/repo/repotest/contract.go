// Package repotest holds the behaviour every repo.TaskRepository must show.
// Backend packages call Run from their own tests.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/choretle/internal/model"
	"github.com/BuzzLyutic/choretle/internal/repo"
)

// Harness describes the backend under test.
type Harness struct {
	// New returns an empty repository. It is called once per subtest.
	New func(t *testing.T) repo.TaskRepository
	// MissingID returns a well formed id that no stored task uses.
	MissingID func() string
	// InvalidIDs are strings the backend must reject as malformed.
	InvalidIDs []string
}

func Run(t *testing.T, h Harness) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(*testing.T, Harness)
	}{
		{"create assigns distinct ids", testCreate},
		{"get round trips created task", testGetRoundTrip},
		{"get rejects malformed ids", testGetInvalidID},
		{"get unknown id is not found", testGetMissing},
		{"update replaces payload", testUpdate},
		{"update and delete of unknown id are no-ops", testMissingWrites},
		{"update and delete reject malformed ids", testWritesInvalidID},
		{"delete removes task", testDelete},
		{"list returns exactly stored tasks", testList},
		{"concurrent creates", testConcurrentCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, h)
		})
	}
}

func testCreate(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		data := model.TaskData{Name: fmt.Sprintf("Task %d", i), Effort: model.EffortMedium}

		created, err := r.Create(ctx, data)
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, data, created.TaskData)
		assert.False(t, seen[created.ID], "id %s reused", created.ID)
		seen[created.ID] = true
	}
}

func testGetRoundTrip(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()

	created, err := r.Create(ctx, model.TaskData{Name: "buy milk", Effort: model.EffortLow})
	require.NoError(t, err)

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func testGetInvalidID(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()

	_, err := r.Create(ctx, model.TaskData{Name: "present", Effort: model.EffortLow})
	require.NoError(t, err)

	for _, id := range h.InvalidIDs {
		_, err := r.Get(ctx, id)
		assert.ErrorIs(t, err, repo.ErrInvalidID, "id %q", id)
	}
}

func testGetMissing(t *testing.T, h Harness) {
	r := h.New(t)

	_, err := r.Get(context.Background(), h.MissingID())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func testUpdate(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()

	created, err := r.Create(ctx, model.TaskData{Name: "buy milk", Effort: model.EffortLow})
	require.NoError(t, err)

	next := model.TaskData{Name: "buy oat milk", Effort: model.EffortHigh}
	require.NoError(t, r.Update(ctx, created.ID, next))

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, next, got.TaskData)
}

func testMissingWrites(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()
	id := h.MissingID()

	assert.NoError(t, r.Update(ctx, id, model.TaskData{Name: "ghost", Effort: model.EffortLow}))
	assert.NoError(t, r.Delete(ctx, id))

	_, err := r.Get(ctx, id)
	assert.ErrorIs(t, err, repo.ErrNotFound, "update must not create")
}

func testWritesInvalidID(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()

	for _, id := range h.InvalidIDs {
		err := r.Update(ctx, id, model.TaskData{Name: "x", Effort: model.EffortLow})
		assert.ErrorIs(t, err, repo.ErrInvalidID, "update %q", id)

		err = r.Delete(ctx, id)
		assert.ErrorIs(t, err, repo.ErrInvalidID, "delete %q", id)
	}
}

func testDelete(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()

	keep, err := r.Create(ctx, model.TaskData{Name: "keep", Effort: model.EffortLow})
	require.NoError(t, err)
	gone, err := r.Create(ctx, model.TaskData{Name: "gone", Effort: model.EffortLow})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, gone.ID))

	_, err = r.Get(ctx, gone.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	got, err := r.Get(ctx, keep.ID)
	require.NoError(t, err)
	assert.Equal(t, keep, got)
}

func testList(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()

	empty, err := r.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	var want []model.Task
	for _, name := range []string{"A", "B", "C"} {
		created, err := r.Create(ctx, model.TaskData{Name: name, Effort: model.EffortMedium})
		require.NoError(t, err)
		want = append(want, created)
	}

	got, err := r.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func testConcurrentCreate(t *testing.T, h Harness) {
	r := h.New(t)
	ctx := context.Background()

	const goroutines = 10

	var wg sync.WaitGroup
	results := make([]model.Task, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = r.Create(ctx, model.TaskData{
				Name:   fmt.Sprintf("Concurrent Task %d", idx),
				Effort: model.EffortHigh,
			})
		}(i)
	}
	wg.Wait()

	ids := make(map[string]bool)
	for i, err := range errs {
		require.NoError(t, err, "create %d", i)
		ids[results[i].ID] = true
	}
	assert.Len(t, ids, goroutines)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, goroutines)
}
