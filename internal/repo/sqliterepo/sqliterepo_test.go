package sqliterepo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/choretle/internal/model"
	"github.com/BuzzLyutic/choretle/internal/repo"
	"github.com/BuzzLyutic/choretle/internal/repo/repotest"
)

var _ repo.Backend = (*TaskRepo)(nil)

func openTemp(t *testing.T) *TaskRepo {
	t.Helper()
	r, err := Open(context.Background(), filepath.Join(t.TempDir(), "tasks.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(context.Background()) })
	return r
}

func TestTaskRepo_Contract(t *testing.T) {
	repotest.Run(t, repotest.Harness{
		New: func(t *testing.T) repo.TaskRepository {
			return openTemp(t)
		},
		MissingID: func() string {
			return xid.New().String()
		},
		InvalidIDs: []string{"", "not-an-id", "652f1c2e9b1e8a3d4c5b6a79", "3f2b8e6a-1c4d-4e5f-9a8b-7c6d5e4f3a2b"},
	})
}

func TestTaskRepo_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")

	r, err := Open(ctx, path, "chores")
	require.NoError(t, err)
	created, err := r.Create(ctx, model.TaskData{Name: "water plants", Effort: model.EffortLow})
	require.NoError(t, err)
	require.NoError(t, r.Close(ctx))

	reopened, err := Open(ctx, path, "chores")
	require.NoError(t, err)
	defer reopened.Close(ctx)

	got, err := reopened.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTaskRepo_ClosedIsUnavailable(t *testing.T) {
	ctx := context.Background()
	r, err := Open(ctx, filepath.Join(t.TempDir(), "tasks.db"), "")
	require.NoError(t, err)
	require.NoError(t, r.Close(ctx))

	_, err = r.List(ctx)
	assert.ErrorIs(t, err, repo.ErrStorageUnavailable)

	_, err = r.Create(ctx, model.TaskData{Name: "x", Effort: model.EffortLow})
	assert.ErrorIs(t, err, repo.ErrStorageUnavailable)

	assert.ErrorIs(t, r.Delete(ctx, xid.New().String()), repo.ErrStorageUnavailable)
	assert.ErrorIs(t, r.Ping(ctx), repo.ErrStorageUnavailable)
}
