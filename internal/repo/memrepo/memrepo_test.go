package memrepo

import (
	"testing"

	"github.com/rs/xid"

	"github.com/BuzzLyutic/choretle/internal/repo"
	"github.com/BuzzLyutic/choretle/internal/repo/repotest"
)

var _ repo.Backend = (*TaskRepo)(nil)

func TestTaskRepo_Contract(t *testing.T) {
	repotest.Run(t, repotest.Harness{
		New: func(t *testing.T) repo.TaskRepository {
			return New()
		},
		MissingID: func() string {
			return xid.New().String()
		},
		InvalidIDs: []string{"", "not-an-id", "652f1c2e9b1e8a3d4c5b6a79", "9m4e2mr0ui3e8a215n4g!"},
	})
}
