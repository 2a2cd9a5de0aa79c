// Package memrepo keeps tasks in process memory. Data is lost on restart.
package memrepo

import (
	"context"
	"sync"

	"github.com/rs/xid"

	"github.com/BuzzLyutic/choretle/internal/model"
	"github.com/BuzzLyutic/choretle/internal/repo"
)

type TaskRepo struct {
	mu    sync.RWMutex
	tasks map[xid.ID]model.TaskData
}

func New() *TaskRepo {
	return &TaskRepo{
		tasks: make(map[xid.ID]model.TaskData),
	}
}

func parseID(id string) (xid.ID, error) {
	oid, err := xid.FromString(id)
	if err != nil {
		return xid.NilID(), repo.InvalidID(id, err)
	}
	return oid, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.tasks))
	for id, data := range r.tasks {
		tasks = append(tasks, model.Task{ID: id.String(), TaskData: data})
	}
	return tasks, nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (model.Task, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Task{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.tasks[oid]
	if !ok {
		return model.Task{}, repo.NotFound(id)
	}
	return model.Task{ID: oid.String(), TaskData: data}, nil
}

func (r *TaskRepo) Create(ctx context.Context, data model.TaskData) (model.Task, error) {
	oid := xid.New()

	r.mu.Lock()
	r.tasks[oid] = data
	r.mu.Unlock()

	return model.Task{ID: oid.String(), TaskData: data}, nil
}

func (r *TaskRepo) Update(ctx context.Context, id string, data model.TaskData) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[oid]; ok {
		r.tasks[oid] = data
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.tasks, oid)
	r.mu.Unlock()
	return nil
}

func (r *TaskRepo) Ping(ctx context.Context) error {
	return nil
}

func (r *TaskRepo) Close(ctx context.Context) error {
	return nil
}
