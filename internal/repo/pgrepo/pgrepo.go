// Package pgrepo stores each task as a JSONB document keyed by a UUID.
package pgrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/choretle/internal/model"
	"github.com/BuzzLyutic/choretle/internal/repo"
)

const DefaultTable = "tasks"

type TaskRepo struct {
	pool  *pgxpool.Pool
	table string
}

func parseID(id string) (uuid.UUID, error) {
	// uuid.Parse also accepts braced and urn forms; only the canonical one is an id here.
	if len(id) != 36 {
		return uuid.Nil, repo.InvalidID(id, nil)
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repo.InvalidID(id, err)
	}
	return u, nil
}

// Connect opens a pool on connString and makes sure the table exists.
func Connect(ctx context.Context, connString, table string) (*TaskRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, repo.Unavailable("connect postgres", err)
	}

	r := New(pool, table)
	if err := r.EnsureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

func New(pool *pgxpool.Pool, table string) *TaskRepo {
	if table == "" {
		table = DefaultTable
	}
	return &TaskRepo{
		pool:  pool,
		table: pgx.Identifier{table}.Sanitize(),
	}
}

func (r *TaskRepo) EnsureTable(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id  uuid PRIMARY KEY,
			doc jsonb NOT NULL
		)`, r.table))
	return repo.Unavailable("create table", err)
}

func encodeDoc(data model.TaskData) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t   model.Task
		doc []byte
	)
	if err := row.Scan(&t.ID, &doc); err != nil {
		return t, err
	}
	if err := json.Unmarshal(doc, &t.TaskData); err != nil {
		return t, fmt.Errorf("decode task %s: %w", t.ID, err)
	}
	return t, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT id::text, doc FROM %s`, r.table))
	if err != nil {
		return nil, repo.Unavailable("select tasks", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, repo.Unavailable("scan task", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.Unavailable("select tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (model.Task, error) {
	u, err := parseID(id)
	if err != nil {
		return model.Task{}, err
	}

	t, err := scanTask(r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT id::text, doc FROM %s WHERE id = $1`, r.table), u))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, repo.NotFound(id)
	}
	if err != nil {
		return model.Task{}, repo.Unavailable("select task", err)
	}
	return t, nil
}

func (r *TaskRepo) Create(ctx context.Context, data model.TaskData) (model.Task, error) {
	doc, err := encodeDoc(data)
	if err != nil {
		return model.Task{}, err
	}

	id := uuid.New()
	_, err = r.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)`, r.table), id, doc)
	if err != nil {
		return model.Task{}, repo.Unavailable("insert task", err)
	}
	return model.Task{ID: id.String(), TaskData: data}, nil
}

func (r *TaskRepo) Update(ctx context.Context, id string, data model.TaskData) error {
	u, err := parseID(id)
	if err != nil {
		return err
	}
	doc, err := encodeDoc(data)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1`, r.table), u, doc)
	return repo.Unavailable("update task", err)
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	u, err := parseID(id)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), u)
	return repo.Unavailable("delete task", err)
}

func (r *TaskRepo) Ping(ctx context.Context) error {
	return repo.Unavailable("ping postgres", r.pool.Ping(ctx))
}

func (r *TaskRepo) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}
