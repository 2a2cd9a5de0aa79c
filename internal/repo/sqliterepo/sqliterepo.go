// Package sqliterepo keeps tasks in a single SQLite file.
package sqliterepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"

	"github.com/BuzzLyutic/choretle/internal/model"
	"github.com/BuzzLyutic/choretle/internal/repo"
)

const DefaultTable = "tasks"

type TaskRepo struct {
	db    *sql.DB
	table string
}

func parseID(id string) (xid.ID, error) {
	oid, err := xid.FromString(id)
	if err != nil {
		return xid.NilID(), repo.InvalidID(id, err)
	}
	return oid, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Open opens (creating if needed) the database at dsn.
func Open(ctx context.Context, dsn, table string) (*TaskRepo, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, repo.Unavailable("open sqlite", err)
	}
	// SQLite allows one writer; serialise through a single connection.
	db.SetMaxOpenConns(1)

	if table == "" {
		table = DefaultTable
	}
	r := &TaskRepo{db: db, table: quoteIdent(table)}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id     TEXT PRIMARY KEY,
			name   TEXT NOT NULL,
			effort TEXT NOT NULL
		)`, r.table))
	if err != nil {
		db.Close()
		return nil, repo.Unavailable("create table", err)
	}
	return r, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`SELECT id, name, effort FROM %s`, r.table))
	if err != nil {
		return nil, repo.Unavailable("select tasks", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Effort); err != nil {
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
	oid, err := parseID(id)
	if err != nil {
		return model.Task{}, err
	}

	var t model.Task
	err = r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, name, effort FROM %s WHERE id = ?`, r.table), oid.String(),
	).Scan(&t.ID, &t.Name, &t.Effort)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repo.NotFound(id)
	}
	if err != nil {
		return model.Task{}, repo.Unavailable("select task", err)
	}
	return t, nil
}

func (r *TaskRepo) Create(ctx context.Context, data model.TaskData) (model.Task, error) {
	id := xid.New().String()

	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, name, effort) VALUES (?, ?, ?)`, r.table),
		id, data.Name, data.Effort.String())
	if err != nil {
		return model.Task{}, repo.Unavailable("insert task", err)
	}
	return model.Task{ID: id, TaskData: data}, nil
}

func (r *TaskRepo) Update(ctx context.Context, id string, data model.TaskData) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET name = ?, effort = ? WHERE id = ?`, r.table),
		data.Name, data.Effort.String(), oid.String())
	return repo.Unavailable("update task", err)
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.table), oid.String())
	return repo.Unavailable("delete task", err)
}

func (r *TaskRepo) Ping(ctx context.Context) error {
	return repo.Unavailable("ping sqlite", r.db.PingContext(ctx))
}

func (r *TaskRepo) Close(ctx context.Context) error {
	return r.db.Close()
}
