// Package pgstore persists the relational image of OpenAlex records in
// Postgres. Tables come straight from the schema registry, every record is
// written in its own transaction, and the read path feeds rows back through
// hydration so anything loaded can be reconstructed as a canonical entity.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/miku/oatables/entity"
	"github.com/miku/oatables/project"
	"github.com/miku/oatables/schema"
)

// ErrNotFound is returned by GetRecord when no root row exists.
var ErrNotFound = errors.New("record not found")

// Store wraps a connection pool.
type Store struct {
	Pool *pgxpool.Pool
}

// Open connects and pings.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

// Create sets up the namespace schema and all tables of a kind.
func (s *Store) Create(ctx context.Context, kind string) error {
	k, ok := schema.Lookup(kind)
	if !ok {
		return fmt.Errorf("pgstore: unknown kind: %s", kind)
	}
	stmts := append([]string{fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema.Namespace)}, CreateDDL(k)...)
	for _, stmt := range stmts {
		if _, err := s.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("pgstore: create: %w", err)
		}
	}
	return nil
}

// Drop removes all tables of a kind.
func (s *Store) Drop(ctx context.Context, kind string) error {
	k, ok := schema.Lookup(kind)
	if !ok {
		return fmt.Errorf("pgstore: unknown kind: %s", kind)
	}
	for _, stmt := range DropDDL(k) {
		if _, err := s.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("pgstore: drop: %w", err)
		}
	}
	return nil
}

// InsertRecord writes the full relational image of one record in a single
// transaction, replacing any rows of a previous version of the same record.
func (s *Store) InsertRecord(ctx context.Context, r *project.Rows) error {
	k := r.Kind
	id := r.Root()[0]
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", k.Root.Name, k.Root.Columns[0]), id); err != nil {
		return err
	}
	for _, sub := range k.Subs {
		if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", sub.Table.Name, sub.Table.FK()), id); err != nil {
			return err
		}
	}
	if err := insertRows(ctx, tx, k.Root, r.Tables[k.Root.Name]); err != nil {
		return err
	}
	for _, sub := range k.Subs {
		if err := insertRows(ctx, tx, sub.Table, r.Tables[sub.Table.Name]); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func insertRows(ctx context.Context, tx pgx.Tx, t schema.Table, rows []project.Row) error {
	if len(rows) == 0 {
		return nil
	}
	stmt := project.ParamStatement(t)
	for _, row := range rows {
		if _, err := tx.Exec(ctx, stmt, project.Args(row)...); err != nil {
			return fmt.Errorf("%s: %w", t.Name, err)
		}
	}
	return nil
}

// GetRecord reads the relational image of one record back and hydrates it
// into a canonical entity.
func (s *Store) GetRecord(ctx context.Context, kind, id string) (entity.Canonical, error) {
	k, ok := schema.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("pgstore: unknown kind: %s", kind)
	}
	root, err := s.queryRows(ctx, k.Root, k.Root.Columns[0], id)
	if err != nil {
		return nil, err
	}
	if len(root) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	subs := make(map[string][]project.Row)
	for _, sub := range k.Subs {
		rows, err := s.queryRows(ctx, sub.Table, sub.Table.FK(), id)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			subs[sub.Table.Name] = rows
		}
	}
	return project.Hydrate(kind, root[0], subs)
}

func (s *Store) queryRows(ctx context.Context, t schema.Table, keyCol, id string) ([]project.Row, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", strings.Join(t.Columns, ", "), t.Name, keyCol)
	rows, err := s.Pool.Query(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name, err)
	}
	defer rows.Close()
	var out []project.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		out = append(out, project.Row(values))
	}
	return out, rows.Err()
}
