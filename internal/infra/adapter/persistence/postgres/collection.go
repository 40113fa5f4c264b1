// Package postgres stores document collections in PostgreSQL. Each
// collection is a table of (id, doc JSONB, created_at) rows; partial updates
// merge into the stored document with the jsonb || operator.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/observability/metrics"
)

// immutableFields are never overwritten by Update.
var immutableFields = []string{"id", "_id", "createdAt"}

// Collection implements repository.Repository[T] over one table.
type Collection[T any] struct {
	db    *sql.DB
	name  string
	table string
}

// NewCollection returns a Collection backed by the table of the same name.
func NewCollection[T any](db *sql.DB, name string) *Collection[T] {
	return &Collection[T]{
		db:    db,
		name:  name,
		table: pgx.Identifier{name}.Sanitize(),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) FindAll(ctx context.Context) ([]*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "find_all", time.Now())
	query := fmt.Sprintf(`
SELECT doc
FROM %s
ORDER BY created_at ASC, id ASC`, c.table)
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	docs, err := scanDocs[T](rows)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	return docs, nil
}

// FindAllPaginated runs the count and the page query separately, outside a
// transaction.
func (c *Collection[T]) FindAllPaginated(ctx context.Context, params pagination.Params) ([]*T, uint64, error) {
	defer metrics.ObserveDBQuery(c.Name(), "find_all_paginated", time.Now())
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, c.table)
	var total int64
	if err := c.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("FindAllPaginated: count: %w", err)
	}

	pageQuery := fmt.Sprintf(`
SELECT doc
FROM %s
ORDER BY created_at ASC, id ASC
LIMIT $1 OFFSET $2`, c.table)
	rows, err := c.db.QueryContext(ctx, pageQuery, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("FindAllPaginated: %w", err)
	}
	docs, err := scanDocs[T](rows)
	if err != nil {
		return nil, 0, fmt.Errorf("FindAllPaginated: %w", err)
	}
	return docs, uint64(total), nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "find_by_id", time.Now())
	query := fmt.Sprintf(`
SELECT doc
FROM %s
WHERE id = $1
LIMIT 1`, c.table)
	doc, err := c.queryOne(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return doc, nil
}

// FindOneBy returns the oldest document whose top-level field equals value.
func (c *Collection[T]) FindOneBy(ctx context.Context, field, value string) (*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "find_one_by", time.Now())
	query := fmt.Sprintf(`
SELECT doc
FROM %s
WHERE doc->>$1 = $2
ORDER BY created_at ASC
LIMIT 1`, c.table)
	doc, err := c.queryOne(ctx, query, field, value)
	if err != nil {
		return nil, fmt.Errorf("FindOneBy: %w", err)
	}
	return doc, nil
}

// Insert assigns an id when doc has none and stores it.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "insert", time.Now())
	d, ok := any(doc).(entity.Document)
	if !ok {
		return nil, fmt.Errorf("Insert: %T does not implement entity.Document", doc)
	}
	entity.EnsureID(d)

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("Insert: marshal: %w", err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, c.table)
	if _, err := c.db.ExecContext(ctx, query, d.GetID(), body); err != nil {
		return nil, fmt.Errorf("Insert: %w", err)
	}
	return doc, nil
}

// Update merges fields into the stored document. It returns
// entity.ErrNotFound when no row has the id.
func (c *Collection[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "update", time.Now())
	patch := make(map[string]any, len(fields))
	for k, v := range fields {
		patch[k] = v
	}
	for _, k := range immutableFields {
		delete(patch, k)
	}
	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("Update: marshal: %w", err)
	}

	query := fmt.Sprintf(`
UPDATE %s
SET doc = doc || $2::jsonb
WHERE id = $1
RETURNING doc`, c.table)
	doc, err := c.queryOne(ctx, query, id, body)
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	if doc == nil {
		return nil, entity.ErrNotFound
	}
	return doc, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	defer metrics.ObserveDBQuery(c.Name(), "delete", time.Now())
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table)
	res, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return n > 0, nil
}

// queryOne decodes the single doc column of the first row, or returns
// (nil, nil) when there is none.
func (c *Collection[T]) queryOne(ctx context.Context, query string, args ...any) (*T, error) {
	var raw []byte
	err := c.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

func scanDocs[T any](rows *sql.Rows) ([]*T, error) {
	defer func() { _ = rows.Close() }()

	docs := make([]*T, 0, 16)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		doc, err := decode[T](raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func decode[T any](raw []byte) (*T, error) {
	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal doc: %w", err)
	}
	return &doc, nil
}
