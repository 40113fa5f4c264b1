// Package memory keeps document collections in process memory. It backs the
// "memory" database driver used for local runs and the service tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
)

// Collection implements repository.Repository[T] in insertion order.
type Collection[T any] struct {
	mu   sync.RWMutex
	docs []*T

	// Err, when set, is returned by every operation.
	Err error
	// Inserts counts successful Insert calls.
	Inserts int
}

// NewCollection returns a Collection holding docs.
func NewCollection[T any](docs ...*T) *Collection[T] {
	return &Collection[T]{docs: append([]*T(nil), docs...)}
}

func (c *Collection[T]) FindAll(_ context.Context) ([]*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, c.Err
	}
	return append(make([]*T, 0, len(c.docs)), c.docs...), nil
}

func (c *Collection[T]) FindAllPaginated(_ context.Context, params pagination.Params) ([]*T, uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, 0, c.Err
	}

	total := len(c.docs)
	start := min(max(params.Offset(), 0), total)
	end := min(start+params.Limit, total)
	return append(make([]*T, 0, end-start), c.docs[start:end]...), uint64(total), nil
}

func (c *Collection[T]) FindByID(_ context.Context, id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, c.Err
	}
	if i := c.indexOf(id); i >= 0 {
		return c.docs[i], nil
	}
	return nil, nil
}

// FindOneBy returns the first document whose JSON field equals value.
func (c *Collection[T]) FindOneBy(_ context.Context, field, value string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, c.Err
	}
	for _, doc := range c.docs {
		m, err := toMap(doc)
		if err != nil {
			return nil, err
		}
		if s, ok := m[field].(string); ok && s == value {
			return doc, nil
		}
	}
	return nil, nil
}

func (c *Collection[T]) Insert(_ context.Context, doc *T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	d, ok := any(doc).(entity.Document)
	if !ok {
		return nil, fmt.Errorf("Insert: %T does not implement entity.Document", doc)
	}
	entity.EnsureID(d)
	c.docs = append(c.docs, doc)
	c.Inserts++
	return doc, nil
}

// Update merges fields by JSON name. id and createdAt are never changed.
func (c *Collection[T]) Update(_ context.Context, id string, fields map[string]any) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}

	i := c.indexOf(id)
	if i < 0 {
		return nil, entity.ErrNotFound
	}

	m, err := toMap(c.docs[i])
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	for k, v := range fields {
		switch k {
		case "id", "_id", "createdAt":
			continue
		}
		m[k] = v
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	var updated T
	if err := json.Unmarshal(b, &updated); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	c.docs[i] = &updated
	return &updated, nil
}

func (c *Collection[T]) Delete(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return false, c.Err
	}
	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return true, nil
}

// Len returns the number of stored documents.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

func (c *Collection[T]) indexOf(id string) int {
	for i, doc := range c.docs {
		if d, ok := any(doc).(entity.Document); ok && d.GetID() == id {
			return i
		}
	}
	return -1
}

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
