// Package crud implements the service operations shared by every document
// collection: listing, pagination, lookup, uniqueness-checked creation,
// partial update and deletion. Entity packages add input validation and
// defaults on top of it.
//
// Every error returned by Service is an *apperror.Error.
package crud

import (
	"context"
	"errors"
	"time"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
)

// Names are the human-readable names used in messages, e.g.
// {Singular: "Medical record", Plural: "medical records"}.
type Names struct {
	Singular string
	Plural   string
}

// UniqueKey describes a field whose value may be held by at most one document.
type UniqueKey[T any] struct {
	// Field is the stored field name, e.g. "nik".
	Field string
	// Label names the field in conflict messages, e.g. "NIK".
	Label string
	// Value extracts the key from a document.
	Value func(doc *T) string
	// Find returns the document holding value, or nil.
	Find func(ctx context.Context, value string) (*T, error)
}

// Service provides the CRUD use cases for one collection.
type Service[T any] struct {
	Repo  repository.Repository[T]
	Names Names
	// Key is nil for collections without a natural key.
	Key *UniqueKey[T]
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Service[T]) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetAll returns every document.
func (s *Service[T]) GetAll(ctx context.Context) ([]*T, error) {
	docs, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to retrieve "+s.Names.Plural, err)
	}
	return docs, nil
}

// GetAllPaginated returns one page of documents and its metadata. params
// must already be resolved.
func (s *Service[T]) GetAllPaginated(ctx context.Context, params pagination.Params) ([]*T, pagination.Metadata, error) {
	docs, total, err := s.Repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, pagination.Metadata{}, apperror.Internal("Failed to retrieve "+s.Names.Plural, err)
	}
	return docs, pagination.NewMetadata(params, total), nil
}

// GetByID returns the document with id, or (nil, nil) when there is none.
func (s *Service[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	doc, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to retrieve "+s.Names.Lower(), err)
	}
	return doc, nil
}

// Create checks the natural key, assigns id and timestamps, and inserts doc.
// A key already in use yields a Conflict and nothing is inserted.
func (s *Service[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if s.Key != nil {
		if err := s.checkUnique(ctx, s.Key.Value(doc), ""); err != nil {
			return nil, err
		}
	}

	if d, ok := any(doc).(entity.Document); ok {
		entity.EnsureID(d)
		d.Touch(s.now())
	}

	created, err := s.Repo.Insert(ctx, doc)
	if err != nil {
		return nil, apperror.Internal("Failed to create "+s.Names.Lower(), err)
	}
	return created, nil
}

// Update merges fields into the document with id and stamps updatedAt.
// Changing the natural key to a value held by another document is a Conflict.
func (s *Service[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, apperror.BadRequest("No fields to update", "request body must contain at least one field")
	}

	if s.Key != nil {
		if v, ok := fields[s.Key.Field].(string); ok {
			if err := s.checkUnique(ctx, v, id); err != nil {
				return nil, err
			}
		}
	}

	patch := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updatedAt"] = s.now()

	updated, err := s.Repo.Update(ctx, id, patch)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, apperror.NotFound(s.Names.Singular + " not found")
	}
	if err != nil {
		return nil, apperror.Internal("Failed to update "+s.Names.Lower(), err)
	}
	return updated, nil
}

// Delete removes the document with id. A missing document is a NotFound.
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal("Failed to delete "+s.Names.Lower(), err)
	}
	if !deleted {
		return apperror.NotFound(s.Names.Singular + " not found")
	}
	return nil
}

// checkUnique fails when value is held by a document other than selfID.
func (s *Service[T]) checkUnique(ctx context.Context, value, selfID string) error {
	existing, err := s.Key.Find(ctx, value)
	if err != nil {
		return apperror.Internal("Failed to check "+s.Key.Label+" uniqueness", err)
	}
	if existing == nil {
		return nil
	}
	if d, ok := any(existing).(entity.Document); ok && selfID != "" && d.GetID() == selfID {
		return nil
	}
	return apperror.Conflict(s.Key.Label+" already exists", s.Names.Singular+" with "+s.Key.Label+" "+value+" already exists")
}

func checkID(id string) error {
	if !entity.IsValidID(id) {
		return apperror.BadRequest("Invalid ID format", "ID must be a valid UUID")
	}
	return nil
}
