// Package crud provides the list, get and delete handlers shared by every
// collection route, plus helpers for the per-entity create and update
// handlers.
package crud

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/common/pagination"
	"clinic-records/internal/handler/http/auth"
	"clinic-records/internal/handler/http/requestid"
	"clinic-records/internal/handler/http/respond"
	"clinic-records/internal/observability/logging"
	crudUC "clinic-records/internal/usecase/crud"
)

// Service is the read and delete side of a collection's use cases.
type Service[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetAllPaginated(ctx context.Context, params pagination.Params) ([]*T, pagination.Metadata, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Handler serves the collection-independent routes of one collection.
type Handler[T any] struct {
	Svc   Service[T]
	Names crudUC.Names
	// Collection labels metrics and logs, e.g. "doctors".
	Collection    string
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// Register mounts GET prefix, GET prefix/all, GET prefix/{id} and
// DELETE prefix/{id}.
func (h Handler[T]) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix, h.List)
	mux.HandleFunc("GET "+prefix+"/all", h.All)
	mux.HandleFunc("GET "+prefix+"/{id}", h.Get)
	mux.HandleFunc("DELETE "+prefix+"/{id}", h.Delete)
}

func (h Handler[T]) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// List returns one page of the collection. Invalid page and limit values
// are corrected, never rejected.
func (h Handler[T]) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	reqID := requestid.FromContext(ctx)
	logger := logging.WithTrace(ctx, h.logger())
	user, _ := auth.UserFromContext(ctx)

	params := pagination.ParseQueryParams(r, h.PaginationCfg)
	pagination.LogRequest(logger, reqID, user, h.Collection, params)

	docs, meta, err := h.Svc.GetAllPaginated(ctx, params)
	if err != nil {
		pagination.RecordError(h.Collection, "database")
		pagination.LogError(logger, reqID, h.Collection, params, err, "database")
		respond.Error(w, err)
		return
	}

	duration := time.Since(start)
	pagination.RecordRequest(h.Collection, http.StatusOK, params.Page)
	pagination.RecordDuration(h.Collection, "handler", duration.Seconds())
	pagination.UpdateTotalCount(h.Collection, meta.Total)
	pagination.LogResponse(logger, reqID, h.Collection, params, len(docs), duration, http.StatusOK)

	respond.Page(w, h.Names.Title()+" retrieved successfully", docs, meta)
}

// All returns the whole collection without pagination.
func (h Handler[T]) All(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Svc.GetAll(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}
	if docs == nil {
		docs = []*T{}
	}
	respond.OK(w, h.Names.Title()+" retrieved successfully", docs)
}

func (h Handler[T]) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	if doc == nil {
		respond.Error(w, apperror.NotFound(h.Names.Singular+" not found"))
		return
	}
	respond.OK(w, h.Names.Singular+" retrieved successfully", doc)
}

// Delete answers 204 with an empty body.
func (h Handler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respond.Error(w, err)
		return
	}
	respond.NoContent(w)
}

// Decode reads a JSON request body into v. Unknown fields are ignored.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return apperror.BadRequest("Request body too large", err.Error())
		case errors.Is(err, io.EOF):
			return apperror.BadRequest("Invalid request body", "request body is empty")
		default:
			return apperror.BadRequest("Invalid request body", err.Error())
		}
	}
	return nil
}

// Create decodes the body into an In, calls create and answers 201 with
// "<Singular> created successfully".
func Create[In, T any](w http.ResponseWriter, r *http.Request, names crudUC.Names, create func(context.Context, In) (*T, error)) {
	var in In
	if err := Decode(r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	doc, err := create(r.Context(), in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Created(w, names.Singular+" created successfully", doc)
}

// Update decodes the body into an In, applies it to the document named by
// the {id} path value and answers 200 with "<Singular> updated successfully".
func Update[In, T any](w http.ResponseWriter, r *http.Request, names crudUC.Names, update func(context.Context, string, In) (*T, error)) {
	var in In
	if err := Decode(r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	doc, err := update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.OK(w, names.Singular+" updated successfully", doc)
}
