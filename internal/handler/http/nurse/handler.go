// Package nurse serves the /nurses routes.
package nurse

import (
	"log/slog"
	"net/http"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/crud"
	"clinic-records/internal/repository"
	nurseUC "clinic-records/internal/usecase/nurse"
)

// Register mounts the /nurses routes.
func Register(mux *http.ServeMux, svc *nurseUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	crud.Handler[entity.Nurse]{
		Svc:           svc,
		Names:         nurseUC.Names,
		Collection:    repository.CollectionNurses,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}.Register(mux, "/nurses")

	mux.Handle("POST /nurses", CreateHandler{svc})
	mux.Handle("PUT /nurses/{id}", UpdateHandler{svc})
}

type CreateHandler struct{ Svc *nurseUC.Service }

// ServeHTTP creates a nurse.
// @Summary      Create nurse
// @Tags         nurses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body nurseUC.CreateInput true "nurse"
// @Success      201 {object} respond.APIResponse[entity.Nurse]
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      409 {object} respond.ErrorResponse "Duplicate natural key"
// @Failure      500 {object} respond.ErrorResponse
// @Router       /nurses [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Create(w, r, nurseUC.Names, h.Svc.Create)
}

type UpdateHandler struct{ Svc *nurseUC.Service }

// ServeHTTP applies the provided fields to one nurse.
// @Summary      Update nurse
// @Tags         nurses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "nurse ID (UUID)"
// @Param        body body nurseUC.UpdateInput true "Fields to change"
// @Success      200 {object} respond.APIResponse[entity.Nurse]
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse
// @Router       /nurses/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Update(w, r, nurseUC.Names, h.Svc.Update)
}
