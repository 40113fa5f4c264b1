// Package doctor serves the /doctors routes.
package doctor

import (
	"log/slog"
	"net/http"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/crud"
	"clinic-records/internal/repository"
	doctorUC "clinic-records/internal/usecase/doctor"
)

// Register mounts the /doctors routes.
func Register(mux *http.ServeMux, svc *doctorUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	crud.Handler[entity.Doctor]{
		Svc:           svc,
		Names:         doctorUC.Names,
		Collection:    repository.CollectionDoctors,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}.Register(mux, "/doctors")

	mux.Handle("POST /doctors", CreateHandler{svc})
	mux.Handle("PUT /doctors/{id}", UpdateHandler{svc})
}

type CreateHandler struct{ Svc *doctorUC.Service }

// ServeHTTP creates a doctor.
// @Summary      Create doctor
// @Tags         doctors
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body doctorUC.CreateInput true "doctor"
// @Success      201 {object} respond.APIResponse[entity.Doctor]
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      409 {object} respond.ErrorResponse "Duplicate natural key"
// @Failure      500 {object} respond.ErrorResponse
// @Router       /doctors [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Create(w, r, doctorUC.Names, h.Svc.Create)
}

type UpdateHandler struct{ Svc *doctorUC.Service }

// ServeHTTP applies the provided fields to one doctor.
// @Summary      Update doctor
// @Tags         doctors
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "doctor ID (UUID)"
// @Param        body body doctorUC.UpdateInput true "Fields to change"
// @Success      200 {object} respond.APIResponse[entity.Doctor]
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse
// @Router       /doctors/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Update(w, r, doctorUC.Names, h.Svc.Update)
}
