// Package clinicservice serves the /services routes.
package clinicservice

import (
	"log/slog"
	"net/http"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/crud"
	"clinic-records/internal/repository"
	clinicserviceUC "clinic-records/internal/usecase/clinicservice"
)

// Register mounts the /services routes.
func Register(mux *http.ServeMux, svc *clinicserviceUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	crud.Handler[entity.ClinicService]{
		Svc:           svc,
		Names:         clinicserviceUC.Names,
		Collection:    repository.CollectionServices,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}.Register(mux, "/services")

	mux.Handle("POST /services", CreateHandler{svc})
	mux.Handle("PUT /services/{id}", UpdateHandler{svc})
}

type CreateHandler struct{ Svc *clinicserviceUC.Service }

// ServeHTTP creates a service.
// @Summary      Create service
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body clinicserviceUC.CreateInput true "service"
// @Success      201 {object} respond.APIResponse[entity.ClinicService]
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      409 {object} respond.ErrorResponse "Duplicate natural key"
// @Failure      500 {object} respond.ErrorResponse
// @Router       /services [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Create(w, r, clinicserviceUC.Names, h.Svc.Create)
}

type UpdateHandler struct{ Svc *clinicserviceUC.Service }

// ServeHTTP applies the provided fields to one service.
// @Summary      Update service
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "service ID (UUID)"
// @Param        body body clinicserviceUC.UpdateInput true "Fields to change"
// @Success      200 {object} respond.APIResponse[entity.ClinicService]
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse
// @Router       /services/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Update(w, r, clinicserviceUC.Names, h.Svc.Update)
}
