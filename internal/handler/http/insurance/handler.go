// Package insurance serves the /insurances routes.
package insurance

import (
	"log/slog"
	"net/http"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/crud"
	"clinic-records/internal/repository"
	insuranceUC "clinic-records/internal/usecase/insurance"
)

// Register mounts the /insurances routes.
func Register(mux *http.ServeMux, svc *insuranceUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	crud.Handler[entity.Insurance]{
		Svc:           svc,
		Names:         insuranceUC.Names,
		Collection:    repository.CollectionInsurances,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}.Register(mux, "/insurances")

	mux.Handle("POST /insurances", CreateHandler{svc})
	mux.Handle("PUT /insurances/{id}", UpdateHandler{svc})
}

type CreateHandler struct{ Svc *insuranceUC.Service }

// ServeHTTP creates an insurance.
// @Summary      Create insurance
// @Tags         insurances
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body insuranceUC.CreateInput true "insurance"
// @Success      201 {object} respond.APIResponse[entity.Insurance]
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      409 {object} respond.ErrorResponse "Duplicate natural key"
// @Failure      500 {object} respond.ErrorResponse
// @Router       /insurances [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Create(w, r, insuranceUC.Names, h.Svc.Create)
}

type UpdateHandler struct{ Svc *insuranceUC.Service }

// ServeHTTP applies the provided fields to one insurance.
// @Summary      Update insurance
// @Tags         insurances
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "insurance ID (UUID)"
// @Param        body body insuranceUC.UpdateInput true "Fields to change"
// @Success      200 {object} respond.APIResponse[entity.Insurance]
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse
// @Router       /insurances/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Update(w, r, insuranceUC.Names, h.Svc.Update)
}
