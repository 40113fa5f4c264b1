// Package medicine serves the /medicines routes.
package medicine

import (
	"log/slog"
	"net/http"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/crud"
	"clinic-records/internal/repository"
	medicineUC "clinic-records/internal/usecase/medicine"
)

// Register mounts the /medicines routes.
func Register(mux *http.ServeMux, svc *medicineUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	crud.Handler[entity.Medicine]{
		Svc:           svc,
		Names:         medicineUC.Names,
		Collection:    repository.CollectionMedicines,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}.Register(mux, "/medicines")

	mux.Handle("POST /medicines", CreateHandler{svc})
	mux.Handle("PUT /medicines/{id}", UpdateHandler{svc})
}

type CreateHandler struct{ Svc *medicineUC.Service }

// ServeHTTP creates a medicine.
// @Summary      Create medicine
// @Tags         medicines
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body medicineUC.CreateInput true "medicine"
// @Success      201 {object} respond.APIResponse[entity.Medicine]
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      409 {object} respond.ErrorResponse "Duplicate natural key"
// @Failure      500 {object} respond.ErrorResponse
// @Router       /medicines [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Create(w, r, medicineUC.Names, h.Svc.Create)
}

type UpdateHandler struct{ Svc *medicineUC.Service }

// ServeHTTP applies the provided fields to one medicine.
// @Summary      Update medicine
// @Tags         medicines
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "medicine ID (UUID)"
// @Param        body body medicineUC.UpdateInput true "Fields to change"
// @Success      200 {object} respond.APIResponse[entity.Medicine]
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse
// @Router       /medicines/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Update(w, r, medicineUC.Names, h.Svc.Update)
}
