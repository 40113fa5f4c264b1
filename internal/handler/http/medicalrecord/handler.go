// Package medicalrecord serves the /medical-records routes. Records are
// keyed by NIK.
package medicalrecord

import (
	"log/slog"
	"net/http"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/crud"
	"clinic-records/internal/repository"
	medicalrecordUC "clinic-records/internal/usecase/medicalrecord"
)

// Register mounts the /medical-records routes.
func Register(mux *http.ServeMux, svc *medicalrecordUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	crud.Handler[entity.MedicalRecord]{
		Svc:           svc,
		Names:         medicalrecordUC.Names,
		Collection:    repository.CollectionMedicalRecords,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}.Register(mux, "/medical-records")

	mux.Handle("POST /medical-records", CreateHandler{svc})
	mux.Handle("PUT /medical-records/{id}", UpdateHandler{svc})
}

type CreateHandler struct{ Svc *medicalrecordUC.Service }

// ServeHTTP creates a medical record.
// @Summary      Create medical record
// @Tags         medical-records
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body medicalrecordUC.CreateInput true "medical record"
// @Success      201 {object} respond.APIResponse[entity.MedicalRecord]
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      409 {object} respond.ErrorResponse "Duplicate natural key"
// @Failure      500 {object} respond.ErrorResponse
// @Router       /medical-records [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Create(w, r, medicalrecordUC.Names, h.Svc.Create)
}

type UpdateHandler struct{ Svc *medicalrecordUC.Service }

// ServeHTTP applies the provided fields to one medical record.
// @Summary      Update medical record
// @Tags         medical-records
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "medical record ID (UUID)"
// @Param        body body medicalrecordUC.UpdateInput true "Fields to change"
// @Success      200 {object} respond.APIResponse[entity.MedicalRecord]
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse
// @Router       /medical-records/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Update(w, r, medicalrecordUC.Names, h.Svc.Update)
}
