// Package appointment serves the /appointments routes.
package appointment

import (
	"log/slog"
	"net/http"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/crud"
	"clinic-records/internal/repository"
	appointmentUC "clinic-records/internal/usecase/appointment"
)

// Register mounts the /appointments routes.
func Register(mux *http.ServeMux, svc *appointmentUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	crud.Handler[entity.Appointment]{
		Svc:           svc,
		Names:         appointmentUC.Names,
		Collection:    repository.CollectionAppointments,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}.Register(mux, "/appointments")

	mux.Handle("POST /appointments", CreateHandler{svc})
	mux.Handle("PUT /appointments/{id}", UpdateHandler{svc})
}

type CreateHandler struct{ Svc *appointmentUC.Service }

// ServeHTTP creates an appointment.
// @Summary      Create appointment
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body appointmentUC.CreateInput true "appointment"
// @Success      201 {object} respond.APIResponse[entity.Appointment]
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      409 {object} respond.ErrorResponse "Duplicate natural key"
// @Failure      500 {object} respond.ErrorResponse
// @Router       /appointments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Create(w, r, appointmentUC.Names, h.Svc.Create)
}

type UpdateHandler struct{ Svc *appointmentUC.Service }

// ServeHTTP applies the provided fields to one appointment.
// @Summary      Update appointment
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "appointment ID (UUID)"
// @Param        body body appointmentUC.UpdateInput true "Fields to change"
// @Success      200 {object} respond.APIResponse[entity.Appointment]
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse
// @Router       /appointments/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	crud.Update(w, r, appointmentUC.Names, h.Svc.Update)
}
