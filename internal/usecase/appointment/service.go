// Package appointment provides the use cases for appointments. Patient and
// doctor ids are stored as given and are not resolved.
package appointment

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase/crud"
)

type CreateInput struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required,date"`
	Time      string `json:"time" validate:"required,clock"`
	Status    string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type UpdateInput struct {
	PatientID *string `json:"patientId,omitempty" validate:"omitnil,min=1"`
	DoctorID  *string `json:"doctorId,omitempty" validate:"omitnil,min=1"`
	Date      *string `json:"date,omitempty" validate:"omitnil,date"`
	Time      *string `json:"time,omitempty" validate:"omitnil,clock"`
	Status    *string `json:"status,omitempty" validate:"omitnil,oneof=scheduled completed cancelled"`
}

var Names = crud.Names{Singular: "Appointment", Plural: "appointments"}

type Service struct {
	crud.Service[entity.Appointment]
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{crud.Service[entity.Appointment]{Repo: repo, Names: Names}}
}

// Create stores a new appointment; status defaults to scheduled.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Appointment, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	if in.Status == "" {
		in.Status = entity.AppointmentScheduled
	}
	return s.Service.Create(ctx, &entity.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    in.Status,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Appointment, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	fields, err := crud.Patch(in)
	if err != nil {
		return nil, err
	}
	return s.Service.Update(ctx, id, fields)
}
