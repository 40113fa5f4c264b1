// Package medicalrecord provides the use cases for patient medical records.
// NIK is unique across records and lastVisitDate is stamped with the current
// date whenever a record is created or updated.
package medicalrecord

import (
	"context"
	"time"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase/crud"
)

// CreateInput is the body of a create request.
type CreateInput struct {
	NRME   string `json:"nrme" validate:"required"`
	NIK    string `json:"nik" validate:"required,nik"`
	Name   string `json:"name" validate:"required"`
	DOB    string `json:"dob" validate:"required,date"`
	Gender string `json:"gender" validate:"required"`
	HP     string `json:"hp" validate:"required,phone"`
	Email  string `json:"email" validate:"required,email"`
}

// UpdateInput is the body of an update request. Nil fields are left unchanged.
type UpdateInput struct {
	NRME   *string `json:"nrme,omitempty" validate:"omitnil,min=1"`
	NIK    *string `json:"nik,omitempty" validate:"omitnil,nik"`
	Name   *string `json:"name,omitempty" validate:"omitnil,min=1"`
	DOB    *string `json:"dob,omitempty" validate:"omitnil,date"`
	Gender *string `json:"gender,omitempty" validate:"omitnil,min=1"`
	HP     *string `json:"hp,omitempty" validate:"omitnil,phone"`
	Email  *string `json:"email,omitempty" validate:"omitnil,email"`
}

// Names are used in response messages.
var Names = crud.Names{Singular: "Medical record", Plural: "medical records"}

// Service provides medical record use cases.
type Service struct {
	crud.Service[entity.MedicalRecord]
}

// NewService returns a Service backed by repo.
func NewService(repo repository.MedicalRecordRepository) *Service {
	return &Service{crud.Service[entity.MedicalRecord]{
		Repo:  repo,
		Names: Names,
		Key: &crud.UniqueKey[entity.MedicalRecord]{
			Field: "nik",
			Label: "NIK",
			Value: func(r *entity.MedicalRecord) string { return r.NIK },
			Find:  repo.FindByNIK,
		},
	}}
}

// Create validates in and stores a new record. A NIK already in use is a Conflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.MedicalRecord, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	return s.Service.Create(ctx, &entity.MedicalRecord{
		NRME:          in.NRME,
		NIK:           in.NIK,
		Name:          in.Name,
		DOB:           in.DOB,
		Gender:        in.Gender,
		HP:            in.HP,
		Email:         in.Email,
		LastVisitDate: s.today(),
	})
}

// Update merges the provided fields into the record with id.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.MedicalRecord, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	fields, err := crud.Patch(in)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		fields["lastVisitDate"] = s.today()
	}
	return s.Service.Update(ctx, id, fields)
}

func (s *Service) today() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Format(entity.DateLayout)
}
