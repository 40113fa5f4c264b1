// Package doctor provides the use cases for doctors. NIP is unique.
package doctor

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase/crud"
)

// CreateInput is the body of a create request. Status defaults to active.
type CreateInput struct {
	Name           string `json:"name" validate:"required"`
	NIP            string `json:"nip" validate:"required,nip"`
	SIP            string `json:"sip" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateInput is the body of an update request. Nil fields are left unchanged.
type UpdateInput struct {
	Name           *string `json:"name,omitempty" validate:"omitnil,min=1"`
	NIP            *string `json:"nip,omitempty" validate:"omitnil,nip"`
	SIP            *string `json:"sip,omitempty" validate:"omitnil,min=1"`
	Specialization *string `json:"specialization,omitempty" validate:"omitnil,min=1"`
	Status         *string `json:"status,omitempty" validate:"omitnil,oneof=active inactive"`
}

var Names = crud.Names{Singular: "Doctor", Plural: "doctors"}

// Service provides doctor use cases.
type Service struct {
	crud.Service[entity.Doctor]
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{crud.Service[entity.Doctor]{
		Repo:  repo,
		Names: Names,
		Key: &crud.UniqueKey[entity.Doctor]{
			Field: "nip",
			Label: "NIP",
			Value: func(d *entity.Doctor) string { return d.NIP },
			Find:  repo.FindByNIP,
		},
	}}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Doctor, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	if in.Status == "" {
		in.Status = entity.StatusActive
	}
	return s.Service.Create(ctx, &entity.Doctor{
		Name:           in.Name,
		NIP:            in.NIP,
		SIP:            in.SIP,
		Specialization: in.Specialization,
		Status:         in.Status,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Doctor, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	fields, err := crud.Patch(in)
	if err != nil {
		return nil, err
	}
	return s.Service.Update(ctx, id, fields)
}
