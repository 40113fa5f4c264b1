// Package nurse provides the use cases for nursing staff. NIP is unique.
package nurse

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase/crud"
)

type CreateInput struct {
	Name   string `json:"name" validate:"required"`
	NIP    string `json:"nip" validate:"required,nip"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateInput struct {
	Name   *string `json:"name,omitempty" validate:"omitnil,min=1"`
	NIP    *string `json:"nip,omitempty" validate:"omitnil,nip"`
	Status *string `json:"status,omitempty" validate:"omitnil,oneof=active inactive"`
}

var Names = crud.Names{Singular: "Nurse", Plural: "nurses"}

type Service struct {
	crud.Service[entity.Nurse]
}

func NewService(repo repository.NurseRepository) *Service {
	return &Service{crud.Service[entity.Nurse]{
		Repo:  repo,
		Names: Names,
		Key: &crud.UniqueKey[entity.Nurse]{
			Field: "nip",
			Label: "NIP",
			Value: func(n *entity.Nurse) string { return n.NIP },
			Find:  repo.FindByNIP,
		},
	}}
}

// Create stores a new nurse; status defaults to active.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Nurse, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	if in.Status == "" {
		in.Status = entity.StatusActive
	}
	return s.Service.Create(ctx, &entity.Nurse{Name: in.Name, NIP: in.NIP, Status: in.Status})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Nurse, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	fields, err := crud.Patch(in)
	if err != nil {
		return nil, err
	}
	return s.Service.Update(ctx, id, fields)
}
