// Package insurance provides the use cases for accepted insurance providers.
// Insurance codes are unique.
package insurance

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase/crud"
)

type CreateInput struct {
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Code   string `json:"code" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateInput struct {
	Name   *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Type   *string `json:"type,omitempty" validate:"omitnil,min=1"`
	Code   *string `json:"code,omitempty" validate:"omitnil,min=1"`
	Status *string `json:"status,omitempty" validate:"omitnil,oneof=active inactive"`
}

var Names = crud.Names{Singular: "Insurance", Plural: "insurances"}

type Service struct {
	crud.Service[entity.Insurance]
}

func NewService(repo repository.InsuranceRepository) *Service {
	return &Service{crud.Service[entity.Insurance]{
		Repo:  repo,
		Names: Names,
		Key: &crud.UniqueKey[entity.Insurance]{
			Field: "code",
			Label: "Insurance code",
			Value: func(i *entity.Insurance) string { return i.Code },
			Find:  repo.FindByCode,
		},
	}}
}

// Create stores a new insurance; status defaults to active.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Insurance, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	if in.Status == "" {
		in.Status = entity.StatusActive
	}
	return s.Service.Create(ctx, &entity.Insurance{
		Name:   in.Name,
		Type:   in.Type,
		Code:   in.Code,
		Status: in.Status,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Insurance, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	fields, err := crud.Patch(in)
	if err != nil {
		return nil, err
	}
	return s.Service.Update(ctx, id, fields)
}
