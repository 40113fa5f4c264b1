// Package clinicservice provides the use cases for the services offered by
// the clinic, e.g. consultations and laboratory tests.
package clinicservice

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase/crud"
)

type CreateInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	SubCategory string `json:"subCategory"`
}

type UpdateInput struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Category    *string `json:"category,omitempty" validate:"omitnil,min=1"`
	SubCategory *string `json:"subCategory,omitempty"`
}

var Names = crud.Names{Singular: "Service", Plural: "services"}

type Service struct {
	crud.Service[entity.ClinicService]
}

func NewService(repo repository.ClinicServiceRepository) *Service {
	return &Service{crud.Service[entity.ClinicService]{Repo: repo, Names: Names}}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.ClinicService, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	return s.Service.Create(ctx, &entity.ClinicService{
		Name:        in.Name,
		Category:    in.Category,
		SubCategory: in.SubCategory,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.ClinicService, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	fields, err := crud.Patch(in)
	if err != nil {
		return nil, err
	}
	return s.Service.Update(ctx, id, fields)
}
