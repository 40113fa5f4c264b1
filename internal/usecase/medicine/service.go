// Package medicine provides the use cases for medicine stock batches.
// Batch numbers are unique.
package medicine

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase/crud"
)

// CreateInput is the body of a create request. Dates are YYYY-MM-DD.
type CreateInput struct {
	MasterMedicineID string  `json:"masterMedicineId" validate:"required"`
	BatchNumber      string  `json:"batchNumber" validate:"required"`
	TradeName        string  `json:"tradeName" validate:"required"`
	ProductionDate   string  `json:"productionDate" validate:"required,date"`
	ExpiredDate      string  `json:"expiredDate" validate:"required,date"`
	PurchasePrice    float64 `json:"purchasePrice" validate:"gte=0"`
	SellingPrice     float64 `json:"sellingPrice" validate:"gte=0"`
	Qty              float64 `json:"qty" validate:"gte=0"`
	Manufacturer     string  `json:"manufacturer"`
}

// UpdateInput is the body of an update request. Nil fields are left unchanged.
type UpdateInput struct {
	MasterMedicineID *string  `json:"masterMedicineId,omitempty" validate:"omitnil,min=1"`
	BatchNumber      *string  `json:"batchNumber,omitempty" validate:"omitnil,min=1"`
	TradeName        *string  `json:"tradeName,omitempty" validate:"omitnil,min=1"`
	ProductionDate   *string  `json:"productionDate,omitempty" validate:"omitnil,date"`
	ExpiredDate      *string  `json:"expiredDate,omitempty" validate:"omitnil,date"`
	PurchasePrice    *float64 `json:"purchasePrice,omitempty" validate:"omitnil,gte=0"`
	SellingPrice     *float64 `json:"sellingPrice,omitempty" validate:"omitnil,gte=0"`
	Qty              *float64 `json:"qty,omitempty" validate:"omitnil,gte=0"`
	Manufacturer     *string  `json:"manufacturer,omitempty"`
}

// Names are used in response messages.
var Names = crud.Names{Singular: "Medicine", Plural: "medicines"}

// Service provides medicine use cases.
type Service struct {
	crud.Service[entity.Medicine]
}

// NewService returns a Service backed by repo.
func NewService(repo repository.MedicineRepository) *Service {
	return &Service{crud.Service[entity.Medicine]{
		Repo:  repo,
		Names: Names,
		Key: &crud.UniqueKey[entity.Medicine]{
			Field: "batchNumber",
			Label: "Batch number",
			Value: func(m *entity.Medicine) string { return m.BatchNumber },
			Find:  repo.FindByBatchNumber,
		},
	}}
}

// Create validates in and stores a new batch. The expiry date must not
// precede the production date, and a batch number already in use is a Conflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Medicine, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	if err := checkShelfLife(in.ProductionDate, in.ExpiredDate); err != nil {
		return nil, crud.Invalid(err)
	}
	return s.Service.Create(ctx, &entity.Medicine{
		MasterMedicineID: in.MasterMedicineID,
		BatchNumber:      in.BatchNumber,
		TradeName:        in.TradeName,
		ProductionDate:   in.ProductionDate,
		ExpiredDate:      in.ExpiredDate,
		PurchasePrice:    in.PurchasePrice,
		SellingPrice:     in.SellingPrice,
		Qty:              in.Qty,
		Manufacturer:     in.Manufacturer,
	})
}

// Update merges the provided fields. The expiry check applies only when
// both dates are part of the update.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Medicine, error) {
	if err := entity.Validate(in); err != nil {
		return nil, crud.Invalid(err)
	}
	if in.ProductionDate != nil && in.ExpiredDate != nil {
		if err := checkShelfLife(*in.ProductionDate, *in.ExpiredDate); err != nil {
			return nil, crud.Invalid(err)
		}
	}
	fields, err := crud.Patch(in)
	if err != nil {
		return nil, err
	}
	return s.Service.Update(ctx, id, fields)
}

// checkShelfLife rejects an expiry before production. Both dates are
// YYYY-MM-DD, so they compare lexically.
func checkShelfLife(production, expired string) error {
	if expired < production {
		return &entity.ValidationError{Field: "expiredDate", Message: "expiredDate must not be before productionDate"}
	}
	return nil
}
