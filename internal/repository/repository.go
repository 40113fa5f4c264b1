// Package repository declares the data-access contracts of the document
// collections. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
)

// Repository is the data-access contract shared by every collection.
//
// FindByID returns (nil, nil) when no document has the id. Update merges only
// the given fields and returns entity.ErrNotFound when the id does not exist.
// Delete reports whether a document was removed. Any other error is a storage
// failure passed through unclassified.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	// FindAllPaginated counts all documents and fetches one page with the
	// same filter. The two reads are not isolated from concurrent writes.
	FindAllPaginated(ctx context.Context, params pagination.Params) ([]*T, uint64, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, doc *T) (*T, error)
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// The natural-key lookups below return (nil, nil) when no document matches.
// They back the uniqueness pre-check done before inserts and key changes.

type MedicalRecordRepository interface {
	Repository[entity.MedicalRecord]
	FindByNIK(ctx context.Context, nik string) (*entity.MedicalRecord, error)
}

type DoctorRepository interface {
	Repository[entity.Doctor]
	FindByNIP(ctx context.Context, nip string) (*entity.Doctor, error)
}

type NurseRepository interface {
	Repository[entity.Nurse]
	FindByNIP(ctx context.Context, nip string) (*entity.Nurse, error)
}

type MedicineRepository interface {
	Repository[entity.Medicine]
	FindByBatchNumber(ctx context.Context, batchNumber string) (*entity.Medicine, error)
}

type InsuranceRepository interface {
	Repository[entity.Insurance]
	FindByCode(ctx context.Context, code string) (*entity.Insurance, error)
}

type AppointmentRepository = Repository[entity.Appointment]

type ClinicServiceRepository = Repository[entity.ClinicService]

type FileRepository = Repository[entity.File]
