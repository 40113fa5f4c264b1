package memory

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
)

type MedicalRecordRepo struct {
	*Collection[entity.MedicalRecord]
}

func NewMedicalRecordRepo(db *Store) repository.MedicalRecordRepository {
	return &MedicalRecordRepo{collectionFor[entity.MedicalRecord](db, repository.CollectionMedicalRecords)}
}

func (r *MedicalRecordRepo) FindByNIK(ctx context.Context, nik string) (*entity.MedicalRecord, error) {
	return r.FindOneBy(ctx, "nik", nik)
}

type DoctorRepo struct {
	*Collection[entity.Doctor]
}

func NewDoctorRepo(db *Store) repository.DoctorRepository {
	return &DoctorRepo{collectionFor[entity.Doctor](db, repository.CollectionDoctors)}
}

func (r *DoctorRepo) FindByNIP(ctx context.Context, nip string) (*entity.Doctor, error) {
	return r.FindOneBy(ctx, "nip", nip)
}

type NurseRepo struct {
	*Collection[entity.Nurse]
}

func NewNurseRepo(db *Store) repository.NurseRepository {
	return &NurseRepo{collectionFor[entity.Nurse](db, repository.CollectionNurses)}
}

func (r *NurseRepo) FindByNIP(ctx context.Context, nip string) (*entity.Nurse, error) {
	return r.FindOneBy(ctx, "nip", nip)
}

type MedicineRepo struct {
	*Collection[entity.Medicine]
}

func NewMedicineRepo(db *Store) repository.MedicineRepository {
	return &MedicineRepo{collectionFor[entity.Medicine](db, repository.CollectionMedicines)}
}

func (r *MedicineRepo) FindByBatchNumber(ctx context.Context, batchNumber string) (*entity.Medicine, error) {
	return r.FindOneBy(ctx, "batchNumber", batchNumber)
}

type InsuranceRepo struct {
	*Collection[entity.Insurance]
}

func NewInsuranceRepo(db *Store) repository.InsuranceRepository {
	return &InsuranceRepo{collectionFor[entity.Insurance](db, repository.CollectionInsurances)}
}

func (r *InsuranceRepo) FindByCode(ctx context.Context, code string) (*entity.Insurance, error) {
	return r.FindOneBy(ctx, "code", code)
}

func NewAppointmentRepo(db *Store) repository.AppointmentRepository {
	return collectionFor[entity.Appointment](db, repository.CollectionAppointments)
}

func NewClinicServiceRepo(db *Store) repository.ClinicServiceRepository {
	return collectionFor[entity.ClinicService](db, repository.CollectionServices)
}

func NewFileRepo(db *Store) repository.FileRepository {
	return collectionFor[entity.File](db, repository.CollectionFiles)
}
