package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"
)

type MedicalRecordRepo struct {
	*Collection[entity.MedicalRecord]
}

func NewMedicalRecordRepo(db *mongo.Database) repository.MedicalRecordRepository {
	return &MedicalRecordRepo{NewCollection[entity.MedicalRecord](db, repository.CollectionMedicalRecords)}
}

func (r *MedicalRecordRepo) FindByNIK(ctx context.Context, nik string) (*entity.MedicalRecord, error) {
	return r.FindOneBy(ctx, "nik", nik)
}

type DoctorRepo struct {
	*Collection[entity.Doctor]
}

func NewDoctorRepo(db *mongo.Database) repository.DoctorRepository {
	return &DoctorRepo{NewCollection[entity.Doctor](db, repository.CollectionDoctors)}
}

func (r *DoctorRepo) FindByNIP(ctx context.Context, nip string) (*entity.Doctor, error) {
	return r.FindOneBy(ctx, "nip", nip)
}

type NurseRepo struct {
	*Collection[entity.Nurse]
}

func NewNurseRepo(db *mongo.Database) repository.NurseRepository {
	return &NurseRepo{NewCollection[entity.Nurse](db, repository.CollectionNurses)}
}

func (r *NurseRepo) FindByNIP(ctx context.Context, nip string) (*entity.Nurse, error) {
	return r.FindOneBy(ctx, "nip", nip)
}

type MedicineRepo struct {
	*Collection[entity.Medicine]
}

func NewMedicineRepo(db *mongo.Database) repository.MedicineRepository {
	return &MedicineRepo{NewCollection[entity.Medicine](db, repository.CollectionMedicines)}
}

func (r *MedicineRepo) FindByBatchNumber(ctx context.Context, batchNumber string) (*entity.Medicine, error) {
	return r.FindOneBy(ctx, "batchNumber", batchNumber)
}

type InsuranceRepo struct {
	*Collection[entity.Insurance]
}

func NewInsuranceRepo(db *mongo.Database) repository.InsuranceRepository {
	return &InsuranceRepo{NewCollection[entity.Insurance](db, repository.CollectionInsurances)}
}

func (r *InsuranceRepo) FindByCode(ctx context.Context, code string) (*entity.Insurance, error) {
	return r.FindOneBy(ctx, "code", code)
}

func NewAppointmentRepo(db *mongo.Database) repository.AppointmentRepository {
	return NewCollection[entity.Appointment](db, repository.CollectionAppointments)
}

func NewClinicServiceRepo(db *mongo.Database) repository.ClinicServiceRepository {
	return NewCollection[entity.ClinicService](db, repository.CollectionServices)
}

func NewFileRepo(db *mongo.Database) repository.FileRepository {
	return NewCollection[entity.File](db, repository.CollectionFiles)
}
