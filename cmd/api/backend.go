package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"clinic-records/internal/config"
	hhttp "clinic-records/internal/handler/http"
	"clinic-records/internal/infra/adapter/persistence/memory"
	"clinic-records/internal/infra/adapter/persistence/mongodb"
	"clinic-records/internal/infra/adapter/persistence/postgres"
	"clinic-records/internal/infra/db"
	"clinic-records/internal/infra/storage"
	"clinic-records/internal/repository"
	appointmentUC "clinic-records/internal/usecase/appointment"
	clinicserviceUC "clinic-records/internal/usecase/clinicservice"
	doctorUC "clinic-records/internal/usecase/doctor"
	fileUC "clinic-records/internal/usecase/file"
	insuranceUC "clinic-records/internal/usecase/insurance"
	medicalrecordUC "clinic-records/internal/usecase/medicalrecord"
	medicineUC "clinic-records/internal/usecase/medicine"
	nurseUC "clinic-records/internal/usecase/nurse"
)

// repositories holds one repository per collection for the configured driver.
type repositories struct {
	medicalRecords repository.MedicalRecordRepository
	doctors        repository.DoctorRepository
	nurses         repository.NurseRepository
	medicines      repository.MedicineRepository
	appointments   repository.AppointmentRepository
	services       repository.ClinicServiceRepository
	insurances     repository.InsuranceRepository
	files          repository.FileRepository
}

// backend is the opened database with its health check and closer.
type backend struct {
	repos    repositories
	database hhttp.Checker
	close    func(context.Context) error
}

func connectionConfig(cfg config.DatabaseConfig) db.ConnectionConfig {
	return db.ConnectionConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}
}

// openBackend connects the configured driver. When migrate is true the
// collection tables or indexes are created first.
func openBackend(ctx context.Context, cfg config.DatabaseConfig, migrate bool) (*backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, database, err := db.OpenMongo(ctx, cfg.URL, cfg.Name, connectionConfig(cfg))
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := db.MigrateMongo(ctx, database); err != nil {
				_ = client.Disconnect(ctx)
				return nil, fmt.Errorf("migrate mongo: %w", err)
			}
		}
		return &backend{
			repos: repositories{
				medicalRecords: mongodb.NewMedicalRecordRepo(database),
				doctors:        mongodb.NewDoctorRepo(database),
				nurses:         mongodb.NewNurseRepo(database),
				medicines:      mongodb.NewMedicineRepo(database),
				appointments:   mongodb.NewAppointmentRepo(database),
				services:       mongodb.NewClinicServiceRepo(database),
				insurances:     mongodb.NewInsuranceRepo(database),
				files:          mongodb.NewFileRepo(database),
			},
			database: hhttp.PingCheck(func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			}),
			close: client.Disconnect,
		}, nil

	case config.DriverPostgres:
		sqlDB, err := db.OpenPostgres(ctx, cfg.URL, connectionConfig(cfg))
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := db.MigrateUp(sqlDB); err != nil {
				_ = sqlDB.Close()
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		return &backend{
			repos: repositories{
				medicalRecords: postgres.NewMedicalRecordRepo(sqlDB),
				doctors:        postgres.NewDoctorRepo(sqlDB),
				nurses:         postgres.NewNurseRepo(sqlDB),
				medicines:      postgres.NewMedicineRepo(sqlDB),
				appointments:   postgres.NewAppointmentRepo(sqlDB),
				services:       postgres.NewClinicServiceRepo(sqlDB),
				insurances:     postgres.NewInsuranceRepo(sqlDB),
				files:          postgres.NewFileRepo(sqlDB),
			},
			database: hhttp.SQLCheck{DB: sqlDB},
			close:    func(context.Context) error { return sqlDB.Close() },
		}, nil

	case config.DriverMemory:
		slog.Warn("using the in-memory store; data is lost on restart")
		store := memory.NewStore()
		return &backend{
			repos: repositories{
				medicalRecords: memory.NewMedicalRecordRepo(store),
				doctors:        memory.NewDoctorRepo(store),
				nurses:         memory.NewNurseRepo(store),
				medicines:      memory.NewMedicineRepo(store),
				appointments:   memory.NewAppointmentRepo(store),
				services:       memory.NewClinicServiceRepo(store),
				insurances:     memory.NewInsuranceRepo(store),
				files:          memory.NewFileRepo(store),
			},
			database: hhttp.StaticCheck("in-memory store"),
			close:    func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
}

// objectStore is the file content store with a bucket probe for /health.
type objectStore interface {
	fileUC.ObjectStore
	Ping(ctx context.Context) error
}

// openObjectStore connects S3-compatible storage, or keeps objects in memory
// when no endpoint is configured.
func openObjectStore(cfg config.StorageConfig) (objectStore, error) {
	if cfg.Endpoint == "" {
		slog.Warn("AWS_ENDPOINT is not set; uploaded files are kept in memory")
		return storage.NewMemoryStore(cfg.Bucket), nil
	}
	return storage.NewS3Store(storage.Config{
		Endpoint:        cfg.Endpoint,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
		Region:          cfg.Region,
		Bucket:          cfg.Bucket,
		UsePathStyle:    cfg.UsePathStyle,
	})
}

// services holds the use cases of every collection.
type services struct {
	medicalRecords *medicalrecordUC.Service
	doctors        *doctorUC.Service
	nurses         *nurseUC.Service
	medicines      *medicineUC.Service
	appointments   *appointmentUC.Service
	clinicServices *clinicserviceUC.Service
	insurances     *insuranceUC.Service
	files          *fileUC.Service
}

func newServices(r repositories, store fileUC.ObjectStore, uploadMaxBytes int64) services {
	return services{
		medicalRecords: medicalrecordUC.NewService(r.medicalRecords),
		doctors:        doctorUC.NewService(r.doctors),
		nurses:         nurseUC.NewService(r.nurses),
		medicines:      medicineUC.NewService(r.medicines),
		appointments:   appointmentUC.NewService(r.appointments),
		clinicServices: clinicserviceUC.NewService(r.services),
		insurances:     insuranceUC.NewService(r.insurances),
		files:          fileUC.NewService(r.files, store, uploadMaxBytes),
	}
}
