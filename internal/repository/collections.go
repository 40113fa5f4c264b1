package repository

// Collection names shared by the storage adapters and migrations.
const (
	CollectionMedicalRecords = "medical_records"
	CollectionDoctors        = "doctors"
	CollectionNurses         = "nurses"
	CollectionMedicines      = "medicines"
	CollectionAppointments   = "appointments"
	CollectionServices       = "services"
	CollectionInsurances     = "insurances"
	CollectionFiles          = "files"
)

// Collections lists every collection name.
var Collections = []string{
	CollectionMedicalRecords,
	CollectionDoctors,
	CollectionNurses,
	CollectionMedicines,
	CollectionAppointments,
	CollectionServices,
	CollectionInsurances,
	CollectionFiles,
}

// NaturalKeys maps a collection to the field that must be unique within it.
// Collections without a natural key are absent.
var NaturalKeys = map[string]string{
	CollectionMedicalRecords: "nik",
	CollectionDoctors:        "nip",
	CollectionNurses:         "nip",
	CollectionMedicines:      "batchNumber",
	CollectionInsurances:     "code",
}
