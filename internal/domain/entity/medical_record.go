package entity

// MedicalRecord is a patient's registration record. NIK is the national
// identity number and is unique across records.
type MedicalRecord struct {
	Base          `bson:",inline"`
	NRME          string `json:"nrme" bson:"nrme"`
	NIK           string `json:"nik" bson:"nik"`
	Name          string `json:"name" bson:"name"`
	DOB           string `json:"dob" bson:"dob"`
	Gender        string `json:"gender" bson:"gender"`
	HP            string `json:"hp" bson:"hp"`
	Email         string `json:"email" bson:"email"`
	LastVisitDate string `json:"lastVisitDate" bson:"lastVisitDate"`
}
