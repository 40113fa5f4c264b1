package entity

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment books a patient with a doctor at a date and time.
type Appointment struct {
	Base      `bson:",inline"`
	PatientID string `json:"patientId" bson:"patientId"`
	DoctorID  string `json:"doctorId" bson:"doctorId"`
	Date      string `json:"date" bson:"date"`
	Time      string `json:"time" bson:"time"`
	Status    string `json:"status" bson:"status"`
}
