package entity

// Staff statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Doctor is a practitioner identified by NIP (employee number) and holding
// a practice licence (SIP).
type Doctor struct {
	Base           `bson:",inline"`
	Name           string `json:"name" bson:"name"`
	NIP            string `json:"nip" bson:"nip"`
	SIP            string `json:"sip" bson:"sip"`
	Specialization string `json:"specialization" bson:"specialization"`
	Status         string `json:"status" bson:"status"`
}

// Nurse is a nursing staff member identified by NIP.
type Nurse struct {
	Base   `bson:",inline"`
	Name   string `json:"name" bson:"name"`
	NIP    string `json:"nip" bson:"nip"`
	Status string `json:"status" bson:"status"`
}
