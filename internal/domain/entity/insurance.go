package entity

// Insurance is an insurance provider accepted by the clinic.
type Insurance struct {
	Base   `bson:",inline"`
	Name   string `json:"name" bson:"name"`
	Type   string `json:"type" bson:"type"`
	Code   string `json:"code" bson:"code"`
	Status string `json:"status" bson:"status"`
}
