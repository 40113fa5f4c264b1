package entity

// ClinicService is a service offered by the clinic, such as a consultation
// or a laboratory test.
type ClinicService struct {
	Base        `bson:",inline"`
	Name        string `json:"name" bson:"name"`
	Category    string `json:"category" bson:"category"`
	SubCategory string `json:"subCategory" bson:"subCategory"`
}
