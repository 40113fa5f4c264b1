package entity

// Medicine is a stock batch of a master medicine.
type Medicine struct {
	Base             `bson:",inline"`
	MasterMedicineID string  `json:"masterMedicineId" bson:"masterMedicineId"`
	BatchNumber      string  `json:"batchNumber" bson:"batchNumber"`
	TradeName        string  `json:"tradeName" bson:"tradeName"`
	ProductionDate   string  `json:"productionDate" bson:"productionDate"`
	ExpiredDate      string  `json:"expiredDate" bson:"expiredDate"`
	PurchasePrice    float64 `json:"purchasePrice" bson:"purchasePrice"`
	SellingPrice     float64 `json:"sellingPrice" bson:"sellingPrice"`
	Qty              float64 `json:"qty" bson:"qty"`
	Manufacturer     string  `json:"manufacturer" bson:"manufacturer"`
}
