package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	// Styling context used by the outfit orchestrator.
	City     string
	Language string `gorm:"default:en"`

	// Billing-provider customer id, stamped on first completed checkout.
	ExternalCustomerID string `gorm:"index"`

	Garments []Garment `gorm:"foreignKey:AccountID"`
}
