package db_models

import "gorm.io/datatypes"

// BillingEventRecord is the audit trail of processed provider events. The
// unique event id makes replayed deliveries detectable.
type BillingEventRecord struct {
	BaseModel
	EventID                string `gorm:"uniqueIndex;not null"`
	Kind                   string `gorm:"index"`
	ExternalSubscriptionID string `gorm:"index"`
	Payload                datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

func (BillingEventRecord) TableName() string {
	return "billing_events"
}
