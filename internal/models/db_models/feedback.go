package db_models

import "github.com/google/uuid"

type OutfitFeedback struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	PlanID    uuid.UUID `gorm:"index"`
	Rating    int       `gorm:"not null"` // 1..5
	Comment   string

	Account Account    `gorm:"foreignKey:AccountID"`
	Plan    OutfitPlan `gorm:"foreignKey:PlanID"`
}
