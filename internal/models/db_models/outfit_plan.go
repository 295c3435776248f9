package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OutfitPlanKind string

const (
	PlanKindSingleDay OutfitPlanKind = "single_day"
	PlanKindWeekly    OutfitPlanKind = "weekly"
)

// OutfitPlan is a persisted generation result: the day entries and the
// weather snapshot that conditioned them, kept as jsonb the way the model
// returned them (post normalization).
type OutfitPlan struct {
	BaseModel
	AccountID uuid.UUID      `gorm:"index"`
	Kind      OutfitPlanKind `gorm:"index"`
	Occasion  string
	Entries   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Weather   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account   Account          `gorm:"foreignKey:AccountID"`
	Feedbacks []OutfitFeedback `gorm:"foreignKey:PlanID"`
}
