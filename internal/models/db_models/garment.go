package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type GarmentCategory string

const (
	CategoryTop       GarmentCategory = "top"
	CategoryBottom    GarmentCategory = "bottom"
	CategoryOuterwear GarmentCategory = "outerwear"
	CategoryShoes     GarmentCategory = "shoes"
	CategoryAccessory GarmentCategory = "accessory"
	CategoryDress     GarmentCategory = "dress"
)

func (c GarmentCategory) Valid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryOuterwear, CategoryShoes, CategoryAccessory, CategoryDress:
		return true
	}
	return false
}

type Garment struct {
	BaseModel
	AccountID uuid.UUID       `gorm:"index"`
	Name      string          `gorm:"not null"`
	Category  GarmentCategory `gorm:"index;not null"`
	Color     string
	Style     string // e.g. "casual", "formal", "sporty"
	Seasons   pq.StringArray `gorm:"type:text[]"`
	ImageURL  string
	IsActive  bool `gorm:"default:true;index"`

	Account Account `gorm:"foreignKey:AccountID"`
}
