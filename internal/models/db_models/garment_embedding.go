package db_models

import (
	"github.com/pgvector/pgvector-go"
)

// GarmentEmbedding holds the style-text embedding used for similar-garment
// lookups when enriching generated outfits with alternatives.
type GarmentEmbedding struct {
	ID        int             `gorm:"primaryKey;autoIncrement"`
	GarmentID string          `gorm:"index;not null"`
	StyleText string          // the text that was embedded
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}

func (GarmentEmbedding) TableName() string {
	return "garment_embeddings"
}
