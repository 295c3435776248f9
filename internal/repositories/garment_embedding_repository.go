package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	dbm "lookbook/internal/models/db_models"
)

type IGarmentEmbeddingRepository interface {
	ListSimilarByVector(vector pgvector.Vector, limit int) ([]dbm.GarmentEmbedding, error)
	Upsert(embedding dbm.GarmentEmbedding) error
	DeleteByGarmentID(garmentID string) error
}

type GarmentEmbeddingRepository struct {
	db *gorm.DB
}

func NewGarmentEmbeddingRepository(db *gorm.DB) IGarmentEmbeddingRepository {
	return &GarmentEmbeddingRepository{db: db}
}

func (r *GarmentEmbeddingRepository) ListSimilarByVector(vector pgvector.Vector, limit int) ([]dbm.GarmentEmbedding, error) {
	if limit <= 0 {
		limit = 15
	}
	var results []dbm.GarmentEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM garment_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.Raw(query, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *GarmentEmbeddingRepository) Upsert(embedding dbm.GarmentEmbedding) error {
	return r.db.Where("garment_id = ?", embedding.GarmentID).
		Assign(map[string]interface{}{
			"style_text": embedding.StyleText,
			"embedding":  embedding.Embedding,
		}).
		FirstOrCreate(&embedding).Error
}

func (r *GarmentEmbeddingRepository) DeleteByGarmentID(garmentID string) error {
	return r.db.Where("garment_id = ?", garmentID).Delete(&dbm.GarmentEmbedding{}).Error
}
