package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/request_models"
	"lookbook/internal/models/response_models"
	"lookbook/internal/repositories"
	"lookbook/pkg/utils"
)

type GarmentServiceInterface interface {
	CreateGarment(ctx context.Context, accountID uuid.UUID, request request_models.CreateGarmentRequest) (*response_models.GarmentResponse, error)
	UpdateGarment(ctx context.Context, accountID uuid.UUID, garmentID uuid.UUID, request request_models.UpdateGarmentRequest) (*response_models.GarmentResponse, error)
	GetGarment(ctx context.Context, accountID uuid.UUID, garmentID uuid.UUID) (*response_models.GarmentResponse, error)
	ListGarments(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.GarmentResponse, error)
	DeleteGarment(ctx context.Context, accountID uuid.UUID, garmentID uuid.UUID) error
}

type GarmentService struct {
	garmentRepo   repositories.GarmentRepository
	embeddingRepo repositories.IGarmentEmbeddingRepository
	entitlement   EntitlementServiceInterface
	stylist       utils.StylistClientInterface
}

func NewGarmentService(
	garmentRepo repositories.GarmentRepository,
	embeddingRepo repositories.IGarmentEmbeddingRepository,
	entitlement EntitlementServiceInterface,
	stylist utils.StylistClientInterface,
) GarmentServiceInterface {
	return &GarmentService{
		garmentRepo:   garmentRepo,
		embeddingRepo: embeddingRepo,
		entitlement:   entitlement,
		stylist:       stylist,
	}
}

func (g *GarmentService) CreateGarment(ctx context.Context, accountID uuid.UUID, request request_models.CreateGarmentRequest) (*response_models.GarmentResponse, error) {
	category := dbm.GarmentCategory(request.Category)
	if !category.Valid() {
		return nil, utils.ErrInvalidInput
	}

	// Quota check happens before the insert; paid tier is unbounded.
	state, err := g.entitlement.CurrentState(ctx, accountID)
	if err != nil {
		return nil, err
	}
	quota := MaxItemsPerCategory(state)
	if quota != QuotaUnlimited {
		count, err := g.garmentRepo.CountByCategory(ctx, accountID, category)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if count >= int64(quota) {
			return nil, utils.ErrQuotaExceeded
		}
	}

	garment := &dbm.Garment{
		AccountID: accountID,
		Name:      request.Name,
		Category:  category,
		Color:     request.Color,
		Style:     request.Style,
		Seasons:   request.Seasons,
		ImageURL:  request.ImageURL,
		IsActive:  true,
	}
	if err := g.garmentRepo.Insert(ctx, garment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	g.refreshEmbedding(ctx, garment)

	return garmentToResponse(garment), nil
}

func (g *GarmentService) UpdateGarment(ctx context.Context, accountID uuid.UUID, garmentID uuid.UUID, request request_models.UpdateGarmentRequest) (*response_models.GarmentResponse, error) {
	garment, err := g.ownedGarment(ctx, accountID, garmentID)
	if err != nil {
		return nil, err
	}

	styleChanged := false
	if request.Name != "" {
		garment.Name = request.Name
	}
	if request.Category != "" {
		category := dbm.GarmentCategory(request.Category)
		if !category.Valid() {
			return nil, utils.ErrInvalidInput
		}
		garment.Category = category
		styleChanged = true
	}
	if request.Color != "" {
		garment.Color = request.Color
		styleChanged = true
	}
	if request.Style != "" {
		garment.Style = request.Style
		styleChanged = true
	}
	if request.Seasons != nil {
		garment.Seasons = request.Seasons
		styleChanged = true
	}
	if request.ImageURL != "" {
		garment.ImageURL = request.ImageURL
	}
	if request.IsActive != nil {
		garment.IsActive = *request.IsActive
	}

	if err := g.garmentRepo.Update(ctx, garment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if styleChanged {
		g.refreshEmbedding(ctx, garment)
	}

	return garmentToResponse(garment), nil
}

func (g *GarmentService) GetGarment(ctx context.Context, accountID uuid.UUID, garmentID uuid.UUID) (*response_models.GarmentResponse, error) {
	garment, err := g.ownedGarment(ctx, accountID, garmentID)
	if err != nil {
		return nil, err
	}
	return garmentToResponse(garment), nil
}

func (g *GarmentService) ListGarments(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.GarmentResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	garments, err := g.garmentRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.GarmentResponse, 0, len(garments))
	for _, garment := range garments {
		out = append(out, *garmentToResponse(garment))
	}
	return out, nil
}

func (g *GarmentService) DeleteGarment(ctx context.Context, accountID uuid.UUID, garmentID uuid.UUID) error {
	garment, err := g.ownedGarment(ctx, accountID, garmentID)
	if err != nil {
		return err
	}

	if err := g.garmentRepo.SoftDelete(ctx, garment.ID); err != nil {
		return utils.ErrDatabaseError
	}
	if err := g.embeddingRepo.DeleteByGarmentID(garment.ID.String()); err != nil {
		log.Printf("failed to delete embedding for garment %s: %v", garment.ID, err)
	}
	return nil
}

func (g *GarmentService) ownedGarment(ctx context.Context, accountID uuid.UUID, garmentID uuid.UUID) (*dbm.Garment, error) {
	garment, err := g.garmentRepo.FindByID(ctx, garmentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if garment == nil || garment.AccountID != accountID {
		return nil, utils.ErrGarmentNotFound
	}
	return garment, nil
}

// refreshEmbedding re-embeds the garment's style text. Best effort: a failed
// embedding never fails the write, it only degrades alternative suggestions.
func (g *GarmentService) refreshEmbedding(ctx context.Context, garment *dbm.Garment) {
	styleText := fmt.Sprintf("%s %s %s %s", garment.Name, garment.Category, garment.Color, garment.Style)
	if len(garment.Seasons) > 0 {
		styleText += " " + strings.Join(garment.Seasons, " ")
	}

	vector, err := g.stylist.GetEmbedding(ctx, styleText)
	if err != nil {
		log.Printf("failed to embed garment %s: %v", garment.ID, err)
		return
	}
	err = g.embeddingRepo.Upsert(dbm.GarmentEmbedding{
		GarmentID: garment.ID.String(),
		StyleText: styleText,
		Embedding: vector,
	})
	if err != nil {
		log.Printf("failed to upsert embedding for garment %s: %v", garment.ID, err)
	}
}

func garmentToResponse(garment *dbm.Garment) *response_models.GarmentResponse {
	return &response_models.GarmentResponse{
		ID:        garment.ID.String(),
		Name:      garment.Name,
		Category:  string(garment.Category),
		Color:     garment.Color,
		Style:     garment.Style,
		Seasons:   garment.Seasons,
		ImageURL:  garment.ImageURL,
		IsActive:  garment.IsActive,
		CreatedAt: garment.CreatedAt,
	}
}
