package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/request_models"
	"lookbook/internal/models/response_models"
	"lookbook/pkg/utils"
)

func newTestGarmentService(state response_models.EntitlementState) (GarmentServiceInterface, *fakeGarmentRepo, *fakeEmbeddingRepo, uuid.UUID) {
	garmentRepo := &fakeGarmentRepo{}
	embeddingRepo := &fakeEmbeddingRepo{}
	svc := NewGarmentService(garmentRepo, embeddingRepo, &fakeEntitlement{state: state}, &fakeStylist{})
	return svc, garmentRepo, embeddingRepo, uuid.New()
}

func TestCreateGarment_TrialQuotaEnforced(t *testing.T) {
	svc, garmentRepo, _, accountID := newTestGarmentService(response_models.EntitlementState{IsActive: true, IsTrial: true})

	for i := 0; i < TrialGarmentQuota; i++ {
		_, err := svc.CreateGarment(context.Background(), accountID, request_models.CreateGarmentRequest{
			Name: fmt.Sprintf("tee-%d", i), Category: "top",
		})
		require.NoError(t, err)
	}

	// Sixth top hits the trial cap.
	_, err := svc.CreateGarment(context.Background(), accountID, request_models.CreateGarmentRequest{
		Name: "one-too-many", Category: "top",
	})
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)

	// A different category still has room.
	_, err = svc.CreateGarment(context.Background(), accountID, request_models.CreateGarmentRequest{
		Name: "jeans", Category: "bottom",
	})
	assert.NoError(t, err)

	assert.Len(t, garmentRepo.garments, TrialGarmentQuota+1)
}

func TestCreateGarment_PaidTierUnbounded(t *testing.T) {
	svc, _, _, accountID := newTestGarmentService(response_models.EntitlementState{IsActive: true, IsPaid: true})

	for i := 0; i < TrialGarmentQuota+3; i++ {
		_, err := svc.CreateGarment(context.Background(), accountID, request_models.CreateGarmentRequest{
			Name: fmt.Sprintf("tee-%d", i), Category: "top",
		})
		require.NoError(t, err)
	}
}

func TestCreateGarment_InvalidCategory(t *testing.T) {
	svc, _, _, accountID := newTestGarmentService(response_models.EntitlementState{IsActive: true, IsPaid: true})

	_, err := svc.CreateGarment(context.Background(), accountID, request_models.CreateGarmentRequest{
		Name: "cloak", Category: "cape",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateGarment_UpsertsEmbedding(t *testing.T) {
	svc, _, embeddingRepo, accountID := newTestGarmentService(response_models.EntitlementState{IsActive: true, IsPaid: true})

	created, err := svc.CreateGarment(context.Background(), accountID, request_models.CreateGarmentRequest{
		Name: "linen shirt", Category: "top", Color: "white", Style: "smart-casual",
	})
	require.NoError(t, err)

	require.Len(t, embeddingRepo.embeddings, 1)
	assert.Equal(t, created.ID, embeddingRepo.embeddings[0].GarmentID)
	assert.Contains(t, embeddingRepo.embeddings[0].StyleText, "linen shirt")
}

func TestUpdateGarment_OwnershipEnforced(t *testing.T) {
	svc, garmentRepo, _, accountID := newTestGarmentService(response_models.EntitlementState{IsActive: true, IsPaid: true})
	other := garmentRepo.add(uuid.New(), "not-yours", dbm.CategoryTop)

	_, err := svc.UpdateGarment(context.Background(), accountID, other.ID, request_models.UpdateGarmentRequest{Name: "mine now"})
	assert.ErrorIs(t, err, utils.ErrGarmentNotFound)
}

func TestDeleteGarment_RemovesEmbedding(t *testing.T) {
	svc, garmentRepo, embeddingRepo, accountID := newTestGarmentService(response_models.EntitlementState{IsActive: true, IsPaid: true})
	g := garmentRepo.add(accountID, "old coat", dbm.CategoryOuterwear)

	require.NoError(t, svc.DeleteGarment(context.Background(), accountID, g.ID))
	assert.Contains(t, embeddingRepo.deleted, g.ID.String())
}
