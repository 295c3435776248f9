package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lookbook/internal/models/response_models"
	"lookbook/internal/services"
)

type stubEntitlement struct {
	state response_models.EntitlementState
}

func (s *stubEntitlement) CurrentState(_ context.Context, _ uuid.UUID) (response_models.EntitlementState, error) {
	return s.state, nil
}

func trialState() response_models.EntitlementState {
	return response_models.EntitlementState{
		IsActive:      true,
		IsTrial:       true,
		Status:        "trialing",
		Plan:          "none",
		DaysRemaining: 5,
	}
}

func gatedRouter(state response_models.EntitlementState, feature services.FeatureID, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if authed {
		r.Use(func(c *gin.Context) { c.Set("user_id", uuid.New().String()) })
	}
	r.POST("/wardrobe/analyze",
		RequireFeature(&stubEntitlement{state: state}, feature),
		func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequireFeature(t *testing.T) {
	do := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wardrobe/analyze", nil)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("trial reaches photo analysis", func(t *testing.T) {
		w := do(gatedRouter(trialState(), services.FeatureImageGeneration, true))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("trial denied weekly planner", func(t *testing.T) {
		w := do(gatedRouter(trialState(), services.FeatureWeeklyPlanner, true))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("expired trial denied everywhere", func(t *testing.T) {
		state := trialState()
		state.IsActive = false
		state.Status = "expired"
		w := do(gatedRouter(state, services.FeatureImageGeneration, true))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("missing account id rejected", func(t *testing.T) {
		w := do(gatedRouter(trialState(), services.FeatureImageGeneration, false))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
