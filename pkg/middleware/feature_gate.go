package middleware

import (
	"github.com/gin-gonic/gin"

	"lookbook/internal/services"
	"lookbook/pkg/utils"
)

// RequireFeature blocks the route unless the caller's current entitlement
// grants the feature. The state is evaluated fresh on every request; a
// webhook landing between two requests changes the answer immediately.
func RequireFeature(entitlement services.EntitlementServiceInterface, feature services.FeatureID) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := utils.CurrentAccountID(c)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		state, err := entitlement.CurrentState(c.Request.Context(), accountID)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		if !services.CanAccessFeature(feature, state) {
			utils.HandleServiceError(c, utils.ErrFeatureLocked)
			c.Abort()
			return
		}

		c.Next()
	}
}
