package controllers

import (
	"github.com/gin-gonic/gin"

	"lookbook/internal/services"
	"lookbook/pkg/utils"
)

type EntitlementController struct {
	entitlementService services.EntitlementServiceInterface
}

func NewEntitlementController(entitlementService services.EntitlementServiceInterface) *EntitlementController {
	return &EntitlementController{
		entitlementService: entitlementService,
	}
}

// GetEntitlement godoc
// @Summary Get the current entitlement state
// @Description Evaluates the subscription (or signup trial) against the current clock
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/entitlement [get]
func (e *EntitlementController) GetEntitlement(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	state, err := e.entitlementService.CurrentState(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "")
}
