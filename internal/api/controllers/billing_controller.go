package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lookbook/internal/models/request_models"
	"lookbook/internal/services"
	"lookbook/pkg/utils"
)

// WebhookSignatureHeader carries the provider's HMAC-SHA256 hex signature
// over the raw request body.
const WebhookSignatureHeader = "X-Webhook-Signature"

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// CreateCheckout godoc
// @Summary Create a checkout session for a subscription plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/checkout [post]
func (b *BillingController) CreateCheckout(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkout, err := b.billingService.CreateCheckoutForPlan(c.Request.Context(), accountID, req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout URL created successfully")
}

// CreatePortal godoc
// @Summary Create a billing portal session
// @Description Returns a URL where the user manages their subscription with the provider
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/portal [post]
func (b *BillingController) CreatePortal(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	portal, err := b.billingService.CreatePortalSession(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, portal, "Portal URL created successfully")
}

// HandleWebhook verifies the signature over the raw body before any field is
// read, then applies the event through the reducer. Unauthenticated route:
// the signature is the authentication.
func (b *BillingController) HandleWebhook(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cannot read request body")
		return
	}

	secret := b.billingService.Config().WebhookSecret
	if err := services.VerifyWebhookSignature(secret, rawBody, c.GetHeader(WebhookSignatureHeader)); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook signature")
		return
	}

	event, err := services.DecodeBillingEvent(rawBody)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := b.billingService.ApplyEvent(c.Request.Context(), event); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event processed")
}
