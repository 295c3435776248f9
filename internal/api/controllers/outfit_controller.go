package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lookbook/internal/models/request_models"
	"lookbook/internal/services"
	"lookbook/pkg/utils"
)

type OutfitController struct {
	outfitService services.OutfitServiceInterface
}

func NewOutfitController(outfitService services.OutfitServiceInterface) *OutfitController {
	return &OutfitController{
		outfitService: outfitService,
	}
}

// GenerateOutfit godoc
// @Summary Generate a single-day outfit
// @Description Builds an outfit from the active wardrobe and today's weather in the profile city
// @Tags Outfits
// @Accept json
// @Produce json
// @Param request body request_models.GenerateOutfitRequest true "Generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /outfits/generate [post]
func (o *OutfitController) GenerateOutfit(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.GenerateOutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := o.outfitService.GenerateOutfit(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Outfit generated")
}

// GenerateWeeklyPlan godoc
// @Summary Generate a weekly outfit plan
// @Description Builds one outfit per forecast day, avoiding repeated top and bottom combinations
// @Tags Outfits
// @Accept json
// @Produce json
// @Param request body request_models.GenerateWeeklyPlanRequest true "Weekly generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /outfits/weekly [post]
func (o *OutfitController) GenerateWeeklyPlan(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.GenerateWeeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := o.outfitService.GenerateWeeklyPlan(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Weekly plan generated")
}

// GetPlan godoc
// @Summary Get a stored outfit plan
// @Tags Outfits
// @Produce json
// @Param id path string true "Plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /outfits/{id} [get]
func (o *OutfitController) GetPlan(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	plan, err := o.outfitService.GetPlan(c.Request.Context(), accountID, planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "")
}

// ListPlans godoc
// @Summary List stored outfit plans
// @Tags Outfits
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /outfits [get]
func (o *OutfitController) ListPlans(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	plans, err := o.outfitService.ListPlans(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "")
}
