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

type GarmentController struct {
	garmentService services.GarmentServiceInterface
	outfitService  services.OutfitServiceInterface
}

func NewGarmentController(
	garmentService services.GarmentServiceInterface,
	outfitService services.OutfitServiceInterface,
) *GarmentController {
	return &GarmentController{
		garmentService: garmentService,
		outfitService:  outfitService,
	}
}

// CreateGarment godoc
// @Summary Add a garment to the wardrobe
// @Description Adds a garment, subject to the per-category quota of the current plan
// @Tags Wardrobe
// @Accept json
// @Produce json
// @Param request body request_models.CreateGarmentRequest true "Garment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wardrobe [post]
func (g *GarmentController) CreateGarment(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.CreateGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	garment, err := g.garmentService.CreateGarment(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, garment, "Garment added")
}

// ListGarments godoc
// @Summary List garments in the wardrobe
// @Tags Wardrobe
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wardrobe [get]
func (g *GarmentController) ListGarments(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	garments, err := g.garmentService.ListGarments(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, garments, "")
}

// GetGarment godoc
// @Summary Get a single garment
// @Tags Wardrobe
// @Produce json
// @Param id path string true "Garment id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wardrobe/{id} [get]
func (g *GarmentController) GetGarment(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	garmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid garment id")
		return
	}

	garment, err := g.garmentService.GetGarment(c.Request.Context(), accountID, garmentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, garment, "")
}

// UpdateGarment godoc
// @Summary Update a garment
// @Tags Wardrobe
// @Accept json
// @Produce json
// @Param id path string true "Garment id"
// @Param request body request_models.UpdateGarmentRequest true "Garment update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wardrobe/{id} [put]
func (g *GarmentController) UpdateGarment(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	garmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid garment id")
		return
	}

	var req request_models.UpdateGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	garment, err := g.garmentService.UpdateGarment(c.Request.Context(), accountID, garmentID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, garment, "Garment updated")
}

// DeleteGarment godoc
// @Summary Remove a garment from the wardrobe
// @Tags Wardrobe
// @Produce json
// @Param id path string true "Garment id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wardrobe/{id} [delete]
func (g *GarmentController) DeleteGarment(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	garmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid garment id")
		return
	}

	if err := g.garmentService.DeleteGarment(c.Request.Context(), accountID, garmentID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Garment removed")
}

// AnalyzeGarment godoc
// @Summary Analyze a garment photo
// @Description Runs vision analysis on the photo and returns a pre-filled garment draft
// @Tags Wardrobe
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeGarmentRequest true "Photo payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wardrobe/analyze [post]
func (g *GarmentController) AnalyzeGarment(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.AnalyzeGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	analysis, err := g.outfitService.AnalyzeGarmentPhoto(c.Request.Context(), accountID, req.ImageURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analysis, "")
}
