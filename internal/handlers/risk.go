package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type RiskCategoryHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewRiskCategoryHandler(st store.Storage, logger *zap.Logger) *RiskCategoryHandler {
	return &RiskCategoryHandler{store: st, logger: logger}
}

type CreateRiskCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Score int    `json:"score" binding:"gte=0,lte=100"`
	Color string `json:"color"`
}

func (h *RiskCategoryHandler) Create(c *gin.Context) {
	var req CreateRiskCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	category, err := h.store.CreateRiskCategory(models.RiskCategory{
		Name:  req.Name,
		Score: req.Score,
		Color: req.Color,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create risk category"))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Risk category created", category))
}

func (h *RiskCategoryHandler) List(c *gin.Context) {
	categories, err := h.store.ListRiskCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list risk categories"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Risk categories", categories))
}
