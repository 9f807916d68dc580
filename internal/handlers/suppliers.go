package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/internal/middleware"
	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type SupplierHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewSupplierHandler(st store.Storage, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{store: st, logger: logger}
}

type CreateSupplierRequest struct {
	Name      string   `json:"name" binding:"required"`
	Products  []string `json:"products"`
	Country   string   `json:"country" binding:"required"`
	Category  string   `json:"category"`
	Status    string   `json:"status"`
	RiskLevel string   `json:"risk_level" binding:"omitempty,oneof=low medium high"`
	RiskScore int      `json:"risk_score"`
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	status := req.Status
	if status == "" {
		status = "active"
	}
	riskLevel := req.RiskLevel
	if riskLevel == "" {
		riskLevel = models.RiskMedium
	}

	supplier, err := h.store.CreateSupplier(models.Supplier{
		Name:      req.Name,
		Products:  req.Products,
		Country:   req.Country,
		Category:  req.Category,
		Status:    status,
		RiskLevel: riskLevel,
		RiskScore: req.RiskScore,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create supplier"))
		return
	}

	// Audit write is a second, separate store call; the supplier is already
	// persisted even if this fails.
	entityType := "supplier"
	if _, err := h.store.CreateActivity(models.Activity{
		Type:        "supplier_added",
		Description: "Supplier " + supplier.Name + " added",
		UserID:      middleware.UserID(c),
		EntityType:  &entityType,
		EntityID:    &supplier.ID,
	}); err != nil {
		h.logger.Warn("failed to record activity", zap.Error(err))
	}

	c.JSON(http.StatusCreated, successResponse("Supplier created", supplier))
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.store.ListSuppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list suppliers"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Suppliers", suppliers))
}

func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	supplier, err := h.store.GetSupplier(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Supplier not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get supplier"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Supplier", supplier))
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var update models.SupplierUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	supplier, err := h.store.UpdateSupplier(id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Supplier not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update supplier"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Supplier updated", supplier))
}

func (h *SupplierHandler) Stats(c *gin.Context) {
	stats, err := h.store.GetSupplierStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to compute supplier stats"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Supplier stats", stats))
}
