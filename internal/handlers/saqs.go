package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type SaqHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewSaqHandler(st store.Storage, logger *zap.Logger) *SaqHandler {
	return &SaqHandler{store: st, logger: logger}
}

type CreateSaqRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SupplierID  int64  `json:"supplier_id" binding:"required"`
	CustomerID  *int64 `json:"customer_id"`
}

func (h *SaqHandler) Create(c *gin.Context) {
	var req CreateSaqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	if _, err := h.store.GetSupplier(req.SupplierID); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Unknown supplier"))
		return
	}
	if req.CustomerID != nil {
		if _, err := h.store.GetCustomer(*req.CustomerID); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("Unknown customer"))
			return
		}
	}

	saq, err := h.store.CreateSaq(models.Saq{
		Title:       req.Title,
		Description: req.Description,
		SupplierID:  req.SupplierID,
		CustomerID:  req.CustomerID,
		Status:      models.SaqPending,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create SAQ"))
		return
	}
	c.JSON(http.StatusCreated, successResponse("SAQ created", saq))
}

func (h *SaqHandler) List(c *gin.Context) {
	saqs, err := h.store.ListSaqs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list SAQs"))
		return
	}
	c.JSON(http.StatusOK, successResponse("SAQs", saqs))
}

func (h *SaqHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	saq, err := h.store.GetSaq(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("SAQ not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get SAQ"))
		return
	}
	c.JSON(http.StatusOK, successResponse("SAQ", saq))
}

func (h *SaqHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var update models.SaqUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	saq, err := h.store.UpdateSaq(id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("SAQ not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update SAQ"))
		return
	}
	c.JSON(http.StatusOK, successResponse("SAQ updated", saq))
}

func (h *SaqHandler) ListBySupplier(c *gin.Context) {
	supplierID, ok := idParam(c, "supplierId")
	if !ok {
		return
	}

	saqs, err := h.store.ListSaqsBySupplier(supplierID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list SAQs"))
		return
	}
	c.JSON(http.StatusOK, successResponse("SAQs", saqs))
}

func (h *SaqHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := idParam(c, "customerId")
	if !ok {
		return
	}

	saqs, err := h.store.ListSaqsByCustomer(customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list SAQs"))
		return
	}
	c.JSON(http.StatusOK, successResponse("SAQs", saqs))
}

func (h *SaqHandler) Stats(c *gin.Context) {
	stats, err := h.store.GetSaqStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to compute SAQ stats"))
		return
	}
	c.JSON(http.StatusOK, successResponse("SAQ stats", stats))
}
