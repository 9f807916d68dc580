package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"terratrace-system/internal/middleware"
	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type DeclarationHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewDeclarationHandler(st store.Storage, logger *zap.Logger) *DeclarationHandler {
	return &DeclarationHandler{store: st, logger: logger}
}

type CreateDeclarationRequest struct {
	Type        string          `json:"type" binding:"required,oneof=inbound outbound"`
	SupplierID  int64           `json:"supplier_id" binding:"required"`
	CustomerID  *int64          `json:"customer_id"`
	ProductName string          `json:"product_name" binding:"required"`
	HsnCode     string          `json:"hsn_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" binding:"required"`
	Status      string          `json:"status" binding:"omitempty,oneof=pending approved review rejected"`
	RiskLevel   string          `json:"risk_level" binding:"omitempty,oneof=low medium high"`
	GeojsonData json.RawMessage `json:"geojson_data"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
}

func (h *DeclarationHandler) Create(c *gin.Context) {
	var req CreateDeclarationRequest
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

	status := req.Status
	if status == "" {
		status = models.DeclarationPending
	}
	riskLevel := req.RiskLevel
	if riskLevel == "" {
		riskLevel = models.RiskMedium
	}

	declaration, err := h.store.CreateDeclaration(models.Declaration{
		Type:        req.Type,
		SupplierID:  req.SupplierID,
		CustomerID:  req.CustomerID,
		ProductName: req.ProductName,
		HsnCode:     req.HsnCode,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Status:      status,
		RiskLevel:   riskLevel,
		GeojsonData: req.GeojsonData,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   middleware.UserID(c),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create declaration"))
		return
	}

	entityType := "declaration"
	if _, err := h.store.CreateActivity(models.Activity{
		Type:        "declaration_submitted",
		Description: "Declaration for " + declaration.ProductName + " submitted",
		UserID:      middleware.UserID(c),
		EntityType:  &entityType,
		EntityID:    &declaration.ID,
	}); err != nil {
		h.logger.Warn("failed to record activity", zap.Error(err))
	}

	c.JSON(http.StatusCreated, successResponse("Declaration created", declaration))
}

func (h *DeclarationHandler) List(c *gin.Context) {
	declType := c.Query("type")
	if declType != "" && declType != models.DeclarationInbound && declType != models.DeclarationOutbound {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid declaration type"))
		return
	}

	declarations, err := h.store.ListDeclarations(declType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list declarations"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Declarations", declarations))
}

func (h *DeclarationHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	declaration, err := h.store.GetDeclaration(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Declaration not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get declaration"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Declaration", declaration))
}

func (h *DeclarationHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var update models.DeclarationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	declaration, err := h.store.UpdateDeclaration(id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Declaration not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update declaration"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Declaration updated", declaration))
}

func (h *DeclarationHandler) ListBySupplier(c *gin.Context) {
	supplierID, ok := idParam(c, "supplierId")
	if !ok {
		return
	}

	declarations, err := h.store.ListDeclarationsBySupplier(supplierID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list declarations"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Declarations", declarations))
}

func (h *DeclarationHandler) Stats(c *gin.Context) {
	stats, err := h.store.GetDeclarationStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to compute declaration stats"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Declaration stats", stats))
}
