package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type CustomerHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewCustomerHandler(st store.Storage, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{store: st, logger: logger}
}

type CreateCustomerRequest struct {
	CompanyName        string         `json:"company_name" binding:"required"`
	ContactPerson      string         `json:"contact_person"`
	Email              string         `json:"email" binding:"omitempty,email"`
	Phone              string         `json:"phone"`
	BillingAddress     models.Address `json:"billing_address"`
	ShippingAddress    models.Address `json:"shipping_address"`
	RegistrationNumber string         `json:"registration_number"`
	ComplianceScore    int            `json:"compliance_score"`
	RiskLevel          string         `json:"risk_level" binding:"omitempty,oneof=low medium high"`
	Status             string         `json:"status"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
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

	customer, err := h.store.CreateCustomer(models.Customer{
		CompanyName:        req.CompanyName,
		ContactPerson:      req.ContactPerson,
		Email:              req.Email,
		Phone:              req.Phone,
		BillingAddress:     req.BillingAddress,
		ShippingAddress:    req.ShippingAddress,
		RegistrationNumber: req.RegistrationNumber,
		ComplianceScore:    req.ComplianceScore,
		RiskLevel:          riskLevel,
		Status:             status,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create customer"))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Customer created", customer))
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.store.ListCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list customers"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Customers", customers))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.store.GetCustomer(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get customer"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Customer", customer))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var update models.CustomerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	customer, err := h.store.UpdateCustomer(id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update customer"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Customer updated", customer))
}

func (h *CustomerHandler) Stats(c *gin.Context) {
	stats, err := h.store.GetCustomerStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to compute customer stats"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Customer stats", stats))
}
