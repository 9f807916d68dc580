package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type DashboardHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewDashboardHandler(st store.Storage, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{store: st, logger: logger}
}

type DashboardPayload struct {
	DeclarationStats *models.DeclarationStats `json:"declaration_stats"`
	SaqStats         *models.SaqStats         `json:"saq_stats"`
	SupplierStats    *models.SupplierStats    `json:"supplier_stats"`
	CustomerStats    *models.CustomerStats    `json:"customer_stats"`
	CurrentMetrics   *models.ComplianceMetric `json:"current_metrics,omitempty"`
	RecentActivities []models.Activity        `json:"recent_activities"`
	UpcomingTasks    []models.Task            `json:"upcoming_tasks"`
}

// Overview assembles the dashboard in one response. Each aggregate is a
// live recomputation; nothing here is cached.
func (h *DashboardHandler) Overview(c *gin.Context) {
	declarationStats, err := h.store.GetDeclarationStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to build dashboard"))
		return
	}
	saqStats, err := h.store.GetSaqStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to build dashboard"))
		return
	}
	supplierStats, err := h.store.GetSupplierStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to build dashboard"))
		return
	}
	customerStats, err := h.store.GetCustomerStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to build dashboard"))
		return
	}

	currentMetrics, err := h.store.GetCurrentComplianceMetrics()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to build dashboard"))
		return
	}

	activities, err := h.store.ListRecentActivities(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to build dashboard"))
		return
	}
	tasks, err := h.store.ListUpcomingTasks(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to build dashboard"))
		return
	}

	c.JSON(http.StatusOK, successResponse("Dashboard", DashboardPayload{
		DeclarationStats: declarationStats,
		SaqStats:         saqStats,
		SupplierStats:    supplierStats,
		CustomerStats:    customerStats,
		CurrentMetrics:   currentMetrics,
		RecentActivities: activities,
		UpcomingTasks:    tasks,
	}))
}
