package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type MetricsHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewMetricsHandler(st store.Storage, logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{store: st, logger: logger}
}

type CreateMetricsRequest struct {
	Date               *time.Time `json:"date"`
	OverallCompliance  int        `json:"overall_compliance" binding:"gte=0,lte=100"`
	DocumentStatus     int        `json:"document_status" binding:"gte=0,lte=100"`
	SupplierCompliance int        `json:"supplier_compliance" binding:"gte=0,lte=100"`
	RiskLevel          string     `json:"risk_level" binding:"omitempty,oneof=low medium high"`
	IssuesDetected     int        `json:"issues_detected" binding:"gte=0"`
}

func (h *MetricsHandler) Create(c *gin.Context) {
	var req CreateMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	metric := models.ComplianceMetric{
		OverallCompliance:  req.OverallCompliance,
		DocumentStatus:     req.DocumentStatus,
		SupplierCompliance: req.SupplierCompliance,
		RiskLevel:          req.RiskLevel,
		IssuesDetected:     req.IssuesDetected,
	}
	if req.Date != nil {
		metric.Date = *req.Date
	}

	created, err := h.store.CreateComplianceMetrics(metric)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to record metrics"))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Metrics recorded", created))
}

func (h *MetricsHandler) Current(c *gin.Context) {
	metric, err := h.store.GetCurrentComplianceMetrics()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("No compliance metrics recorded"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get current metrics"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Current compliance metrics", metric))
}

func (h *MetricsHandler) History(c *gin.Context) {
	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, errorResponse("Invalid months parameter"))
			return
		}
		months = parsed
	}

	history, err := h.store.GetComplianceHistory(months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get compliance history"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Compliance history", history))
}
