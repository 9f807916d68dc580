package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/internal/store"
)

type ActivityHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewActivityHandler(st store.Storage, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{store: st, logger: logger}
}

func (h *ActivityHandler) Recent(c *gin.Context) {
	limit, ok := limitQuery(c, 10)
	if !ok {
		return
	}

	activities, err := h.store.ListRecentActivities(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list activities"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Recent activities", activities))
}
