package handlers

import (
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"terratrace-system/internal/middleware"
	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type DocumentHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewDocumentHandler(st store.Storage, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{store: st, logger: logger}
}

type CreateDocumentRequest struct {
	Title        string     `json:"title" binding:"required"`
	SupplierID   int64      `json:"supplier_id" binding:"required"`
	Status       string     `json:"status"`
	DocumentType string     `json:"document_type" binding:"required"`
	FileName     string     `json:"file_name"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	if _, err := h.store.GetSupplier(req.SupplierID); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Unknown supplier"))
		return
	}

	status := req.Status
	if status == "" {
		status = "valid"
	}

	// Stored files get an opaque key so uploads with the same name never
	// collide.
	var filePath *string
	if req.FileName != "" {
		p := path.Join("uploads", uuid.NewString()+path.Ext(req.FileName))
		filePath = &p
	}

	document, err := h.store.CreateDocument(models.Document{
		Title:        req.Title,
		SupplierID:   req.SupplierID,
		Status:       status,
		UploadedBy:   middleware.UserID(c),
		DocumentType: req.DocumentType,
		FilePath:     filePath,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create document"))
		return
	}

	entityType := "document"
	if _, err := h.store.CreateActivity(models.Activity{
		Type:        "document_uploaded",
		Description: "Document " + document.Title + " uploaded",
		UserID:      middleware.UserID(c),
		EntityType:  &entityType,
		EntityID:    &document.ID,
	}); err != nil {
		h.logger.Warn("failed to record activity", zap.Error(err))
	}

	c.JSON(http.StatusCreated, successResponse("Document created", document))
}

func (h *DocumentHandler) List(c *gin.Context) {
	documents, err := h.store.ListDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list documents"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Documents", documents))
}

func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	document, err := h.store.GetDocument(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Document not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get document"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Document", document))
}

func (h *DocumentHandler) ListBySupplier(c *gin.Context) {
	supplierID, ok := idParam(c, "supplierId")
	if !ok {
		return
	}

	documents, err := h.store.ListDocumentsBySupplier(supplierID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list documents"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Documents", documents))
}
