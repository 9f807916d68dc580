// Package handlers contains the gin route handlers. Handlers validate and
// parse input, call the store, and shape the JSON response; audit activity
// records are written as a second store call after the primary mutation.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

func successResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func errorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// idParam parses the named int64 path parameter, writing a 400 response
// and returning false when it is not a valid ID.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid ID"))
		return 0, false
	}
	return id, true
}

// limitQuery parses an optional ?limit= query parameter, writing a 400
// response and returning false when the value is present but malformed.
// An absent parameter yields the fallback.
func limitQuery(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid limit"))
		return 0, false
	}
	return limit, true
}
