package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"terratrace-system/internal/auth"
	"terratrace-system/internal/middleware"
	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type AuthHandler struct {
	store        store.Storage
	sessionStore sessions.Store
	jwtSecret    []byte
	tokenTTL     time.Duration
	logger       *zap.Logger
}

func NewAuthHandler(st store.Storage, sessionStore sessions.Store, jwtSecret []byte, tokenTTL time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		store:        st,
		sessionStore: sessionStore,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	// Uniqueness is a caller-side existence check; the store does not
	// enforce it on create.
	if _, err := h.store.GetUserByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, errorResponse("Username already exists"))
		return
	}
	if _, err := h.store.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, errorResponse("Email already exists"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to process password"))
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user, err := h.store.CreateUser(models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		FullName: req.FullName,
		Role:     role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create user"))
		return
	}

	h.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	c.JSON(http.StatusCreated, successResponse("User registered", user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, errorResponse("Invalid username or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Login failed"))
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, errorResponse("Invalid username or password"))
		return
	}

	session, err := h.sessionStore.Get(c.Request, auth.SessionName)
	if err == nil {
		session.Values[auth.SessionKeyUserID] = user.ID
		if err := session.Save(c.Request, c.Writer); err != nil {
			h.logger.Warn("failed to save session", zap.Error(err))
		}
	}

	token, expiresAt, err := auth.GenerateToken(h.jwtSecret, user.ID, user.Username, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to issue token"))
		return
	}

	c.JSON(http.StatusOK, successResponse("Login successful", gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	}))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session, err := h.sessionStore.Get(c.Request, auth.SessionName)
	if err == nil {
		session.Options.MaxAge = -1
		delete(session.Values, auth.SessionKeyUserID)
		if err := session.Save(c.Request, c.Writer); err != nil {
			h.logger.Warn("failed to clear session", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, successResponse("Logged out", nil))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.store.GetUser(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Current user", user))
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list users"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Users", users))
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get user"))
		return
	}
	c.JSON(http.StatusOK, successResponse("User", user))
}
