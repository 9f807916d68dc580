package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/config"
	"terratrace-system/internal/auth"
	"terratrace-system/internal/handlers"
	"terratrace-system/internal/middleware"
	"terratrace-system/internal/store"
)

func main() {
	cfg := config.LoadConfig()
	logger := config.NewLogger(cfg.Log)
	defer logger.Sync()

	st := store.NewMemStore()
	if cfg.SeedDemo {
		st.Seed()
		logger.Info("Seeded demo data")
	}

	r := newRouter(cfg, logger, st)

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	logger.Info("Starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newRouter(cfg config.Config, logger *zap.Logger, st store.Storage) *gin.Engine {
	gin.SetMode(cfg.HTTP.GinMode)

	sessionStore := auth.NewSessionStore(cfg.Auth.SessionSecret, cfg.Auth.SecureCookies, cfg.Auth.SessionMaxAge)
	jwtSecret := []byte(cfg.Auth.JWTSecret)
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour

	authHandler := handlers.NewAuthHandler(st, sessionStore, jwtSecret, tokenTTL, logger)
	supplierHandler := handlers.NewSupplierHandler(st, logger)
	customerHandler := handlers.NewCustomerHandler(st, logger)
	declarationHandler := handlers.NewDeclarationHandler(st, logger)
	documentHandler := handlers.NewDocumentHandler(st, logger)
	taskHandler := handlers.NewTaskHandler(st, logger)
	activityHandler := handlers.NewActivityHandler(st, logger)
	riskHandler := handlers.NewRiskCategoryHandler(st, logger)
	metricsHandler := handlers.NewMetricsHandler(st, logger)
	saqHandler := handlers.NewSaqHandler(st, logger)
	dashboardHandler := handlers.NewDashboardHandler(st, logger)

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		authGroup := public.Group("/auth")
		authGroup.Use(middleware.RateLimit(cfg.HTTP.RateLimit))
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
		}
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.Auth(sessionStore, jwtSecret))
	{
		protected.GET("/auth/me", authHandler.Me)

		users := protected.Group("/users")
		{
			users.GET("", authHandler.ListUsers)
			users.GET("/:id", authHandler.GetUser)
		}

		suppliers := protected.Group("/suppliers")
		{
			suppliers.POST("", supplierHandler.Create)
			suppliers.GET("", supplierHandler.List)
			suppliers.GET("/stats", supplierHandler.Stats)
			suppliers.GET("/:id", supplierHandler.Get)
			suppliers.PUT("/:id", supplierHandler.Update)
		}

		customers := protected.Group("/customers")
		{
			customers.POST("", customerHandler.Create)
			customers.GET("", customerHandler.List)
			customers.GET("/stats", customerHandler.Stats)
			customers.GET("/:id", customerHandler.Get)
			customers.PUT("/:id", customerHandler.Update)
		}

		declarations := protected.Group("/declarations")
		{
			declarations.POST("", declarationHandler.Create)
			declarations.GET("", declarationHandler.List)
			declarations.GET("/stats", declarationHandler.Stats)
			declarations.GET("/supplier/:supplierId", declarationHandler.ListBySupplier)
			declarations.GET("/:id", declarationHandler.Get)
			declarations.PUT("/:id", declarationHandler.Update)
		}

		documents := protected.Group("/documents")
		{
			documents.POST("", documentHandler.Create)
			documents.GET("", documentHandler.List)
			documents.GET("/supplier/:supplierId", documentHandler.ListBySupplier)
			documents.GET("/:id", documentHandler.Get)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("", taskHandler.List)
			tasks.GET("/upcoming", taskHandler.Upcoming)
			tasks.GET("/:id", taskHandler.Get)
			tasks.PUT("/:id", taskHandler.Update)
		}

		protected.GET("/activities/recent", activityHandler.Recent)

		riskCategories := protected.Group("/risk-categories")
		{
			riskCategories.POST("", riskHandler.Create)
			riskCategories.GET("", riskHandler.List)
		}

		metrics := protected.Group("/compliance-metrics")
		{
			metrics.POST("", metricsHandler.Create)
			metrics.GET("/current", metricsHandler.Current)
			metrics.GET("/history", metricsHandler.History)
		}

		saqs := protected.Group("/saqs")
		{
			saqs.POST("", saqHandler.Create)
			saqs.GET("", saqHandler.List)
			saqs.GET("/stats", saqHandler.Stats)
			saqs.GET("/supplier/:supplierId", saqHandler.ListBySupplier)
			saqs.GET("/customer/:customerId", saqHandler.ListByCustomer)
			saqs.GET("/:id", saqHandler.Get)
			saqs.PUT("/:id", saqHandler.Update)
		}

		protected.GET("/dashboard", dashboardHandler.Overview)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	return r
}
