// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/descg/descg-backend/internal/ai"
	"github.com/descg/descg-backend/internal/config"
	"github.com/descg/descg-backend/internal/handlers"
	"github.com/descg/descg-backend/internal/middleware"
	"github.com/descg/descg-backend/internal/services"
	"github.com/descg/descg-backend/internal/store"
	"github.com/descg/descg-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Stores
	productStore := store.NewProductStore(db)
	logStore := store.NewDescriptionLogStore(db)

	// AI providers, each wrapped with the shared retry policy
	policy := ai.DefaultRetryPolicy()
	registry := ai.NewRegistry(
		ai.WithRetry(ai.NewDeepSeekClient(cfg.AI.DeepSeekAPIKey, cfg.AI.DeepSeekAPIURL, cfg.AI.DeepSeekModel), policy),
		ai.WithRetry(ai.NewGeminiClient(cfg.AI.GeminiAPIKey, cfg.AI.GeminiAPIURL), policy),
	)

	// Services
	notificationService := services.NewNotificationService(cfg)
	storageService, _ := services.NewStorageService(cfg)
	sallaService := services.NewSallaService(db, cfg)

	authService := services.NewAuthService(db, cfg, sallaService)
	otpService := services.NewOTPService(db, notificationService)
	productService := services.NewProductService(productStore)
	generationService := services.NewGenerationService(productStore, logStore, registry, services.DefaultGenerationDefaults())
	logService := services.NewDescriptionLogService(logStore, productStore)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	otpHandler := handlers.NewOTPHandler(otpService)
	productHandler := handlers.NewProductHandler(productService)
	descriptionHandler := handlers.NewDescriptionHandler(generationService, logService)
	sallaHandler := handlers.NewSallaHandler(sallaService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// OTP routes
		otp := api.Group("/otp")
		otp.Use(middleware.AuthRateLimit())
		{
			otp.POST("/send", otpHandler.Send)
			otp.POST("/verify", otpHandler.Verify)
			otp.POST("/resend", otpHandler.Resend)
		}

		// Product routes
		products := api.Group("/products")
		products.Use(middleware.AuthRequired())
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
			products.POST("/upload-image", middleware.UploadRateLimit(), uploadHandler.UploadProductImage)
		}

		// Description routes
		descriptions := api.Group("/descriptions")
		descriptions.Use(middleware.AuthRequired())
		{
			descriptions.POST("/generate/:productId", middleware.GenerationRateLimit(), descriptionHandler.Generate)
			descriptions.GET("/by-product/:productId", descriptionHandler.ListByProduct)

			descriptions.GET("", descriptionHandler.List)
			descriptions.POST("", descriptionHandler.Create)
			descriptions.GET("/:id", descriptionHandler.Get)
			descriptions.PUT("/:id", descriptionHandler.Update)
			descriptions.DELETE("/:id", descriptionHandler.Delete)
		}

		// Webhook routes (authenticated by the platform, not by user tokens)
		webhooks := api.Group("/webhooks")
		{
			webhooks.POST("/salla", sallaHandler.Webhook)
		}
	}

	return r
}
