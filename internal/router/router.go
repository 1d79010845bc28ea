package router

import (
	"fmt"
	"strings"

	"github.com/sofreh-next/internal/cache"
	"github.com/sofreh-next/internal/config"
	publichandlers "github.com/sofreh-next/internal/http/handlers/public"
	"github.com/sofreh-next/internal/logger"
	"github.com/sofreh-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the public API routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	redisClient := cache.Client()
	reviewRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:review", redisPrefix),
		WindowSeconds: cfg.Security.ReviewRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.ReviewRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.ReviewRateLimit.BlockSeconds,
		MessageKey:    "error.too_many_requests",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Static menu images.
	r.Static("/uploads", "./uploads")

	api := r.Group("/api")
	{
		api.GET("/menu", publicHandler.GetMenu)
		api.GET("/menu/categories", publicHandler.GetCategories)
		api.GET("/menu/categories/:category", publicHandler.GetCategoryItems)
		api.GET("/menu/:id", publicHandler.GetMenuItem)
		api.GET("/menu/search", publicHandler.Search)
		api.GET("/search", publicHandler.Search)

		api.GET("/reviews", publicHandler.ListReviews)
		api.GET("/reviews/:itemId", publicHandler.ListItemReviews)
		api.POST("/reviews", RateLimitMiddleware(redisClient, reviewRule, KeyByIP), publicHandler.CreateReview)
		api.DELETE("/reviews/:id", publicHandler.DeleteReview)

		api.GET("/cart", publicHandler.GetCart)
		api.POST("/cart/items", publicHandler.AddCartItem)
		api.POST("/cart/items/:id/decrement", publicHandler.DecrementCartItem)
		api.PUT("/cart/items/:id", publicHandler.SetCartItemQuantity)
		api.DELETE("/cart/items/:id", publicHandler.RemoveCartItem)
		api.DELETE("/cart", publicHandler.ClearCart)
		api.PUT("/cart/step", publicHandler.SetCheckoutStep)
		api.PUT("/cart/delivery", publicHandler.SetDelivery)

		api.POST("/checkout", publicHandler.Checkout)
		api.GET("/receipts/:receiptNo", publicHandler.GetReceipt)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
