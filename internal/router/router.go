// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/artmint/artmint-backend/internal/config"
	"github.com/artmint/artmint-backend/internal/handlers"
	"github.com/artmint/artmint-backend/internal/middleware"
	"github.com/artmint/artmint-backend/internal/repository"
	"github.com/artmint/artmint-backend/internal/services"
	"github.com/artmint/artmint-backend/internal/utils"
)

func Initialize(store repository.Store, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	// Initialize services
	settlementService := services.NewSettlementService(logger)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(store, cfg)
	artworkService := services.NewArtworkService(store)
	tokenService := services.NewTokenService(store)
	auctionService := services.NewAuctionService(store, settlementService, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	artistHandler := handlers.NewArtistHandler(authService, tokenService)
	artworkHandler := handlers.NewArtworkHandler(artworkService, storageService)
	tokenHandler := handlers.NewTokenHandler(tokenService, auctionService)
	auctionHandler := handlers.NewAuctionHandler(auctionService)
	transactionHandler := handlers.NewTransactionHandler(auctionService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit(cfg.RateLimit))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Artist routes
		artists := v1.Group("/artists")
		{
			artists.GET("/:id", artistHandler.GetArtist)
			artists.GET("/:id/tokens", artistHandler.GetArtistTokens)
		}

		// Artwork routes
		artworks := v1.Group("/artworks")
		{
			artworks.GET("/:id", artworkHandler.GetArtwork)

			protected := artworks.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", artworkHandler.MintArtwork)
				protected.POST("/upload-image", middleware.UploadRateLimit(cfg.RateLimit), artworkHandler.UploadImage)
			}
		}

		// Token routes
		tokens := v1.Group("/tokens")
		{
			tokens.GET("/:id", tokenHandler.GetToken)
			tokens.GET("/:id/transactions", tokenHandler.GetTokenTransactions)
			tokens.POST("", middleware.AuthRequired(), tokenHandler.MintToken)
		}

		// Auction routes
		auctions := v1.Group("/auctions")
		{
			auctions.GET("", auctionHandler.GetActiveAuctions)
			auctions.GET("/completed", auctionHandler.GetCompletedAuctions)
			auctions.GET("/:id", auctionHandler.GetAuction)

			protected := auctions.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", auctionHandler.CreateAuction)
				protected.POST("/:id/bids", auctionHandler.PlaceBid)
				protected.POST("/:id/cancel", auctionHandler.CancelAuction)
				protected.POST("/:id/finalize", auctionHandler.FinalizeAuction)
			}
		}

		// Transaction routes
		transactions := v1.Group("/transactions")
		{
			transactions.GET("/:id", transactionHandler.GetTransaction)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
