package handler

import (
	"net/http"

	"voltx-wallet-engine/internal/adapter/http/middleware"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	TransferSvc    ports.TransferService
	ConversionSvc  ports.ConversionService
	SecuritySvc    ports.SecurityService
	HistoryStore   ports.HistoryStore
	FeeCollector   ports.FeeCollector
	ArchiveRepo    ports.ArchiveRepository // nil = archive disabled
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Metrics // nil = /metrics disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies Redis and the optional archive)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	transferHandler := NewTransferHandler(deps.TransferSvc)
	conversionHandler := NewConversionHandler(deps.ConversionSvc)
	securityHandler := NewSecurityHandler(deps.SecuritySvc)
	historyHandler := NewHistoryHandler(deps.HistoryStore, deps.FeeCollector, deps.ArchiveRepo)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (reads and bootstrap) ---
	v1.POST("/wallet/initialize", walletHandler.Initialize)
	v1.GET("/wallet", walletHandler.GetWallet)
	v1.GET("/wallet/overview", walletHandler.Overview)
	v1.GET("/countries", walletHandler.ListCountries)

	security := v1.Group("/security")
	{
		security.POST("/pin", securityHandler.SetPIN)
		security.POST("/session", securityHandler.VerifyPIN)
	}

	v1.GET("/transfers/fees", transferHandler.EstimateFee)
	v1.POST("/conversions/quote", conversionHandler.Quote)
	v1.GET("/conversions/max", conversionHandler.MaxConvertible)
	v1.GET("/conversions/auto-convert", conversionHandler.GetAutoConvert)

	history := v1.Group("/history")
	{
		history.GET("/transfers", historyHandler.ListTransfers)
		history.GET("/conversions", historyHandler.ListConversions)
		history.GET("/fees", historyHandler.ListFees)
		history.GET("/fees/total", historyHandler.FeeTotal)
		history.GET("/archive", historyHandler.ArchiveStats)
	}

	// --- Session-authenticated routes (value moves) ---
	sessionAuth := middleware.SessionAuth(deps.SecuritySvc, deps.Logger)

	v1.PUT("/wallet/country", sessionAuth, walletHandler.SelectCountry)

	transfers := v1.Group("/transfers", sessionAuth)
	{
		transfers.POST("/onchain", transferHandler.SendOnChain)
		transfers.POST("/lightning", transferHandler.SendLightning)
	}

	conversions := v1.Group("/conversions", sessionAuth)
	{
		conversions.POST("", conversionHandler.Convert)
		conversions.PUT("/auto-convert", conversionHandler.SetAutoConvert)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error_code": "SYS_404",
			"message":    "Route not found",
		})
	})

	return r
}
