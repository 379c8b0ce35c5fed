package handler

import (
	"net/http"

	"voltx-wallet-engine/internal/adapter/http/dto"
	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet identity and overview endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Initialize handles POST /api/v1/wallet/initialize.
func (h *WalletHandler) Initialize(c *gin.Context) {
	wallet, err := h.walletSvc.Initialize(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromWallet(wallet))
}

// GetWallet handles GET /api/v1/wallet.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.walletSvc.Wallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}

// Overview handles GET /api/v1/wallet/overview.
func (h *WalletHandler) Overview(c *gin.Context) {
	overview, err := h.walletSvc.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromOverview(overview))
}

// ListCountries handles GET /api/v1/countries.
func (h *WalletHandler) ListCountries(c *gin.Context) {
	countries := make([]dto.CountryResponse, 0, len(domain.SouthernAfricanCountries))
	for _, country := range domain.SouthernAfricanCountries {
		countries = append(countries, dto.FromCountry(country))
	}
	response.OK(c, countries)
}

// SelectCountry handles PUT /api/v1/wallet/country.
func (h *WalletHandler) SelectCountry(c *gin.Context) {
	var req dto.SelectCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.walletSvc.SelectCountry(c.Request.Context(), req.CountryID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"country_id": req.CountryID})
}

// HealthCheck handles GET /health, verifying all storage dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
