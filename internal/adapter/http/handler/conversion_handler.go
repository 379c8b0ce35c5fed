package handler

import (
	"voltx-wallet-engine/internal/adapter/http/dto"
	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConversionHandler handles conversion endpoints.
type ConversionHandler struct {
	conversionSvc ports.ConversionService
}

// NewConversionHandler creates a new ConversionHandler.
func NewConversionHandler(conversionSvc ports.ConversionService) *ConversionHandler {
	return &ConversionHandler{conversionSvc: conversionSvc}
}

// Convert handles POST /api/v1/conversions.
func (h *ConversionHandler) Convert(c *gin.Context) {
	var req dto.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	order, err := h.conversionSvc.Convert(c.Request.Context(), ports.ConversionRequest{
		Amount:    req.Amount,
		CountryID: req.CountryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromConversion(order))
}

// Quote handles POST /api/v1/conversions/quote.
func (h *ConversionHandler) Quote(c *gin.Context) {
	var req dto.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	quote, err := h.conversionSvc.QuoteConversion(c.Request.Context(), ports.ConversionRequest{
		Amount:    req.Amount,
		CountryID: req.CountryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.QuoteResponse{
		FromAmount: quote.FromAmount.String(),
		ToAmount:   quote.ToAmount.String(),
		ToCurrency: quote.ToCurrency,
		Rate:       dto.FromRateSnapshot(quote.Rate),
		Fees:       dto.FromConversionFees(quote.Fees),
	})
}

// MaxConvertible handles GET /api/v1/conversions/max.
func (h *ConversionHandler) MaxConvertible(c *gin.Context) {
	amount, err := h.conversionSvc.MaxConvertibleAmount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.MaxConvertibleResponse{Amount: amount.String()})
}

// GetAutoConvert handles GET /api/v1/conversions/auto-convert.
func (h *ConversionHandler) GetAutoConvert(c *gin.Context) {
	policy, err := h.conversionSvc.AutoConvertPolicy(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromAutoConvertPolicy(policy))
}

// SetAutoConvert handles PUT /api/v1/conversions/auto-convert.
func (h *ConversionHandler) SetAutoConvert(c *gin.Context) {
	var req dto.AutoConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	policy := domain.AutoConvertPolicy{
		Enabled:   req.Enabled,
		Threshold: domain.DefaultAutoConvertThreshold,
		CountryID: req.CountryID,
	}
	if req.Threshold != nil {
		policy.Threshold = *req.Threshold
	}
	if policy.CountryID == "" {
		policy.CountryID = domain.DefaultCountry().ID
	}

	if err := h.conversionSvc.SetAutoConvert(c.Request.Context(), policy); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromAutoConvertPolicy(policy))
}
