package handler

import (
	"voltx-wallet-engine/internal/adapter/http/dto"
	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles outbound transfer endpoints.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// SendOnChain handles POST /api/v1/transfers/onchain.
func (h *TransferHandler) SendOnChain(c *gin.Context) {
	var req dto.OnChainTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	transfer, err := h.transferSvc.SendOnChain(c.Request.Context(), ports.OnChainTransferRequest{
		ToAddress: req.ToAddress,
		Amount:    req.Amount,
		FeeRate:   domain.FeeRate(req.FeeRate),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromTransfer(transfer))
}

// SendLightning handles POST /api/v1/transfers/lightning.
func (h *TransferHandler) SendLightning(c *gin.Context) {
	var req dto.LightningTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	transfer, err := h.transferSvc.SendLightning(c.Request.Context(), ports.LightningTransferRequest{
		ToAddress: req.ToAddress,
		Amount:    req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromTransfer(transfer))
}

// EstimateFee handles GET /api/v1/transfers/fees?rate=normal.
func (h *TransferHandler) EstimateFee(c *gin.Context) {
	rate := domain.FeeRate(c.DefaultQuery("rate", string(domain.FeeRateNormal)))

	fee, estimated, err := h.transferSvc.EstimateOnChainFee(rate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FeeEstimateResponse{
		FeeRate:          string(rate),
		Fee:              fee.String(),
		EstimatedSeconds: int64(estimated.Seconds()),
	})
}
