package handler

import (
	"strconv"

	"voltx-wallet-engine/internal/adapter/http/dto"
	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 50

// HistoryHandler handles activity history and fee trail endpoints.
type HistoryHandler struct {
	history ports.HistoryStore
	fees    ports.FeeCollector
	archive ports.ArchiveRepository // nil = archive disabled
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history ports.HistoryStore, fees ports.FeeCollector, archive ports.ArchiveRepository) *HistoryHandler {
	return &HistoryHandler{history: history, fees: fees, archive: archive}
}

// ListTransfers handles GET /api/v1/history/transfers.
func (h *HistoryHandler) ListTransfers(c *gin.Context) {
	transfers, err := h.history.Transfers(c.Request.Context(), queryLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		items = append(items, dto.FromTransfer(&transfers[i]))
	}
	response.OK(c, items)
}

// ListConversions handles GET /api/v1/history/conversions.
func (h *HistoryHandler) ListConversions(c *gin.Context) {
	orders, err := h.history.Conversions(c.Request.Context(), queryLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ConversionResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.FromConversion(&orders[i]))
	}
	response.OK(c, items)
}

// ListFees handles GET /api/v1/history/fees.
func (h *HistoryHandler) ListFees(c *gin.Context) {
	records, err := h.fees.Records(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.FeeRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.FromFeeRecord(r))
	}
	response.OK(c, items)
}

// FeeTotal handles GET /api/v1/history/fees/total.
func (h *HistoryHandler) FeeTotal(c *gin.Context) {
	total, err := h.fees.TotalCollected(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FeeTotalResponse{
		TotalCollected: total.String(),
		Currency:       domain.CurrencyBTC,
	})
}

// ArchiveStats handles GET /api/v1/history/archive.
func (h *HistoryHandler) ArchiveStats(c *gin.Context) {
	if h.archive == nil {
		response.OK(c, dto.ArchiveStatsResponse{})
		return
	}

	transfers, conversions, err := h.archive.CountArchived(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ArchiveStatsResponse{Transfers: transfers, Conversions: conversions})
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}
	return limit
}
