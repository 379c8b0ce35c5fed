package handler

import (
	"voltx-wallet-engine/internal/adapter/http/dto"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// SecurityHandler handles PIN and session endpoints.
type SecurityHandler struct {
	secSvc ports.SecurityService
}

// NewSecurityHandler creates a new SecurityHandler.
func NewSecurityHandler(secSvc ports.SecurityService) *SecurityHandler {
	return &SecurityHandler{secSvc: secSvc}
}

// SetPIN handles POST /api/v1/security/pin.
func (h *SecurityHandler) SetPIN(c *gin.Context) {
	var req dto.SetPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.secSvc.SetPIN(c.Request.Context(), req.PIN); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"configured": true})
}

// VerifyPIN handles POST /api/v1/security/session.
func (h *SecurityHandler) VerifyPIN(c *gin.Context) {
	var req dto.VerifyPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiresAt, err := h.secSvc.VerifyPIN(c.Request.Context(), req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	})
}
