package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidBitcoinAddress() *AppError {
	return New("VAL_002", "Invalid Bitcoin address", http.StatusBadRequest)
}

func ErrInvalidLightningAddress() *AppError {
	return New("VAL_003", "Invalid Lightning address", http.StatusBadRequest)
}

func ErrUnknownCountry(id string) *AppError {
	return New("VAL_004", fmt.Sprintf("Unknown country: %s", id), http.StatusBadRequest)
}

// Validation returns a generic VAL_001-style validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Funds & Wallet (FUNDS, WALLET) ----

func ErrInsufficientFunds() *AppError {
	return New("FUNDS_001", "Insufficient balance for amount plus fees", http.StatusPaymentRequired)
}

func ErrWalletNotInitialized() *AppError {
	return New("WALLET_001", "Wallet not initialized", http.StatusConflict)
}

// ---- Network delegations (NET) ----

func ErrBroadcastFailed(err error) *AppError {
	return Wrap("NET_001", "Transaction broadcast failed", http.StatusBadGateway, err)
}

func ErrSettlementFailed(err error) *AppError {
	return Wrap("NET_002", "Conversion settlement failed", http.StatusBadGateway, err)
}

func ErrRateUnavailable(err error) *AppError {
	return Wrap("NET_003", "Exchange rate unavailable", http.StatusBadGateway, err)
}

func ErrDelegationTimeout() *AppError {
	return New("NET_004", "External delegation timed out", http.StatusGatewayTimeout)
}

// ---- Persistence (STORE) ----

func ErrPersistence(err error) *AppError {
	return Wrap("STORE_001", "Storage failure", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidPIN() *AppError {
	return New("AUTH_001", "Invalid PIN", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrPINNotSet() *AppError {
	return New("AUTH_003", "No PIN configured", http.StatusConflict)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
