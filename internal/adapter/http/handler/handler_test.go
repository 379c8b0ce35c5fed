package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voltx-wallet-engine/internal/adapter/http/dto"
	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/internal/core/ports/mocks"
	"voltx-wallet-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Wallet Handler Tests ---

func TestInitialize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	mockWallet.EXPECT().Initialize(gomock.Any()).Return(&domain.Wallet{
		BTCAddress:       "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		LightningAddress: "voltx@yakihonne.network",
		CreatedAt:        time.Now(),
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	h.Initialize(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", data["btc_address"])
	assert.Equal(t, "voltx@yakihonne.network", data["lightning_address"])
}

func TestGetWallet_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	mockWallet.EXPECT().Wallet(gomock.Any()).Return(nil, apperror.ErrWalletNotInitialized())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetWallet(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOverview_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	mockWallet.EXPECT().Overview(gomock.Any()).Return(&ports.WalletOverview{
		Wallet: &domain.Wallet{
			BTCAddress:       "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			LightningAddress: "voltx@yakihonne.network",
		},
		Balances: domain.Balance{
			"btc": decimal.RequireFromString("0.01"),
			"zmw": decimal.RequireFromString("100"),
		},
		LocalValue: decimal.RequireFromString("8425"),
		Country:    domain.DefaultCountry(),
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.Overview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "8425", data["local_value"])
	balances := data["balances"].(map[string]interface{})
	assert.Equal(t, "0.01", balances["btc"])
	country := data["country"].(map[string]interface{})
	assert.Equal(t, "zm", country["id"])
}

func TestListCountries(t *testing.T) {
	h := NewWalletHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.ListCountries(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, len(domain.SouthernAfricanCountries))
	first := items[0].(map[string]interface{})
	assert.Equal(t, "zm", first["id"])
	assert.Equal(t, "ZMW", first["currency"])
}

func TestSelectCountry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	mockWallet.EXPECT().SelectCountry(gomock.Any(), "mw").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", jsonBody(t, dto.SelectCountryRequest{CountryID: "mw"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SelectCountry(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSelectCountry_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	mockWallet.EXPECT().SelectCountry(gomock.Any(), "xx").Return(apperror.ErrUnknownCountry("xx"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", jsonBody(t, dto.SelectCountryRequest{CountryID: "xx"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SelectCountry(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Transfer Handler Tests ---

func TestSendOnChain_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransfer := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(mockTransfer)

	txID := uuid.New()
	now := time.Now()
	mockTransfer.EXPECT().SendOnChain(gomock.Any(), gomock.Any()).Return(&domain.Transfer{
		ID:            txID,
		Kind:          domain.TransferKindOnChain,
		FromAddress:   "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		ToAddress:     "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		Amount:        decimal.RequireFromString("0.01"),
		Fee:           decimal.RequireFromString("0.000065"),
		Status:        domain.TransferStatusConfirmed,
		TxHash:        "a1b2c3",
		EstimatedTime: 30 * time.Minute,
		CreatedAt:     now,
		ConfirmedAt:   &now,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.OnChainTransferRequest{
		ToAddress: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		Amount:    decimal.RequireFromString("0.01"),
		FeeRate:   "normal",
	}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SendOnChain(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, txID.String(), data["id"])
	assert.Equal(t, "confirmed", data["status"])
	assert.Equal(t, "0.000065", data["fee"])
	assert.Equal(t, float64(1800), data["estimated_seconds"])
}

func TestSendOnChain_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransfer := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(mockTransfer)

	mockTransfer.EXPECT().SendOnChain(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientFunds())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.OnChainTransferRequest{
		ToAddress: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		Amount:    decimal.RequireFromString("10"),
	}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SendOnChain(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestSendOnChain_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransferHandler(mocks.NewMockTransferService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SendOnChain(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendLightning_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransfer := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(mockTransfer)

	mockTransfer.EXPECT().SendLightning(gomock.Any(), ports.LightningTransferRequest{
		ToAddress: "alice@wallet.example",
		Amount:    decimal.RequireFromString("0.01"),
	}).Return(&domain.Transfer{
		ID:     uuid.New(),
		Kind:   domain.TransferKindLightning,
		Status: domain.TransferStatusConfirmed,
		TxHash: "ln_abc",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.LightningTransferRequest{
		ToAddress: "alice@wallet.example",
		Amount:    decimal.RequireFromString("0.01"),
	}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SendLightning(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "lightning", data["kind"])
	assert.Equal(t, "ln_abc", data["tx_hash"])
}

func TestEstimateFee_DefaultsToNormal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransfer := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(mockTransfer)

	mockTransfer.EXPECT().EstimateOnChainFee(domain.FeeRateNormal).
		Return(decimal.RequireFromString("0.000015"), 30*time.Minute, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.EstimateFee(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "normal", data["fee_rate"])
	assert.Equal(t, "0.000015", data["fee"])
}

func TestEstimateFee_UnknownRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransfer := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(mockTransfer)

	mockTransfer.EXPECT().EstimateOnChainFee(domain.FeeRate("bogus")).
		Return(decimal.Zero, time.Duration(0), apperror.Validation("Unknown fee rate"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?rate=bogus", nil)

	h.EstimateFee(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Conversion Handler Tests ---

func TestConvert_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	orderID := uuid.New()
	now := time.Now()
	mockConversion.EXPECT().Convert(gomock.Any(), ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	}).Return(&domain.ConversionOrder{
		ID:         orderID,
		FromAmount: decimal.RequireFromString("0.01"),
		ToAmount:   decimal.RequireFromString("8325"),
		ToCurrency: "ZMW",
		Status:     domain.ConversionStatusCompleted,
		Route:      []string{"BTC", "USDT", "ZMW"},
		Fees: domain.ConversionFees{
			Network:  decimal.RequireFromString("0.00001"),
			Protocol: decimal.RequireFromString("41.625"),
			Total:    decimal.RequireFromString("0.00006"),
		},
		SettlementID: "yaki_42",
		CountryID:    "zm",
		CreatedAt:    now,
		CompletedAt:  &now,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Convert(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, orderID.String(), data["id"])
	assert.Equal(t, "8325", data["to_amount"])
	assert.Equal(t, "yaki_42", data["settlement_id"])
	fees := data["fees"].(map[string]interface{})
	assert.Equal(t, "0.00006", fees["total"])
}

func TestConvert_RateUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	mockConversion.EXPECT().Convert(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrRateUnavailable(nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Convert(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestQuote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	mockConversion.EXPECT().QuoteConversion(gomock.Any(), gomock.Any()).Return(&ports.ConversionQuote{
		FromAmount: decimal.RequireFromString("0.01"),
		ToAmount:   decimal.RequireFromString("8325"),
		ToCurrency: "ZMW",
		Rate: domain.NewRateSnapshot("zm",
			decimal.NewFromInt(45000), decimal.RequireFromString("18.5"), time.Now()),
		Fees: domain.ConversionFees{
			Network:  decimal.RequireFromString("0.00001"),
			Protocol: decimal.RequireFromString("41.625"),
			Total:    decimal.RequireFromString("0.00006"),
		},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Quote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	rate := data["rate"].(map[string]interface{})
	assert.Equal(t, "832500", rate["btc_to_local"])
}

func TestMaxConvertible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	mockConversion.EXPECT().MaxConvertibleAmount(gomock.Any()).
		Return(decimal.RequireFromString("0.4999"), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.MaxConvertible(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "0.4999", data["amount"])
}

func TestSetAutoConvert_DefaultsThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	mockConversion.EXPECT().SetAutoConvert(gomock.Any(), domain.AutoConvertPolicy{
		Enabled:   true,
		Threshold: domain.DefaultAutoConvertThreshold,
		CountryID: "zm",
	}).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", jsonBody(t, dto.AutoConvertRequest{Enabled: true}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SetAutoConvert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["enabled"])
	assert.Equal(t, "0.001", data["threshold"])
}

func TestGetAutoConvert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConversion := mocks.NewMockConversionService(ctrl)
	h := NewConversionHandler(mockConversion)

	mockConversion.EXPECT().AutoConvertPolicy(gomock.Any()).Return(domain.AutoConvertPolicy{
		Enabled:   false,
		Threshold: domain.DefaultAutoConvertThreshold,
		CountryID: "zm",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetAutoConvert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["enabled"])
}

// --- History Handler Tests ---

func TestListTransfers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryStore(ctrl)
	h := NewHistoryHandler(mockHistory, nil, nil)

	mockHistory.EXPECT().Transfers(gomock.Any(), 50).Return([]domain.Transfer{
		{ID: uuid.New(), Kind: domain.TransferKindOnChain, Status: domain.TransferStatusConfirmed},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.ListTransfers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 1)
}

func TestListTransfers_CustomLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryStore(ctrl)
	h := NewHistoryHandler(mockHistory, nil, nil)

	mockHistory.EXPECT().Transfers(gomock.Any(), 5).Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=5", nil)

	h.ListTransfers(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListFees_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFees := mocks.NewMockFeeCollector(ctrl)
	h := NewHistoryHandler(nil, mockFees, nil)

	mockFees.EXPECT().Records(gomock.Any()).Return([]domain.FeeCollectionRecord{
		{
			TransactionID: uuid.New(),
			FeeAmount:     decimal.RequireFromString("0.00005"),
			FeeType:       domain.FeeTypeProtocol,
			Status:        domain.FeeStatusCollected,
		},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.ListFees(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "protocol", first["fee_type"])
}

func TestFeeTotal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFees := mocks.NewMockFeeCollector(ctrl)
	h := NewHistoryHandler(nil, mockFees, nil)

	mockFees.EXPECT().TotalCollected(gomock.Any()).Return(decimal.RequireFromString("0.00012"), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.FeeTotal(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "0.00012", data["total_collected"])
	assert.Equal(t, "btc", data["currency"])
}

func TestArchiveStats_Disabled(t *testing.T) {
	h := NewHistoryHandler(nil, nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.ArchiveStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(0), data["transfers"])
}

func TestArchiveStats_Enabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArchive := mocks.NewMockArchiveRepository(ctrl)
	h := NewHistoryHandler(nil, nil, mockArchive)

	mockArchive.EXPECT().CountArchived(gomock.Any()).Return(int64(12), int64(3), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.ArchiveStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(12), data["transfers"])
	assert.Equal(t, float64(3), data["conversions"])
}

// --- Security Handler Tests ---

func TestSetPIN_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSec := mocks.NewMockSecurityService(ctrl)
	h := NewSecurityHandler(mockSec)

	mockSec.EXPECT().SetPIN(gomock.Any(), "1234").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.SetPINRequest{PIN: "1234"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SetPIN(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSetPIN_TooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSecurityHandler(mocks.NewMockSecurityService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.SetPINRequest{PIN: "12"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SetPIN(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyPIN_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSec := mocks.NewMockSecurityService(ctrl)
	h := NewSecurityHandler(mockSec)

	expiry := time.Now().Add(time.Hour)
	mockSec.EXPECT().VerifyPIN(gomock.Any(), "1234").Return("jwt-token-123", expiry, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.VerifyPINRequest{PIN: "1234"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.VerifyPIN(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "jwt-token-123", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expires_at"])
}

func TestVerifyPIN_Wrong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSec := mocks.NewMockSecurityService(ctrl)
	h := NewSecurityHandler(mockSec)

	mockSec.EXPECT().VerifyPIN(gomock.Any(), "0000").Return("", time.Time{}, apperror.ErrInvalidPIN())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.VerifyPINRequest{PIN: "0000"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.VerifyPIN(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Health Check Test ---

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
