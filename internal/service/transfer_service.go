package service

import (
	"context"
	"fmt"
	"time"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TransferServiceImpl implements ports.TransferService.
//
// Both send paths follow the same shape: validate, reserve the full debit on
// the ledger, then delegate to the broadcaster under a bounded timeout. A
// failed or timed-out broadcast credits the reservation back, so the ledger
// only ever reflects money that actually left the wallet.
type TransferServiceImpl struct {
	ledger      ports.BalanceLedger
	walletRepo  ports.WalletRepository
	broadcaster ports.NetworkBroadcaster
	fees        ports.FeeCollector
	history     ports.HistoryStore
	archive     ports.ArchiveRepository // optional, best effort
	timeout     time.Duration
	met         *metrics.Metrics
	log         zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl. archive may be nil
// when no long-term archive is configured.
func NewTransferService(
	ledger ports.BalanceLedger,
	walletRepo ports.WalletRepository,
	broadcaster ports.NetworkBroadcaster,
	fees ports.FeeCollector,
	history ports.HistoryStore,
	archive ports.ArchiveRepository,
	timeout time.Duration,
	met *metrics.Metrics,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		ledger:      ledger,
		walletRepo:  walletRepo,
		broadcaster: broadcaster,
		fees:        fees,
		history:     history,
		archive:     archive,
		timeout:     timeout,
		met:         met,
		log:         log,
	}
}

// SendOnChain sends BTC to an on-chain address.
func (s *TransferServiceImpl) SendOnChain(ctx context.Context, req ports.OnChainTransferRequest) (*domain.Transfer, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.ErrInvalidAmount()
	}
	if !domain.ValidBitcoinAddress(req.ToAddress) {
		return nil, apperror.ErrInvalidBitcoinAddress()
	}
	rate := req.FeeRate
	if rate == "" {
		rate = domain.FeeRateNormal
	}
	if !rate.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("Unknown fee rate: %s", rate))
	}

	wallet, err := s.wallet(ctx)
	if err != nil {
		return nil, err
	}

	networkFee := domain.OnChainNetworkFee(rate)
	protocolFee := domain.ProtocolFee(req.Amount)

	transfer := &domain.Transfer{
		ID:            uuid.New(),
		Kind:          domain.TransferKindOnChain,
		FromAddress:   wallet.BTCAddress,
		ToAddress:     req.ToAddress,
		Amount:        req.Amount,
		Fee:           networkFee.Add(protocolFee),
		Status:        domain.TransferStatusPending,
		EstimatedTime: domain.EstimatedConfirmation(rate),
		CreatedAt:     time.Now(),
	}

	return s.execute(ctx, transfer, networkFee, protocolFee)
}

// SendLightning sends BTC over Lightning to an address or LNURL.
func (s *TransferServiceImpl) SendLightning(ctx context.Context, req ports.LightningTransferRequest) (*domain.Transfer, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.ErrInvalidAmount()
	}
	if !domain.ValidLightningAddress(req.ToAddress) {
		return nil, apperror.ErrInvalidLightningAddress()
	}

	wallet, err := s.wallet(ctx)
	if err != nil {
		return nil, err
	}

	networkFee := domain.LightningNetworkFee(req.Amount)
	protocolFee := domain.ProtocolFee(req.Amount)

	transfer := &domain.Transfer{
		ID:            uuid.New(),
		Kind:          domain.TransferKindLightning,
		FromAddress:   wallet.LightningAddress,
		ToAddress:     req.ToAddress,
		Amount:        req.Amount,
		Fee:           networkFee.Add(protocolFee),
		Status:        domain.TransferStatusPending,
		EstimatedTime: domain.LightningConfirmation,
		CreatedAt:     time.Now(),
	}

	return s.execute(ctx, transfer, networkFee, protocolFee)
}

// EstimateOnChainFee quotes the network fee and advisory confirmation time
// for a tier without touching the ledger.
func (s *TransferServiceImpl) EstimateOnChainFee(rate domain.FeeRate) (decimal.Decimal, time.Duration, error) {
	if rate == "" {
		rate = domain.FeeRateNormal
	}
	if !rate.Valid() {
		return decimal.Zero, 0, apperror.Validation(fmt.Sprintf("Unknown fee rate: %s", rate))
	}
	return domain.OnChainNetworkFee(rate), domain.EstimatedConfirmation(rate), nil
}

// execute runs the reserve -> broadcast -> settle state machine.
func (s *TransferServiceImpl) execute(ctx context.Context, transfer *domain.Transfer, networkFee, protocolFee decimal.Decimal) (*domain.Transfer, error) {
	if err := s.ledger.TryDebit(ctx, domain.CurrencyBTC, transfer.TotalDebit()); err != nil {
		return nil, err
	}

	transfer.Status = domain.TransferStatusBroadcasting
	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("kind", string(transfer.Kind)).
		Str("amount", transfer.Amount.String()).
		Str("to", transfer.ToAddress).
		Msg("broadcasting transfer")

	type broadcastResult struct {
		hash string
		err  error
	}

	bctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resultCh := make(chan broadcastResult, 1)
	go func() {
		hash, err := s.broadcaster.Broadcast(bctx, transfer)
		resultCh <- broadcastResult{hash: hash, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return nil, s.fail(ctx, transfer, apperror.ErrBroadcastFailed(res.err))
		}
		return s.confirm(ctx, transfer, res.hash, networkFee, protocolFee)
	case <-bctx.Done():
		return nil, s.fail(ctx, transfer, apperror.ErrDelegationTimeout())
	}
}

func (s *TransferServiceImpl) confirm(ctx context.Context, transfer *domain.Transfer, txHash string, networkFee, protocolFee decimal.Decimal) (*domain.Transfer, error) {
	now := time.Now()
	transfer.TxHash = txHash
	transfer.Status = domain.TransferStatusConfirmed
	transfer.ConfirmedAt = &now

	// Fee routing and bookkeeping are best effort: the money already moved.
	if err := s.fees.Schedule(ctx, transfer.ID, networkFee, domain.FeeTypeNetwork); err != nil {
		s.log.Warn().Err(err).Str("transfer_id", transfer.ID.String()).Msg("network fee collection failed")
	}
	if err := s.fees.Schedule(ctx, transfer.ID, protocolFee, domain.FeeTypeProtocol); err != nil {
		s.log.Warn().Err(err).Str("transfer_id", transfer.ID.String()).Msg("protocol fee collection failed")
	}
	s.finish(ctx, transfer)

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("tx_hash", txHash).
		Msg("transfer confirmed")
	return transfer, nil
}

// fail marks the transfer failed and credits the reservation back.
func (s *TransferServiceImpl) fail(ctx context.Context, transfer *domain.Transfer, cause error) error {
	transfer.Status = domain.TransferStatusFailed

	if err := s.ledger.Credit(ctx, domain.CurrencyBTC, transfer.TotalDebit()); err != nil {
		s.log.Error().Err(err).
			Str("transfer_id", transfer.ID.String()).
			Str("amount", transfer.TotalDebit().String()).
			Msg("compensating credit failed, reservation stuck")
	}
	s.finish(ctx, transfer)

	s.log.Warn().Err(cause).
		Str("transfer_id", transfer.ID.String()).
		Msg("transfer failed")
	return cause
}

// finish records the terminal transfer in history, archive and metrics.
func (s *TransferServiceImpl) finish(ctx context.Context, transfer *domain.Transfer) {
	if err := s.history.RecordTransfer(ctx, transfer); err != nil {
		s.log.Warn().Err(err).Str("transfer_id", transfer.ID.String()).Msg("history write failed")
	}
	if s.archive != nil {
		if err := s.archive.ArchiveTransfer(ctx, transfer); err != nil {
			s.log.Warn().Err(err).Str("transfer_id", transfer.ID.String()).Msg("archive write failed")
		}
	}
	if s.met != nil {
		s.met.TransfersTotal.WithLabelValues(string(transfer.Kind), string(transfer.Status)).Inc()
	}
}

func (s *TransferServiceImpl) wallet(ctx context.Context) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Get(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("load wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotInitialized()
	}
	return wallet, nil
}
