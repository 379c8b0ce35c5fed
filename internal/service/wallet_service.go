package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

const selectedCountryKey = "selected_country"

// Demo wallet identity. Real key material lives in the signing enclave; the
// engine only ever sees addresses.
const (
	defaultBTCAddress       = "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"
	defaultLightningAddress = "voltx@yakihonne.network"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	ledger     ports.BalanceLedger
	rates      ports.RateCache
	kv         ports.KeyValueStore
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	ledger ports.BalanceLedger,
	rates ports.RateCache,
	kv ports.KeyValueStore,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		ledger:     ledger,
		rates:      rates,
		kv:         kv,
		log:        log,
	}
}

// Initialize creates the wallet identity if none exists. Re-initialization
// returns the existing wallet unchanged.
func (s *WalletServiceImpl) Initialize(ctx context.Context) (*domain.Wallet, error) {
	existing, err := s.walletRepo.Get(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("load wallet: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	wallet := &domain.Wallet{
		BTCAddress:       defaultBTCAddress,
		LightningAddress: defaultLightningAddress,
		CreatedAt:        time.Now(),
	}
	if err := s.walletRepo.Save(ctx, wallet); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("save wallet: %w", err))
	}

	s.log.Info().Str("btc_address", wallet.BTCAddress).Msg("wallet initialized")
	return wallet, nil
}

// Wallet returns the wallet identity.
func (s *WalletServiceImpl) Wallet(ctx context.Context) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Get(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("load wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotInitialized()
	}
	return wallet, nil
}

// Overview aggregates balances and their value in the selected corridor's
// local currency.
func (s *WalletServiceImpl) Overview(ctx context.Context) (*ports.WalletOverview, error) {
	wallet, err := s.Wallet(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := s.ledger.Balances(ctx)
	if err != nil {
		return nil, err
	}
	country, err := s.selectedCountry(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := s.rates.Snapshot(ctx, country.ID)
	if err != nil {
		return nil, err
	}

	localValue := balances.Get(domain.CurrencyBTC).Mul(snap.BTCToLocal).
		Add(balances.Get(country.LedgerCurrency()))

	return &ports.WalletOverview{
		Wallet:     wallet,
		Balances:   balances,
		LocalValue: localValue,
		Country:    country,
	}, nil
}

// SelectCountry persists the payout corridor used by aggregate views.
func (s *WalletServiceImpl) SelectCountry(ctx context.Context, countryID string) error {
	country := domain.CountryByID(countryID)
	if country == nil {
		return apperror.ErrUnknownCountry(countryID)
	}
	data, err := json.Marshal(country)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("encode country: %w", err))
	}
	if err := s.kv.Set(ctx, selectedCountryKey, data); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("save country: %w", err))
	}
	s.log.Info().Str("country", countryID).Msg("payout corridor selected")
	return nil
}

func (s *WalletServiceImpl) selectedCountry(ctx context.Context) (domain.Country, error) {
	data, err := s.kv.Get(ctx, selectedCountryKey)
	if err != nil {
		return domain.Country{}, apperror.ErrPersistence(fmt.Errorf("load country: %w", err))
	}
	if data == nil {
		return domain.DefaultCountry(), nil
	}
	var country domain.Country
	if err := json.Unmarshal(data, &country); err != nil {
		return domain.Country{}, apperror.ErrPersistence(fmt.Errorf("decode country: %w", err))
	}
	return country, nil
}
