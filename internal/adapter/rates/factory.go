package rates

import (
	"fmt"

	"voltx-wallet-engine/config"
	"voltx-wallet-engine/internal/core/ports"
)

// NewProvider builds the rate provider selected by configuration.
func NewProvider(cfg config.RatesConfig) (ports.RateProvider, error) {
	switch cfg.Provider {
	case "", "static":
		return NewStaticProvider(), nil
	case "coingecko":
		return NewCoinGeckoProvider(cfg.BaseURL, cfg.APIKey, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown rate provider %q", cfg.Provider)
	}
}
