package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Account fields are normalized in place.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StoragePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %s storage backend", StoragePostgres)
		}
		if c.Database.LockTimeout < 0 {
			return fmt.Errorf("database.lock_timeout must not be negative (got %s)", c.Database.LockTimeout)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("storage.backend must be %q or %q (got %q)", StoragePostgres, StorageMemory, c.Storage.Backend)
	}

	if err := c.Market.validate(); err != nil {
		return fmt.Errorf("market: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (m *MarketConfig) validate() error {
	m.PlatformWallet = string(domain.NormalizeAccount(domain.Account(m.PlatformWallet)))
	m.FeeAdmin = string(domain.NormalizeAccount(domain.Account(m.FeeAdmin)))

	if m.PlatformWallet == "" {
		return fmt.Errorf("platform_wallet must not be empty")
	}
	if m.FeeAdmin == "" {
		return fmt.Errorf("fee_admin must not be empty")
	}
	if m.DefaultFeePercent < 0 || m.DefaultFeePercent > 100 {
		return fmt.Errorf("default_fee_percent must be in 0..100 (got %d)", m.DefaultFeePercent)
	}
	return nil
}
