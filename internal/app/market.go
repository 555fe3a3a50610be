package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/datamarket-backend/internal/adapter/memory"
	"github.com/heartmarshall/datamarket-backend/internal/adapter/postgres"
	pgcategory "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres/category"
	pgevent "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres/event"
	pgpermission "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres/permission"
	pgrequest "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres/request"
	pgsettings "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres/settings"
	pgwallet "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres/wallet"
	"github.com/heartmarshall/datamarket-backend/internal/config"
	"github.com/heartmarshall/datamarket-backend/internal/domain"
	"github.com/heartmarshall/datamarket-backend/internal/service/category"
	"github.com/heartmarshall/datamarket-backend/internal/service/fee"
	"github.com/heartmarshall/datamarket-backend/internal/service/permission"
	"github.com/heartmarshall/datamarket-backend/internal/service/request"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type feeSeeder interface {
	EnsureFeePercent(ctx context.Context, percent uint8) error
}

// Market holds the wired services over one storage backend.
type Market struct {
	Categories  *category.Service
	Permissions *permission.Service
	Fees        *fee.Service
	Requests    *request.Service

	backend string
	storage pinger
	seeder  feeSeeder
	close   func()
}

// OpenMarket connects the configured storage backend and wires the services.
// The caller must call Close.
func OpenMarket(ctx context.Context, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*Market, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return newMemoryMarket(cfg.Market, logger, clock), nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return newPostgresMarket(pool, cfg.Market, logger, clock), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newMemoryMarket(cfg config.MarketConfig, logger *slog.Logger, clock clockwork.Clock) *Market {
	store := memory.New()

	fees := fee.NewService(logger, store.Settings(), store.Events(), store, clock, domain.Account(cfg.FeeAdmin))
	permissions := permission.NewService(logger, store.Categories(), store.Permissions(), store.Events(), store, clock)

	return &Market{
		Categories:  category.NewService(logger, store.Categories(), store.Events(), store, clock),
		Permissions: permissions,
		Fees:        fees,
		Requests: request.NewService(logger, store.Categories(), store.Requests(), fees, permissions,
			store.Wallet(), store.Events(), store, clock, domain.Account(cfg.PlatformWallet)),
		backend: config.StorageMemory,
		storage: store,
		seeder:  store.Settings(),
		close:   func() {},
	}
}

func newPostgresMarket(pool *pgxpool.Pool, cfg config.MarketConfig, logger *slog.Logger, clock clockwork.Clock) *Market {
	tx := postgres.NewTxManager(pool)
	categories := pgcategory.New(pool)
	events := pgevent.New(pool)
	settings := pgsettings.New(pool)

	fees := fee.NewService(logger, settings, events, tx, clock, domain.Account(cfg.FeeAdmin))
	permissions := permission.NewService(logger, categories, pgpermission.New(pool), events, tx, clock)

	return &Market{
		Categories:  category.NewService(logger, categories, events, tx, clock),
		Permissions: permissions,
		Fees:        fees,
		Requests: request.NewService(logger, categories, pgrequest.New(pool), fees, permissions,
			pgwallet.New(pool), events, tx, clock, domain.Account(cfg.PlatformWallet)),
		backend: config.StoragePostgres,
		storage: pool,
		seeder:  settings,
		close:   pool.Close,
	}
}

// SeedFeePercent stores percent as the fee schedule unless one exists.
func (m *Market) SeedFeePercent(ctx context.Context, percent int) error {
	if percent < 0 || percent > fee.MaxPercent {
		return fmt.Errorf("seed fee percent %d: %w", percent, domain.ErrPercentageExceeded)
	}
	if err := m.seeder.EnsureFeePercent(ctx, uint8(percent)); err != nil {
		return fmt.Errorf("seed fee percent: %w", err)
	}
	return nil
}

// Backend names the storage backend in use.
func (m *Market) Backend() string { return m.backend }

// Ping checks the storage backend.
func (m *Market) Ping(ctx context.Context) error { return m.storage.Ping(ctx) }

// Close releases the storage backend.
func (m *Market) Close() { m.close() }
