// Command setfee changes the platform fee percentage on behalf of the
// configured fee admin. New values apply to approvals made afterwards.
//
// Usage:
//
//	setfee --percent=5 [--config=./config.yaml]
//
// Requires the postgres storage backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/datamarket-backend/internal/app"
	"github.com/heartmarshall/datamarket-backend/internal/config"
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

func main() {
	percent := flag.Int("percent", -1, "platform fee percentage, 0..100")
	configPath := flag.String("config", "", "config file; defaults to CONFIG_PATH or ./config.yaml")
	flag.Parse()

	if *percent < 0 {
		fmt.Fprintln(os.Stderr, "Usage: setfee --percent=5")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Backend != config.StoragePostgres {
		log.Fatalf("setfee requires the %s storage backend", config.StoragePostgres)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	market, err := app.OpenMarket(ctx, cfg, logger, clockwork.NewRealClock())
	if err != nil {
		logger.Error("open market", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer market.Close()

	if err := market.SeedFeePercent(ctx, cfg.Market.DefaultFeePercent); err != nil {
		logger.Error("seed fee percent", slog.String("error", err.Error()))
		os.Exit(1)
	}

	previous, err := market.Fees.Percent(ctx)
	if err != nil {
		logger.Error("read fee percent", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := market.Fees.SetPercent(ctx, domain.Account(cfg.Market.FeeAdmin), *percent); err != nil {
		logger.Error("set fee percent", slog.Int("percent", *percent), slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Platform fee changed from %d%% to %d%%.\n", previous, *percent)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
