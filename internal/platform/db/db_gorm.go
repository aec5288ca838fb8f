// Package db opens the gorm connection and owns the schema migration.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stock_synth/internal/app/config"
	candleadapters "stock_synth/internal/feature/candles/adapters"
	comparisonadapters "stock_synth/internal/feature/comparison/adapters"
	indicatoradapters "stock_synth/internal/feature/indicators/adapters"
	indexadapters "stock_synth/internal/feature/indices/adapters"
	moveradapters "stock_synth/internal/feature/movers/adapters"
	profileadapters "stock_synth/internal/feature/profile/adapters"
	quoteadapters "stock_synth/internal/feature/quotes/adapters"
	symboladapters "stock_synth/internal/feature/symbollist/adapters"
)

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// Models is every table the application owns, in migration order.
func Models() []any {
	return []any{
		&symboladapters.SymbolModel{},
		&quoteadapters.QuoteModel{},
		&moveradapters.MoverModel{},
		&candleadapters.CandleModel{},
		&indicatoradapters.IndicatorModel{},
		&comparisonadapters.SeriesPointModel{},
		&comparisonadapters.WorkspaceModel{},
		&indexadapters.IndexModel{},
		&indexadapters.IntradayPointModel{},
		&profileadapters.CompanyModel{},
	}
}

// BuildDSN resolves the DSN for the configured driver.
// sqlite falls back to SQLitePath when DSN is empty.
func BuildDSN(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case "sqlite":
		if cfg.DSN != "" {
			return cfg.DSN, nil
		}
		return cfg.SQLitePath, nil
	case "postgres":
		if cfg.DSN == "" {
			return "", fmt.Errorf("postgres driver requires a DSN")
		}
		return cfg.DSN, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// NewOpener returns the gorm opener for driver.
func NewOpener(driver string) (Opener, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	switch driver {
	case "sqlite":
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}, nil
	case "postgres":
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// ConnectWithRetry calls open until it succeeds or timeout elapses,
// sleeping interval between attempts.
func ConnectWithRetry(dsn string, timeout, interval time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", interval)
		time.Sleep(interval)
	}
}

// Open connects with retry and, when enabled, migrates the schema.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}
	opener, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(dsn, cfg.ConnectTimeout, cfg.RetryInterval, opener)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "driver", cfg.Driver)

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates every table in Models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}
