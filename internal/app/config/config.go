// Package config loads application settings from the environment.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the full set of runtime settings.
type Config struct {
	Server     ServerConfig     `env:", prefix=SERVER_"`
	DB         DBConfig         `env:", prefix=DB_"`
	Redis      RedisConfig      `env:", prefix=REDIS_"`
	Cache      CacheConfig      `env:", prefix=CACHE_"`
	Workspace  WorkspaceConfig  `env:", prefix=WORKSPACE_"`
	Prediction PredictionConfig `env:", prefix=PREDICTION_"`
	Metrics    MetricsConfig    `env:", prefix=METRICS_"`
	Log        LogConfig        `env:", prefix=LOG_"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int           `env:"PORT, default=8080"`
	GinMode         string        `env:"GIN_MODE, default=release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
	// AllowOrigins is the CORS allow list for the dashboard front end.
	AllowOrigins []string `env:"ALLOW_ORIGINS, default=*"`
}

// DBConfig selects and configures the gorm driver.
type DBConfig struct {
	Driver         string        `env:"DRIVER, default=sqlite"` // sqlite | postgres
	DSN            string        `env:"DSN"`
	SQLitePath     string        `env:"SQLITE_PATH, default=./stock_synth.db"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS, default=true"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT, default=60s"`
	RetryInterval  time.Duration `env:"RETRY_INTERVAL, default=3s"`
}

// RedisConfig configures the optional Redis client.
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED, default=true"`
	Host     string `env:"HOST, default=localhost"`
	Port     string `env:"PORT, default=6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB, default=0"`
}

// Addr returns host:port.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// CacheConfig configures the candle read cache.
type CacheConfig struct {
	// TTL of zero means "until the next daily refresh".
	TTL         time.Duration `env:"TTL, default=0s"`
	RefreshHour int           `env:"REFRESH_HOUR, default=8"`
	RefreshZone string        `env:"REFRESH_ZONE, default=Asia/Tokyo"`
	Namespace   string        `env:"NAMESPACE, default=candles"`
}

// WorkspaceConfig configures comparison workspaces.
type WorkspaceConfig struct {
	TTL         time.Duration `env:"TTL, default=24h"`
	PurgeCron   string        `env:"PURGE_CRON, default=0 */15 * * * *"`
	TokenSecret string        `env:"TOKEN_SECRET"`
	KeyPrefix   string        `env:"KEY_PREFIX, default=comparison"`
}

// PredictionConfig configures the simulated prediction endpoint.
type PredictionConfig struct {
	Delay time.Duration `env:"DELAY, default=2s"`

	// RateLimit はクライアントごとの RateWindow あたりの上限です。0 で無制限。
	RateLimit  int           `env:"RATE_LIMIT, default=30"`
	RateWindow time.Duration `env:"RATE_WINDOW, default=1m"`
}

// MetricsConfig points at an optional thresholds file.
type MetricsConfig struct {
	ThresholdsFile string `env:"THRESHOLDS_FILE"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=text"` // text | json
}

// Load reads .env (if present) and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug(".env not found; using system environment variables")
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through the given lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that envconfig cannot express.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "sqlite":
	case "postgres":
		if c.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.Cache.RefreshHour < 0 || c.Cache.RefreshHour > 23 {
		return fmt.Errorf("CACHE_REFRESH_HOUR must be 0-23, got %d", c.Cache.RefreshHour)
	}
	if c.Workspace.TTL <= 0 {
		return fmt.Errorf("WORKSPACE_TTL must be positive")
	}
	if c.Prediction.Delay < 0 {
		return fmt.Errorf("PREDICTION_DELAY must not be negative")
	}
	if c.Prediction.RateLimit < 0 {
		return fmt.Errorf("PREDICTION_RATE_LIMIT must not be negative")
	}
	if c.Prediction.RateLimit > 0 && c.Prediction.RateWindow <= 0 {
		return fmt.Errorf("PREDICTION_RATE_WINDOW must be positive")
	}
	return nil
}
