package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "seating"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Seating SeatingConfig
}

// Load reads configuration from the environment. A local .env file is
// honored when present so dev runs do not need exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Seating.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SEATING_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"SEATING_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SEATING_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SeatingConfig struct {
	// AdjacencyDistancePercent is the coordinate-distance fallback used by
	// the adjacency test, expressed in percent of image size. It suits
	// row-based theater layouts; table layouts should tune it per venue.
	AdjacencyDistancePercent float64 `envconfig:"SEATING_ADJACENCY_DISTANCE_PERCENT" default:"10"`

	// DefaultHoldTTL is applied when inventory updates carry a hold with no
	// explicit expiry.
	DefaultHoldTTL time.Duration `envconfig:"SEATING_DEFAULT_HOLD_TTL" default:"10m"`

	// DefaultCategoryColor is used when an authoring record names a price
	// category with no palette entry.
	DefaultCategoryColor string `envconfig:"SEATING_DEFAULT_CATEGORY_COLOR" default:"#6B7280"`
}

func (s SeatingConfig) validate() error {
	if s.AdjacencyDistancePercent < 0 {
		return fmt.Errorf("adjacency distance must be >= 0, got %v", s.AdjacencyDistancePercent)
	}
	if s.DefaultHoldTTL < 0 {
		return fmt.Errorf("default hold ttl must be >= 0, got %v", s.DefaultHoldTTL)
	}
	if !strings.HasPrefix(s.DefaultCategoryColor, "#") {
		return fmt.Errorf("default category color must be a hex color, got %q", s.DefaultCategoryColor)
	}
	return nil
}
