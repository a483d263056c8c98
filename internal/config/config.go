package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/money"
)

const (
	SequencePostgres = "postgres"
	SequenceRedis    = "redis"
)

type Config struct {
	App struct {
		Name        string `envconfig:"APP_NAME" default:"LiftDesk"`
		Port        int    `envconfig:"PORT" default:"8080"`
		Environment string `envconfig:"APP_ENV" default:"development"`
		LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Port         int    `envconfig:"DB_PORT" default:"5432"`
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:""`
		Name         string `envconfig:"DB_NAME" default:"liftdesk"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Redis struct {
		Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
		Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string `envconfig:"REDIS_PASSWORD" default:""`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	Sequence struct {
		Backend string        `envconfig:"SEQUENCE_BACKEND" default:"postgres"`
		LockTTL time.Duration `envconfig:"SEQUENCE_LOCK_TTL" default:"5s"`
	}

	Totals struct {
		Places       int32  `envconfig:"TOTALS_DECIMAL_PLACES" default:"2"`
		RoundingMode string `envconfig:"TOTALS_ROUNDING_MODE" default:"half_up"`
		DuePolicy    string `envconfig:"TOTALS_DUE_POLICY" default:"clamp"`
	}

	Sweep struct {
		Enabled  bool          `envconfig:"SWEEP_ENABLED" default:"true"`
		Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1h"`
		TimeZone string        `envconfig:"SWEEP_TIMEZONE" default:"Asia/Kolkata"`
		LockTTL  time.Duration `envconfig:"SWEEP_LOCK_TTL" default:"10m"`
	}

	Import struct {
		MaxUploadBytes int64 `envconfig:"IMPORT_MAX_UPLOAD_BYTES" default:"10485760"`
		MaxErrors      int   `envconfig:"IMPORT_MAX_ERRORS" default:"100"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

// Rounder returns the rounding applied to every stored money value.
func (c *Config) Rounder() money.Rounder {
	mode, err := money.ParseRoundingMode(c.Totals.RoundingMode)
	if err != nil {
		mode = money.HalfUp
	}

	return money.Rounder{Places: c.Totals.Places, Mode: mode}
}

func (c *Config) DuePolicy() derive.DuePolicy {
	p, err := derive.ParseDuePolicy(c.Totals.DuePolicy)
	if err != nil {
		return derive.DueClamp
	}

	return p
}

// Location is the time zone "today" is taken in when deriving statuses.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Sweep.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.Sweep.TimeZone, err)
	}

	return loc, nil
}

func (c *Config) Validate() error {
	var errs []error

	if _, err := money.ParseRoundingMode(c.Totals.RoundingMode); err != nil {
		errs = append(errs, err)
	}

	if _, err := derive.ParseDuePolicy(c.Totals.DuePolicy); err != nil {
		errs = append(errs, err)
	}

	if c.Totals.Places < 0 || c.Totals.Places > 6 {
		errs = append(errs, fmt.Errorf("decimal places must be between 0 and 6, got %d", c.Totals.Places))
	}

	switch c.Sequence.Backend {
	case SequencePostgres:
	case SequenceRedis:
		if !c.Redis.Enabled {
			errs = append(errs, errors.New("sequence backend redis requires REDIS_ENABLED=true"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown sequence backend %q", c.Sequence.Backend))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	if c.Sweep.Interval <= 0 {
		errs = append(errs, errors.New("sweep interval must be positive"))
	}

	return errors.Join(errs...)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
