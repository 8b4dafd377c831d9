package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by the site.
const EnvPrefix = "MEDIREON"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Flag store drivers.
const (
	FlagDriverCookie = "cookie"
	FlagDriverMemory = "memory"
	FlagDriverRedis  = "redis"
)

// Config holds all application configuration values
type Config struct {
	App       AppConfig
	Intake    IntakeConfig
	Launch    LaunchConfig
	FlagStore FlagStoreConfig
	Redis     RedisConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Demo      DemoConfig
}

type AppConfig struct {
	Env       string `envconfig:"MEDIREON_APP_ENV" default:"dev"`
	Port      string `envconfig:"MEDIREON_APP_PORT" default:"8080"`
	LogLevel  string `envconfig:"MEDIREON_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"MEDIREON_LOG_FORMAT" default:"json"`
	SiteURL   string `envconfig:"MEDIREON_SITE_URL" default:"https://www.medireonhealth.com"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Addr returns the listen address for the configured port.
func (a AppConfig) Addr() string {
	if strings.HasPrefix(a.Port, ":") {
		return a.Port
	}
	return ":" + a.Port
}

// IntakeConfig points at the external form-intake endpoint that receives every lead.
type IntakeConfig struct {
	Endpoint    string        `envconfig:"MEDIREON_INTAKE_ENDPOINT"`
	Timeout     time.Duration `envconfig:"MEDIREON_INTAKE_TIMEOUT" default:"15s"`
	InFlightTTL time.Duration `envconfig:"MEDIREON_INTAKE_INFLIGHT_TTL" default:"30s"`
}

type LaunchConfig struct {
	At           time.Time     `envconfig:"MEDIREON_LAUNCH_AT" default:"2025-08-27T14:30:00Z"`
	TickInterval time.Duration `envconfig:"MEDIREON_LAUNCH_TICK_INTERVAL" default:"1s"`
}

type FlagStoreConfig struct {
	Driver       string        `envconfig:"MEDIREON_FLAG_DRIVER" default:"cookie"`
	CookieName   string        `envconfig:"MEDIREON_FLAG_COOKIE" default:"medireon-subscribed"`
	CookieMaxAge time.Duration `envconfig:"MEDIREON_FLAG_COOKIE_MAX_AGE" default:"8760h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MEDIREON_REDIS_URL"`
	Address      string        `envconfig:"MEDIREON_REDIS_ADDR"`
	Password     string        `envconfig:"MEDIREON_REDIS_PASSWORD"`
	DB           int           `envconfig:"MEDIREON_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MEDIREON_REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"MEDIREON_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MEDIREON_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"MEDIREON_REDIS_WRITE_TIMEOUT" default:"3s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MEDIREON_CORS_ORIGINS" default:"http://localhost:3000,https://www.medireonhealth.com"`
}

// RateLimitConfig bounds form submissions per client IP.
type RateLimitConfig struct {
	PerMinute int `envconfig:"MEDIREON_FORM_RATE_PER_MINUTE" default:"20"`
	Burst     int `envconfig:"MEDIREON_FORM_RATE_BURST" default:"5"`
}

// DemoConfig describes the business window offered by the demo scheduler.
type DemoConfig struct {
	ZoneName   string        `envconfig:"MEDIREON_DEMO_ZONE" default:"IST"`
	ZoneOffset time.Duration `envconfig:"MEDIREON_DEMO_ZONE_OFFSET" default:"5h30m"`
	FirstHour  int           `envconfig:"MEDIREON_DEMO_FIRST_HOUR" default:"11"`
	LastHour   int           `envconfig:"MEDIREON_DEMO_LAST_HOUR" default:"18"`
}

// Location returns the fixed zone demo slots are expressed in.
func (d DemoConfig) Location() *time.Location {
	return time.FixedZone(d.ZoneName, int(d.ZoneOffset.Seconds()))
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	// a missing .env is expected outside local development
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.FlagStore.Driver {
	case FlagDriverCookie, FlagDriverMemory:
	case FlagDriverRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("flag driver %q requires MEDIREON_REDIS_URL or MEDIREON_REDIS_ADDR", c.FlagStore.Driver)
		}
	default:
		return fmt.Errorf("unknown flag driver %q", c.FlagStore.Driver)
	}
	if c.Demo.FirstHour < 0 || c.Demo.LastHour > 23 || c.Demo.FirstHour > c.Demo.LastHour {
		return fmt.Errorf("invalid demo window %d-%d", c.Demo.FirstHour, c.Demo.LastHour)
	}
	if c.Launch.TickInterval <= 0 {
		return fmt.Errorf("launch tick interval must be positive")
	}
	return nil
}
