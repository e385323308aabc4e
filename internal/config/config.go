package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StoreBackend selects where the ledger is persisted
type StoreBackend string

const (
	// StoreFile keeps the ledger in a JSON document on disk
	StoreFile StoreBackend = "file"

	// StoreRedis keeps the ledger in a Redis hash
	StoreRedis StoreBackend = "redis"

	// StoreBolt keeps the ledger in an embedded bbolt database
	StoreBolt StoreBackend = "bolt"
)

// DefaultAvatarURL is shown for players without a profile picture
const DefaultAvatarURL = "https://cdn.prod.website-files.com/6257adef93867e50d84d30e2/66e3d8014ea898f3a4b2156c_Symbol.svg"

var (
	ErrMissingToken   = errors.New("DISCORD_TOKEN environment variable is required")
	ErrUnknownBackend = errors.New("unknown store backend")
	ErrNothingEnabled = errors.New("at least one of the bot or web server must be enabled")
)

// Config holds process configuration read from the environment
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
	BotEnabled    bool   `env:"BOT_ENABLED" envDefault:"true"`

	// Web
	WebEnabled      bool          `env:"WEB_ENABLED" envDefault:"true"`
	WebAddr         string        `env:"WEB_ADDR" envDefault:"127.0.0.1:5000"`
	PublicURL       string        `env:"PUBLIC_URL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Storage
	StoreBackend  StoreBackend `env:"STORE_BACKEND" envDefault:"file"`
	StatsPath     string       `env:"STATS_PATH" envDefault:"player_stats.json"`
	BoltPath      string       `env:"BOLT_PATH" envDefault:"player_stats.db"`
	RedisAddr     string       `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string       `env:"REDIS_PASSWORD"`
	RedisDB       int          `env:"REDIS_DB" envDefault:"0"`
	RedisKey      string       `env:"REDIS_KEY" envDefault:"tabletally:ledger"`

	DefaultAvatarURL string `env:"DEFAULT_AVATAR_URL"`
}

// Load reads a .env file when present, then parses the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return Parse()
}

// Parse reads configuration from environment variables only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DefaultAvatarURL == "" {
		cfg.DefaultAvatarURL = DefaultAvatarURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration can start the process
func (c *Config) Validate() error {
	if !c.BotEnabled && !c.WebEnabled {
		return ErrNothingEnabled
	}

	if c.BotEnabled && c.DiscordToken == "" {
		return ErrMissingToken
	}

	switch c.StoreBackend {
	case StoreFile, StoreRedis, StoreBolt:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.StoreBackend)
	}

	return nil
}
