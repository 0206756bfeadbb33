package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Razil2005/wordGame/internal/game"
)

type Config struct {
	Addr            string
	MaxHealth       int
	ShutdownTimeout time.Duration
}

// Load reads config from the environment, falling back to defaults. main
// loads .env via godotenv before calling this.
func Load() Config {
	cfg := Config{
		Addr:            ":8080",
		MaxHealth:       game.DefaultMaxHealth,
		ShutdownTimeout: 5 * time.Second,
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if v := os.Getenv("MAX_HEALTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxHealth = n
		}
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ShutdownTimeout = d
		}
	}
	return cfg
}
