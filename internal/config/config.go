// Package config holds the server settings parsed from command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Host                string
	Port                int
	AllowOrigins        string
	Dev                 bool
	MatchmakingInterval time.Duration
	// RateLimit is the number of API requests allowed per client per second.
	// Zero disables rate limiting.
	RateLimit int
}

func Default() Config {
	return Config{
		Host:                "localhost",
		Port:                3000,
		AllowOrigins:        "http://localhost:5173",
		MatchmakingInterval: time.Second,
		RateLimit:           10,
	}
}

// Load parses args (without the program name) on top of the defaults.
func Load(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Server host")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "Server port")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", cfg.AllowOrigins, "Comma separated origins allowed by CORS and websocket upgrades")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "Development mode (relaxed rate limits)")
	fs.DurationVar(&cfg.MatchmakingInterval, "matchmaking-interval", cfg.MatchmakingInterval, "How often queued players are paired")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "API requests per second per client, 0 disables")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Dev && cfg.RateLimit > 0 {
		cfg.RateLimit *= 2
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if strings.TrimSpace(c.AllowOrigins) == "" {
		return fmt.Errorf("%w: allow-origins is empty", ErrInvalidConfig)
	}
	if c.MatchmakingInterval <= 0 {
		return fmt.Errorf("%w: matchmaking-interval must be positive", ErrInvalidConfig)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate-limit must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Origins splits AllowOrigins into its entries.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
