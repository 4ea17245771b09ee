package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults mirror the building this was written for: six elevators, floors 0..22.
const (
	defaultPort      = "8080"
	defaultDBPath    = "elevators.db"
	defaultLogLevel  = "info"
	defaultElevators = "A,B,C,D,E,F"
	defaultMinFloor  = 0
	defaultMaxFloor  = 22
)

// Config is the process-wide configuration: read once at startup, passed by
// reference to the components that need it, never mutated afterwards.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	Elevators []string // ordered set of valid labels, normalized to upper case
	MinFloor  int
	MaxFloor  int
}

// Load reads configs/config.yml (optional) with environment variables taking
// precedence (PORT, DB_PATH, LOG_LEVEL, ELEVATORS, MIN_FLOOR, MAX_FLOOR).
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs")
	v.SetConfigName("config")

	v.SetDefault("port", defaultPort)
	v.SetDefault("db_path", defaultDBPath)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("elevators", defaultElevators)
	v.SetDefault("min_floor", defaultMinFloor)
	v.SetDefault("max_floor", defaultMaxFloor)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file falls back to defaults and environment; anything else
		// (e.g. malformed YAML) is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:      v.GetString("port"),
		DBPath:    v.GetString("db_path"),
		LogLevel:  v.GetString("log_level"),
		Elevators: splitLabels(v.GetString("elevators")),
		MinFloor:  v.GetInt("min_floor"),
		MaxFloor:  v.GetInt("max_floor"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Elevators) == 0 {
		return errors.New("config: elevator label set must not be empty")
	}
	if c.MinFloor > c.MaxFloor {
		return fmt.Errorf("config: min_floor %d > max_floor %d", c.MinFloor, c.MaxFloor)
	}
	return nil
}

// splitLabels parses a comma-separated label list, trimming and uppercasing
// each entry and dropping empties (same normalization applied to input labels).
func splitLabels(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
