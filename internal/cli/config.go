package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mcoot/seabattle-go/internal/factory"
	"github.com/mcoot/seabattle-go/internal/model"
	"github.com/mcoot/seabattle-go/internal/services/bot"
	"github.com/mcoot/seabattle-go/internal/services/placement"
	"github.com/mcoot/seabattle-go/internal/storage/redis"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Seed     int64
	LogLevel string
	Output   string
	Attempts int
	Strategy string
	Storage  string
	RedisURL string
}

// DefaultConfig returns a Config with defaults taken from the environment.
// A .env file in the working directory is read first; it never overrides variables that are already set.
func DefaultConfig() *Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %s\n", err)
	}

	return &Config{
		Seed:     getEnvInt64OrDefault("SEABATTLE_SEED", 0),
		LogLevel: getEnvOrDefault("SEABATTLE_LOG_LEVEL", "warn"),
		Output:   getEnvOrDefault("SEABATTLE_OUTPUT", OutputText),
		Attempts: int(getEnvInt64OrDefault("SEABATTLE_ATTEMPTS", placement.DefaultAttemptsPerShip)),
		Strategy: getEnvOrDefault("SEABATTLE_STRATEGY", bot.StrategyShuffledPool),
		Storage:  getEnvOrDefault("SEABATTLE_STORAGE", factory.StorageMemory),
		RedisURL: getEnvOrDefault("SEABATTLE_REDIS_URL", redis.DefaultConfig().URL),
	}
}

// Validate checks values that flags and env cannot constrain on their own
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, OutputText, OutputJSON)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Storage != factory.StorageMemory && c.Storage != factory.StorageRedis {
		return fmt.Errorf("invalid storage %q: must be %s or %s", c.Storage, factory.StorageMemory, factory.StorageRedis)
	}
	if c.Attempts <= 0 {
		return fmt.Errorf("placement attempts must be positive, got %d", c.Attempts)
	}
	for _, s := range bot.StrategyNames() {
		if s == c.Strategy {
			return nil
		}
	}
	return fmt.Errorf("%w: %s (valid: %s)", model.ErrUnknownStrategy, c.Strategy, strings.Join(bot.StrategyNames(), ", "))
}

// Level parses LogLevel into a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// FactoryConfig maps CLI settings onto the application factory
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	redisCfg := redis.DefaultConfig()
	redisCfg.URL = c.RedisURL

	return factory.Config{
		Seed:             c.Seed,
		Placement:        placement.Config{AttemptsPerShip: c.Attempts},
		OpponentStrategy: c.Strategy,
		Storage:          c.Storage,
		Redis:            redisCfg,
		Logger:           logger,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt64OrDefault(key string, defaultVal int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: not an integer\n", key, val)
		return defaultVal
	}
	return n
}
