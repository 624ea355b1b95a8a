package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// NATS configuration
	NATSServers string // NATS server addresses (comma-separated), empty disables forwarding

	// Simulation configuration
	DefaultSimulationCount int // Used when a request omits the trial count
	MinSimulationCount     int
	MaxSimulationCount     int

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	cfg, err := load()
	if err != nil {
		// In test environment, use a default test config instead of panicking
		if os.Getenv("ENVIRONMENT") != "test" {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		cfg = NewTestConfig()
	}
	instance = cfg
	return instance
}

// SetForTesting replaces the global configuration. Pass nil to reset.
func SetForTesting(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

// Load reads configuration from the environment without touching the global instance
func Load() (*Config, error) {
	return load()
}

// LoadForCLI reads configuration for offline commands that need neither Discord nor a database
func LoadForCLI() (*Config, error) {
	return loadFromEnv(false)
}

func load() (*Config, error) {
	return loadFromEnv(os.Getenv("ENVIRONMENT") != "test")
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(requireSecrets bool) (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// NATS
		NATSServers: os.Getenv("NATS_SERVERS"),

		// Simulation settings with defaults
		DefaultSimulationCount: 10000,
		MinSimulationCount:     100,
		MaxSimulationCount:     1000000,

		// Logging
		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if count := os.Getenv("DEFAULT_SIMULATION_COUNT"); count != "" {
		if parsed, err := strconv.Atoi(count); err == nil {
			config.DefaultSimulationCount = parsed
		}
	}
	if count := os.Getenv("MIN_SIMULATION_COUNT"); count != "" {
		if parsed, err := strconv.Atoi(count); err == nil {
			config.MinSimulationCount = parsed
		}
	}
	if count := os.Getenv("MAX_SIMULATION_COUNT"); count != "" {
		if parsed, err := strconv.Atoi(count); err == nil {
			config.MaxSimulationCount = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.MinSimulationCount < 1 || config.MinSimulationCount > config.MaxSimulationCount {
		return nil, fmt.Errorf("invalid simulation count range [%d, %d]", config.MinSimulationCount, config.MaxSimulationCount)
	}
	if config.DefaultSimulationCount < config.MinSimulationCount || config.DefaultSimulationCount > config.MaxSimulationCount {
		return nil, fmt.Errorf("DEFAULT_SIMULATION_COUNT %d is outside [%d, %d]",
			config.DefaultSimulationCount, config.MinSimulationCount, config.MaxSimulationCount)
	}

	if requireSecrets {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

// NewTestConfig returns a configuration suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:            "test",
		DefaultSimulationCount: 10000,
		MinSimulationCount:     100,
		MaxSimulationCount:     1000000,
		LogLevel:               "debug",
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
