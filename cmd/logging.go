package cmd

import (
	"fmt"
	"os"

	"moneygame/config"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies the configured level and picks a formatter for the environment
func ConfigureLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}

	return nil
}
