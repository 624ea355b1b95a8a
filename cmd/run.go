package cmd

import (
	"context"
	"fmt"
	"time"

	"moneygame/bot"
	"moneygame/config"
	"moneygame/database"
	"moneygame/events"
	"moneygame/infrastructure"
	"moneygame/repository"
	"moneygame/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	if err := ConfigureLogging(cfg); err != nil {
		return err
	}

	log.WithField("environment", cfg.Environment).Info("Starting simulation bot...")

	// Initialize database connection
	databaseURL := database.ConstructDatabaseURL(cfg.DatabaseURL, cfg.DatabaseName)
	db, err := database.NewConnection(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established")

	eventBus := events.NewBus()

	// Forward simulation events to NATS when configured
	var natsClient *infrastructure.NATSClient
	if cfg.NATSServers != "" {
		natsClient, err = connectNATS(ctx, cfg.NATSServers)
		if err != nil {
			return err
		}
		defer natsClient.Close()

		infrastructure.NewEventForwarder(natsClient).Register(eventBus)
		log.Info("Forwarding simulation events to NATS")
	} else {
		log.Info("NATS_SERVERS not set, event forwarding disabled")
	}

	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)
	simulationService := service.NewSimulationService(uowFactory, cfg)

	botConfig := bot.Config{
		Token:         cfg.DiscordToken,
		GuildID:       cfg.DiscordGuildID,
		DefaultTrials: cfg.DefaultSimulationCount,
		MinTrials:     cfg.MinSimulationCount,
		MaxTrials:     cfg.MaxSimulationCount,
	}
	discordBot, err := bot.New(botConfig, simulationService)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized")

	// Wait for context cancellation
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	// Let in-flight event handlers finish publishing
	time.Sleep(500 * time.Millisecond)
	log.Info("Shutdown completed")

	return nil
}

func connectNATS(ctx context.Context, servers string) (*infrastructure.NATSClient, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := infrastructure.NewNATSClient(servers)
	if err := client.Connect(connectCtx); err != nil {
		return nil, err
	}
	if err := client.EnsureSimulationEventStream(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ensure simulation event stream: %w", err)
	}
	return client, nil
}
