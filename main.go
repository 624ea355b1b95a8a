package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"moneygame/cmd"
	"moneygame/config"
	"moneygame/database"
	"moneygame/simulation"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// A missing .env file is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to load .env file")
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			if err := handleMigrationCommand(); err != nil {
				log.Fatalf("Migration error: %v", err)
			}
			return
		case "simulate", "analyze":
			if err := handleOfflineCommand(os.Args[1], os.Args[2:]); err != nil {
				log.Fatalf("%s error: %v", os.Args[1], err)
			}
			return
		}
	}

	// Normal bot operation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	if err := cmd.Run(ctx); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: moneygame migrate [up|down|status] [args...]")
	}

	switch os.Args[2] {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", os.Args[2])
	}
}

func handleOfflineCommand(name string, args []string) error {
	cfg, err := config.LoadForCLI()
	if err != nil {
		return err
	}
	if err := cmd.ConfigureLogging(cfg); err != nil {
		return err
	}

	seed := simulation.NewSeed()
	if name == "analyze" {
		return cmd.Analyze(os.Stdout, args, seed)
	}
	return cmd.Simulate(os.Stdout, cfg, args, seed)
}
