package service

import (
	"context"

	"moneygame/events"
	"moneygame/models"
)

// SimulationRunRepository defines the interface for simulation run persistence
type SimulationRunRepository interface {
	// Create stores a completed run and sets its ID and CreatedAt
	Create(ctx context.Context, run *models.SimulationRun) error

	// GetByID retrieves a run by its ID, returning nil if it does not exist
	GetByID(ctx context.Context, id int64) (*models.SimulationRun, error)

	// GetRecent returns the newest runs, optionally filtered by strategy (empty for all)
	GetRecent(ctx context.Context, strategy models.Strategy, limit int) ([]*models.SimulationRun, error)

	// GetStrategySummaries pools all stored runs per strategy
	GetStrategySummaries(ctx context.Context) ([]*models.StrategySummary, error)
}

// SimulationService defines the interface for running and reviewing strategy simulations
type SimulationService interface {
	// RunSimulation runs and stores one batch for a strategy
	RunSimulation(ctx context.Context, strategy models.Strategy, numTrials int, requestedBy *int64) (*models.SimulationRun, error)

	// CompareStrategies runs every strategy with the same trial count
	CompareStrategies(ctx context.Context, numTrials int, requestedBy *int64) ([]*models.SimulationRun, error)

	// ReplayRun re-executes a stored run from its seed
	ReplayRun(ctx context.Context, runID int64) (*models.ReplayResult, error)

	// GetRecentRuns lists stored runs, newest first
	GetRecentRuns(ctx context.Context, strategy models.Strategy, limit int) ([]*models.SimulationRun, error)

	// GetStrategySummaries returns pooled per-strategy statistics
	GetStrategySummaries(ctx context.Context) ([]*models.StrategySummary, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	SimulationRunRepository() SimulationRunRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
