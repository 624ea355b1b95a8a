package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"moneygame/config"
	"moneygame/events"
	"moneygame/models"
	"moneygame/simulation"

	log "github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

var (
	// ErrInvalidTrialCount is returned when a trial count is outside the configured range
	ErrInvalidTrialCount = errors.New("invalid trial count")

	// ErrRunNotFound is returned when a stored run does not exist
	ErrRunNotFound = errors.New("simulation run not found")
)

type simulationService struct {
	uowFactory UnitOfWorkFactory
	config     *config.Config
	newSeed    func() int64
}

// NewSimulationService creates a new simulation service
func NewSimulationService(uowFactory UnitOfWorkFactory, cfg *config.Config) SimulationService {
	return &simulationService{
		uowFactory: uowFactory,
		config:     cfg,
		newSeed:    simulation.NewSeed,
	}
}

func (s *simulationService) RunSimulation(ctx context.Context, strategy models.Strategy, numTrials int, requestedBy *int64) (*models.SimulationRun, error) {
	// Validate inputs
	policy, err := simulation.PolicyFor(strategy)
	if err != nil {
		return nil, err
	}
	if err := s.validateTrialCount(numTrials); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := s.newSeed()
	start := time.Now()
	batch := simulation.RunBatch(policy, numTrials, simulation.NewSeededSource(seed))

	log.WithFields(log.Fields{
		"strategy":    strategy,
		"trials":      numTrials,
		"wins":        batch.Stats.Wins,
		"seed":        seed,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Simulation batch completed")

	// A long batch may outlive the request
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	run := &models.SimulationRun{
		Strategy:         strategy,
		Seed:             seed,
		TotalTrials:      batch.Stats.TotalTrials,
		Wins:             batch.Stats.Wins,
		Losses:           batch.Stats.Losses,
		AvgBetsGivenLoss: batch.Stats.AvgBetsGivenLoss,
		Samples:          batch.Samples,
		RequestedBy:      requestedBy,
	}

	// Create unit of work
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	if err := uow.SimulationRunRepository().Create(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to store simulation run: %w", err)
	}

	uow.EventBus().Publish(events.SimulationCompletedEvent{
		RunID:            run.ID,
		Strategy:         run.Strategy,
		TotalTrials:      run.TotalTrials,
		Wins:             run.Wins,
		WinRate:          run.WinRate(),
		AvgBetsGivenLoss: run.AvgBetsGivenLoss,
		RequestedBy:      requestedBy,
	})

	// Commit the transaction
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return run, nil
}

func (s *simulationService) CompareStrategies(ctx context.Context, numTrials int, requestedBy *int64) ([]*models.SimulationRun, error) {
	if err := s.validateTrialCount(numTrials); err != nil {
		return nil, err
	}

	runs := make([]*models.SimulationRun, 0, len(models.AllStrategies))
	for _, strategy := range models.AllStrategies {
		run, err := s.RunSimulation(ctx, strategy, numTrials, requestedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to run %s simulation: %w", strategy, err)
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func (s *simulationService) ReplayRun(ctx context.Context, runID int64) (*models.ReplayResult, error) {
	run, err := s.loadRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	policy, err := simulation.PolicyFor(run.Strategy)
	if err != nil {
		return nil, err
	}

	// The batch runs with no transaction open
	replayed := simulation.RunBatch(policy, run.TotalTrials, simulation.NewSeededSource(run.Seed))
	matched := replayed.Stats == run.Stats() && reflect.DeepEqual(replayed.Samples, run.Samples)

	if !matched {
		log.WithFields(log.Fields{
			"run_id":          run.ID,
			"stored_wins":     run.Wins,
			"replayed_wins":   replayed.Stats.Wins,
			"stored_losses":   run.Losses,
			"replayed_losses": replayed.Stats.Losses,
		}).Warn("Replayed simulation does not match stored run")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	uow.EventBus().Publish(events.SimulationReplayedEvent{
		RunID:    run.ID,
		Strategy: run.Strategy,
		Matched:  matched,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.ReplayResult{
		Run:      run,
		Replayed: replayed,
		Matched:  matched,
	}, nil
}

// loadRun reads a stored run in its own short transaction
func (s *simulationService) loadRun(ctx context.Context, runID int64) (*models.SimulationRun, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	run, err := uow.SimulationRunRepository().GetByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation run: %w", err)
	}
	if run == nil {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}

	return run, nil
}

func (s *simulationService) GetRecentRuns(ctx context.Context, strategy models.Strategy, limit int) ([]*models.SimulationRun, error) {
	if strategy != "" {
		if _, err := simulation.PolicyFor(strategy); err != nil {
			return nil, err
		}
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	// Create unit of work for read operation
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	runs, err := uow.SimulationRunRepository().GetRecent(ctx, strategy, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent runs: %w", err)
	}

	return runs, nil
}

func (s *simulationService) GetStrategySummaries(ctx context.Context) ([]*models.StrategySummary, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	summaries, err := uow.SimulationRunRepository().GetStrategySummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get strategy summaries: %w", err)
	}

	return summaries, nil
}

func (s *simulationService) validateTrialCount(numTrials int) error {
	if numTrials < s.config.MinSimulationCount || numTrials > s.config.MaxSimulationCount {
		return fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidTrialCount,
			numTrials, s.config.MinSimulationCount, s.config.MaxSimulationCount)
	}
	return nil
}
