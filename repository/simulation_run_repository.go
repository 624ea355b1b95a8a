package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"moneygame/database"
	"moneygame/models"

	"github.com/jackc/pgx/v5"
)

const simulationRunColumns = `
	id, strategy, seed, total_trials, wins, losses,
	avg_bets_given_loss, samples, requested_by, created_at
`

// SimulationRunRepository implements the SimulationRunRepository interface
type SimulationRunRepository struct {
	q queryable
}

// NewSimulationRunRepository creates a new simulation run repository
func NewSimulationRunRepository(db *database.DB) *SimulationRunRepository {
	return &SimulationRunRepository{q: db.Pool}
}

// newSimulationRunRepositoryWithTx creates a new simulation run repository with a transaction
func newSimulationRunRepositoryWithTx(tx queryable) *SimulationRunRepository {
	return &SimulationRunRepository{q: tx}
}

// Create stores a run and fills in its ID and creation time
func (r *SimulationRunRepository) Create(ctx context.Context, run *models.SimulationRun) error {
	samples := run.Samples
	if samples == nil {
		samples = []models.TrialResult{}
	}
	samplesJSON, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("failed to marshal samples: %w", err)
	}

	query := `
		INSERT INTO simulation_runs
		(strategy, seed, total_trials, wins, losses, avg_bets_given_loss, samples, requested_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err = r.q.QueryRow(ctx, query,
		run.Strategy,
		run.Seed,
		run.TotalTrials,
		run.Wins,
		run.Losses,
		run.AvgBetsGivenLoss,
		samplesJSON,
		run.RequestedBy,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create simulation run: %w", err)
	}

	return nil
}

// GetByID retrieves a run by ID, returning nil if none exists
func (r *SimulationRunRepository) GetByID(ctx context.Context, id int64) (*models.SimulationRun, error) {
	query := `SELECT ` + simulationRunColumns + ` FROM simulation_runs WHERE id = $1`

	run, err := scanSimulationRun(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation run %d: %w", id, err)
	}

	return run, nil
}

// GetRecent returns up to limit runs, newest first. An empty strategy matches all.
func (r *SimulationRunRepository) GetRecent(ctx context.Context, strategy models.Strategy, limit int) ([]*models.SimulationRun, error) {
	query := `
		SELECT ` + simulationRunColumns + `
		FROM simulation_runs
		WHERE ($1 = '' OR strategy = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, string(strategy), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent simulation runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*models.SimulationRun, 0)
	for rows.Next() {
		run, err := scanSimulationRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating simulation runs: %w", err)
	}

	return runs, nil
}

// GetStrategySummaries pools every stored run per strategy
func (r *SimulationRunRepository) GetStrategySummaries(ctx context.Context) ([]*models.StrategySummary, error) {
	query := `
		SELECT
			strategy,
			COUNT(*) AS runs,
			COALESCE(SUM(total_trials), 0) AS total_trials,
			COALESCE(SUM(wins), 0) AS total_wins
		FROM simulation_runs
		GROUP BY strategy
		ORDER BY strategy
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query strategy summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]*models.StrategySummary, 0)
	for rows.Next() {
		var summary models.StrategySummary
		if err := rows.Scan(
			&summary.Strategy,
			&summary.Runs,
			&summary.TotalTrials,
			&summary.TotalWins,
		); err != nil {
			return nil, fmt.Errorf("failed to scan strategy summary: %w", err)
		}
		if summary.TotalTrials > 0 {
			summary.PooledWinRate = float64(summary.TotalWins) / float64(summary.TotalTrials)
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating strategy summaries: %w", err)
	}

	return summaries, nil
}

func scanSimulationRun(row pgx.Row) (*models.SimulationRun, error) {
	var run models.SimulationRun
	var samplesJSON []byte

	err := row.Scan(
		&run.ID,
		&run.Strategy,
		&run.Seed,
		&run.TotalTrials,
		&run.Wins,
		&run.Losses,
		&run.AvgBetsGivenLoss,
		&samplesJSON,
		&run.RequestedBy,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(samplesJSON) > 0 {
		if err := json.Unmarshal(samplesJSON, &run.Samples); err != nil {
			return nil, fmt.Errorf("failed to unmarshal samples: %w", err)
		}
	}

	return &run, nil
}
