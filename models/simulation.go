package models

import "time"

// Strategy identifies a bet-sizing policy
type Strategy string

const (
	StrategyAllIn     Strategy = "all-in"
	StrategyFixedFive Strategy = "fixed-5"
	StrategyFixedOne  Strategy = "fixed-1"
)

// AllStrategies lists the strategies in display order
var AllStrategies = []Strategy{StrategyAllIn, StrategyFixedFive, StrategyFixedOne}

// GameState is the mutable state of a single trial
type GameState struct {
	Balance            int64
	CumulativeEarnings int64
	BetsPlaced         int
}

// Snapshot is one point of a trial's trajectory
type Snapshot struct {
	Bet                int   `json:"bet"`
	Balance            int64 `json:"balance"`
	CumulativeEarnings int64 `json:"cumulative_earnings"`
}

// TrialResult is the outcome of one play-through from the starting balance
type TrialResult struct {
	SimNumber     int        `json:"sim_number,omitempty"`
	Won           bool       `json:"won"`
	FinalBalance  int64      `json:"final_balance"`
	FinalEarnings int64      `json:"final_earnings"`
	TotalBets     int        `json:"total_bets"`
	History       []Snapshot `json:"history"`
}

// AggregateStats summarizes a batch of trials
type AggregateStats struct {
	TotalTrials      int
	Wins             int
	Losses           int
	WinRate          float64 // Fraction in [0, 1]
	AvgBetsGivenLoss float64
}

// BatchResult is the output of one batch run
type BatchResult struct {
	Strategy Strategy
	Stats    AggregateStats
	Samples  []TrialResult
}

// SimulationRun is a persisted batch run
type SimulationRun struct {
	ID               int64         `db:"id"`
	Strategy         Strategy      `db:"strategy"`
	Seed             int64         `db:"seed"`
	TotalTrials      int           `db:"total_trials"`
	Wins             int           `db:"wins"`
	Losses           int           `db:"losses"`
	AvgBetsGivenLoss float64       `db:"avg_bets_given_loss"`
	Samples          []TrialResult `db:"samples"`
	RequestedBy      *int64        `db:"requested_by"` // Discord user, nil for CLI runs
	CreatedAt        time.Time     `db:"created_at"`
}

// WinRate returns wins over total trials
func (r *SimulationRun) WinRate() float64 {
	if r.TotalTrials == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.TotalTrials)
}

// Stats returns the run's aggregate statistics
func (r *SimulationRun) Stats() AggregateStats {
	return AggregateStats{
		TotalTrials:      r.TotalTrials,
		Wins:             r.Wins,
		Losses:           r.Losses,
		WinRate:          r.WinRate(),
		AvgBetsGivenLoss: r.AvgBetsGivenLoss,
	}
}

// StrategySummary pools all stored runs of one strategy
type StrategySummary struct {
	Strategy      Strategy
	Runs          int
	TotalTrials   int64
	TotalWins     int64
	PooledWinRate float64
}

// ChartRow is one step-keyed row of chart-ready series data.
// Maps are keyed by 1-based sim number.
type ChartRow struct {
	Step     int
	Bet      int
	Balances map[int]int64
	Earnings map[int]int64
}

// ReplayResult compares a stored run with a fresh execution of its seed
type ReplayResult struct {
	Run      *SimulationRun
	Replayed BatchResult
	Matched  bool
}
