package testutil

import (
	"moneygame/models"
)

// CreateTestSimulationRun creates a run with two short sample trials
func CreateTestSimulationRun(strategy models.Strategy) *models.SimulationRun {
	return &models.SimulationRun{
		Strategy:         strategy,
		Seed:             42,
		TotalTrials:      1000,
		Wins:             40,
		Losses:           960,
		AvgBetsGivenLoss: 1.4,
		Samples: []models.TrialResult{
			{
				SimNumber:     1,
				Won:           false,
				FinalBalance:  0,
				FinalEarnings: 0,
				TotalBets:     1,
				History: []models.Snapshot{
					{Bet: 0, Balance: 5, CumulativeEarnings: 0},
					{Bet: 1, Balance: 0, CumulativeEarnings: 0},
				},
			},
			{
				SimNumber:     2,
				Won:           false,
				FinalBalance:  0,
				FinalEarnings: 5,
				TotalBets:     2,
				History: []models.Snapshot{
					{Bet: 0, Balance: 5, CumulativeEarnings: 0},
					{Bet: 1, Balance: 10, CumulativeEarnings: 5},
					{Bet: 2, Balance: 0, CumulativeEarnings: 5},
				},
			},
		},
	}
}

// CreateTestSimulationRunWithOutcome creates a run with specific trial counts
func CreateTestSimulationRunWithOutcome(strategy models.Strategy, trials, wins int) *models.SimulationRun {
	run := CreateTestSimulationRun(strategy)
	run.TotalTrials = trials
	run.Wins = wins
	run.Losses = trials - wins
	return run
}
