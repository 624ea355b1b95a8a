package simulation

import (
	"fmt"

	"moneygame/models"
)

// Accumulator folds trial results into running totals without keeping them
type Accumulator struct {
	trials         int
	wins           int
	losses         int
	betsWhenLosing int64
}

// Add folds one trial into the totals
func (a *Accumulator) Add(result models.TrialResult) {
	a.trials++
	if result.Won {
		a.wins++
		return
	}
	a.losses++
	a.betsWhenLosing += int64(result.TotalBets)
}

// Stats returns the aggregate statistics of everything added so far
func (a *Accumulator) Stats() models.AggregateStats {
	stats := models.AggregateStats{
		TotalTrials: a.trials,
		Wins:        a.wins,
		Losses:      a.losses,
	}
	if a.trials > 0 {
		stats.WinRate = float64(a.wins) / float64(a.trials)
	}
	if a.losses > 0 {
		stats.AvgBetsGivenLoss = float64(a.betsWhenLosing) / float64(a.losses)
	}
	return stats
}

// RunBatch executes numTrials independent trials and aggregates them.
// The first MaxSamples trials in execution order are kept for charting.
// Range checks on numTrials belong to the caller.
func RunBatch(policy Policy, numTrials int, rng RandSource) models.BatchResult {
	var acc Accumulator
	samples := make([]models.TrialResult, 0, min(max(numTrials, 0), MaxSamples))

	for i := 0; i < numTrials; i++ {
		result := RunTrial(policy, rng)
		acc.Add(result)

		if i < MaxSamples {
			result.SimNumber = i + 1
			samples = append(samples, result)
		}
	}

	return models.BatchResult{
		Strategy: policy.Strategy,
		Stats:    acc.Stats(),
		Samples:  samples,
	}
}

// FormatWinRate renders the win rate as a percentage at the policy's precision
func FormatWinRate(stats models.AggregateStats, policy Policy) string {
	return fmt.Sprintf("%.*f", policy.WinRateDecimals, stats.WinRate*100)
}

// ExpectedValueHorizon is the bet count the expected value summary projects to
const ExpectedValueHorizon = 100

// ExpectedNetChange is the expected balance change after numBets bets of betSize
func ExpectedNetChange(betSize int64, numBets int) float64 {
	perDollar := WinProbability*1 + (1-WinProbability)*(-1)
	return float64(numBets) * float64(betSize) * perDollar
}

// FormatExpectedValue summarizes the expected balance change of a flat-betting
// policy per bet and over ExpectedValueHorizon bets. ok is false when bet
// sizes vary.
func FormatExpectedValue(policy Policy) (summary string, ok bool) {
	if policy.FixedBet <= 0 {
		return "", false
	}
	return fmt.Sprintf("%s per bet, %s after %d bets",
		formatSignedDollars(ExpectedNetChange(policy.FixedBet, 1)),
		formatSignedDollars(ExpectedNetChange(policy.FixedBet, ExpectedValueHorizon)),
		ExpectedValueHorizon), true
}

func formatSignedDollars(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
