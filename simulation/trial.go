package simulation

import (
	"moneygame/models"
)

// RunTrial plays one game from the starting balance until ruin or the goal.
// Every draw comes from rng, so a scripted source reproduces the trial exactly.
func RunTrial(policy Policy, rng RandSource) models.TrialResult {
	state := models.GameState{Balance: StartingBalance}
	var history []models.Snapshot

	sampleEvery := policy.SampleEvery
	if sampleEvery < 1 {
		sampleEvery = 1
	}

	for state.Balance > 0 && state.CumulativeEarnings < Goal {
		if state.BetsPlaced%sampleEvery == 0 {
			history = append(history, snapshot(state))
		}

		amount := policy.BetAmount(state.Balance)
		if amount < 1 {
			break
		}

		state.BetsPlaced++
		state.Balance -= amount

		if rng.Float64() < WinProbability {
			state.Balance += amount * 2
			state.CumulativeEarnings += amount
		}
	}

	if len(history) == 0 || history[len(history)-1].Bet != state.BetsPlaced {
		history = append(history, snapshot(state))
	}

	return models.TrialResult{
		Won:           state.CumulativeEarnings >= Goal,
		FinalBalance:  state.Balance,
		FinalEarnings: state.CumulativeEarnings,
		TotalBets:     state.BetsPlaced,
		History:       history,
	}
}

func snapshot(state models.GameState) models.Snapshot {
	return models.Snapshot{
		Bet:                state.BetsPlaced,
		Balance:            state.Balance,
		CumulativeEarnings: state.CumulativeEarnings,
	}
}
