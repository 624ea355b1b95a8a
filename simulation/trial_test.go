package simulation

import (
	"testing"

	"moneygame/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	winDraw  = 0.10
	lossDraw = 0.90
)

// scriptedSource replays a fixed sequence of draws, repeating the last one
type scriptedSource struct {
	values []float64
	pos    int
}

func (s *scriptedSource) Float64() float64 {
	if s.pos >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.pos]
	s.pos++
	return v
}

func draws(outcomes ...bool) *scriptedSource {
	values := make([]float64, len(outcomes))
	for i, won := range outcomes {
		if won {
			values[i] = winDraw
		} else {
			values[i] = lossDraw
		}
	}
	return &scriptedSource{values: values}
}

func TestRunTrial_AllInWinThenLoss(t *testing.T) {
	result := RunTrial(MustPolicy(models.StrategyAllIn), draws(true, false))

	assert.False(t, result.Won)
	assert.Equal(t, int64(0), result.FinalBalance)
	assert.Equal(t, int64(5), result.FinalEarnings)
	assert.Equal(t, 2, result.TotalBets)
	assert.Equal(t, []models.Snapshot{
		{Bet: 0, Balance: 5, CumulativeEarnings: 0},
		{Bet: 1, Balance: 10, CumulativeEarnings: 5},
		{Bet: 2, Balance: 0, CumulativeEarnings: 5},
	}, result.History)
}

func TestRunTrial_AllInReachesGoal(t *testing.T) {
	result := RunTrial(MustPolicy(models.StrategyAllIn), draws(true, true, true))

	assert.True(t, result.Won)
	assert.Equal(t, int64(40), result.FinalBalance)
	assert.Equal(t, int64(35), result.FinalEarnings)
	assert.Equal(t, 3, result.TotalBets)
	assert.Len(t, result.History, 4)
}

func TestRunTrial_FixedFiveSingleWinContinues(t *testing.T) {
	result := RunTrial(MustPolicy(models.StrategyFixedFive), draws(true, false, false))

	require.GreaterOrEqual(t, len(result.History), 2)
	assert.Equal(t, models.Snapshot{Bet: 1, Balance: 10, CumulativeEarnings: 5}, result.History[1])

	// 10 -> 5 -> 0 after two $5 losses
	assert.False(t, result.Won)
	assert.Equal(t, 3, result.TotalBets)
	assert.Equal(t, int64(0), result.FinalBalance)
	assert.Equal(t, int64(5), result.FinalEarnings)
}

func TestRunTrial_FixedOneSamplesEveryTenthBet(t *testing.T) {
	result := RunTrial(MustPolicy(models.StrategyFixedOne), draws(true))

	assert.True(t, result.Won)
	assert.Equal(t, 25, result.TotalBets)
	assert.Equal(t, int64(30), result.FinalBalance)
	assert.Equal(t, int64(25), result.FinalEarnings)

	bets := make([]int, len(result.History))
	for i, s := range result.History {
		bets[i] = s.Bet
	}
	assert.Equal(t, []int{0, 10, 20, 25}, bets)
}

func TestRunTrial_FixedOneRuinRecordsTerminalSnapshot(t *testing.T) {
	result := RunTrial(MustPolicy(models.StrategyFixedOne), draws(false))

	assert.False(t, result.Won)
	assert.Equal(t, 5, result.TotalBets)
	assert.Equal(t, []models.Snapshot{
		{Bet: 0, Balance: 5, CumulativeEarnings: 0},
		{Bet: 5, Balance: 0, CumulativeEarnings: 0},
	}, result.History)
}

func TestRunTrial_GuardStopsOnZeroBet(t *testing.T) {
	policy := Policy{
		Strategy:    "broken",
		BetAmount:   func(int64) int64 { return 0 },
		SampleEvery: 1,
	}

	result := RunTrial(policy, draws(true))

	assert.False(t, result.Won)
	assert.Equal(t, 0, result.TotalBets)
	assert.Equal(t, StartingBalance, result.FinalBalance)
	assert.Len(t, result.History, 1)
}

func TestRunTrial_Invariants(t *testing.T) {
	for _, strategy := range models.AllStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			policy := MustPolicy(strategy)
			rng := NewSeededSource(42)

			for i := 0; i < 5000; i++ {
				result := RunTrial(policy, rng)

				require.GreaterOrEqual(t, result.TotalBets, 1)
				require.GreaterOrEqual(t, result.FinalBalance, int64(0))
				if result.Won {
					require.GreaterOrEqual(t, result.FinalEarnings, Goal)
				} else {
					require.Less(t, result.FinalEarnings, Goal)
					require.Equal(t, int64(0), result.FinalBalance)
				}

				last := result.History[len(result.History)-1]
				require.Equal(t, result.TotalBets, last.Bet)
				require.Equal(t, result.FinalBalance, last.Balance)
			}
		})
	}
}

func TestRunTrial_DeterministicWithSeed(t *testing.T) {
	for _, strategy := range models.AllStrategies {
		policy := MustPolicy(strategy)
		first := RunTrial(policy, NewSeededSource(7))
		second := RunTrial(policy, NewSeededSource(7))
		assert.Equal(t, first, second, "strategy %s", strategy)
	}
}
