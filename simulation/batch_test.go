package simulation

import (
	"testing"

	"moneygame/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_CountsEveryTrial(t *testing.T) {
	for _, strategy := range models.AllStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			result := RunBatch(MustPolicy(strategy), 2000, NewSeededSource(1))

			stats := result.Stats
			assert.Equal(t, strategy, result.Strategy)
			assert.Equal(t, 2000, stats.TotalTrials)
			assert.Equal(t, stats.TotalTrials, stats.Wins+stats.Losses)
			assert.Equal(t, float64(stats.Wins)/float64(stats.TotalTrials), stats.WinRate)
		})
	}
}

func TestRunBatch_KeepsFirstFiveSamples(t *testing.T) {
	result := RunBatch(MustPolicy(models.StrategyAllIn), 100, NewSeededSource(3))

	require.Len(t, result.Samples, MaxSamples)
	for i, sample := range result.Samples {
		assert.Equal(t, i+1, sample.SimNumber)
		assert.NotEmpty(t, sample.History)
	}

	// The samples are the first trials drawn from the same stream
	rng := NewSeededSource(3)
	policy := MustPolicy(models.StrategyAllIn)
	for i := 0; i < MaxSamples; i++ {
		expected := RunTrial(policy, rng)
		expected.SimNumber = i + 1
		assert.Equal(t, expected, result.Samples[i])
	}
}

func TestRunBatch_FewerTrialsThanSamples(t *testing.T) {
	result := RunBatch(MustPolicy(models.StrategyFixedFive), 3, NewSeededSource(5))

	assert.Len(t, result.Samples, 3)
	assert.Equal(t, 3, result.Stats.TotalTrials)
}

func TestRunBatch_Empty(t *testing.T) {
	result := RunBatch(MustPolicy(models.StrategyFixedOne), 0, NewSeededSource(5))

	assert.Empty(t, result.Samples)
	assert.Equal(t, models.AggregateStats{}, result.Stats)
}

func TestRunBatch_AvgBetsGivenLossZeroWithoutLosses(t *testing.T) {
	result := RunBatch(MustPolicy(models.StrategyAllIn), 4, &scriptedSource{values: []float64{winDraw}})

	assert.Equal(t, 4, result.Stats.Wins)
	assert.Equal(t, 0, result.Stats.Losses)
	assert.Equal(t, 1.0, result.Stats.WinRate)
	assert.Equal(t, 0.0, result.Stats.AvgBetsGivenLoss)
}

func TestRunBatch_AvgBetsGivenLoss(t *testing.T) {
	// Trial 1: win, loss (2 bets). Trial 2: loss (1 bet).
	rng := draws(true, false, false)
	result := RunBatch(MustPolicy(models.StrategyAllIn), 2, rng)

	assert.Equal(t, 2, result.Stats.Losses)
	assert.Equal(t, 1.5, result.Stats.AvgBetsGivenLoss)
}

func TestRunBatch_Reproducible(t *testing.T) {
	policy := MustPolicy(models.StrategyFixedOne)

	first := RunBatch(policy, 1000, NewSeededSource(99))
	second := RunBatch(policy, 1000, NewSeededSource(99))

	assert.Equal(t, first, second)
}

func TestRunBatch_VarianceOrdering(t *testing.T) {
	allIn := RunBatch(MustPolicy(models.StrategyAllIn), 10000, NewSeededSource(11))
	fixedOne := RunBatch(MustPolicy(models.StrategyFixedOne), 10000, NewSeededSource(11))

	// All-in busts within a couple of bets; $1 bets grind for much longer
	assert.Less(t, allIn.Stats.AvgBetsGivenLoss, 3.0)
	assert.Greater(t, fixedOne.Stats.AvgBetsGivenLoss, 5*allIn.Stats.AvgBetsGivenLoss)
	assert.Greater(t, allIn.Stats.WinRate, fixedOne.Stats.WinRate)
}

func TestFormatWinRate(t *testing.T) {
	stats := models.AggregateStats{WinRate: 0.123456}

	assert.Equal(t, "12.35", FormatWinRate(stats, MustPolicy(models.StrategyAllIn)))
	assert.Equal(t, "12.35", FormatWinRate(stats, MustPolicy(models.StrategyFixedFive)))
	assert.Equal(t, "12.3456", FormatWinRate(stats, MustPolicy(models.StrategyFixedOne)))
}

func TestExpectedNetChange(t *testing.T) {
	assert.InDelta(t, -0.30, ExpectedNetChange(1, 1), 1e-9)
	assert.InDelta(t, -30.0, ExpectedNetChange(1, 100), 1e-9)
	assert.InDelta(t, -1.5, ExpectedNetChange(5, 1), 1e-9)
}

func TestFormatExpectedValue(t *testing.T) {
	summary, ok := FormatExpectedValue(MustPolicy(models.StrategyFixedOne))
	require.True(t, ok)
	assert.Equal(t, "-$0.30 per bet, -$30.00 after 100 bets", summary)

	summary, ok = FormatExpectedValue(MustPolicy(models.StrategyFixedFive))
	require.True(t, ok)
	assert.Equal(t, "-$1.50 per bet, -$150.00 after 100 bets", summary)

	_, ok = FormatExpectedValue(MustPolicy(models.StrategyAllIn))
	assert.False(t, ok)
}
