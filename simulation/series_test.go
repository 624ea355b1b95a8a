package simulation

import (
	"testing"

	"moneygame/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartRows(t *testing.T) {
	samples := []models.TrialResult{
		{
			SimNumber: 1,
			History: []models.Snapshot{
				{Bet: 0, Balance: 5, CumulativeEarnings: 0},
				{Bet: 1, Balance: 0, CumulativeEarnings: 0},
			},
		},
		{
			SimNumber: 2,
			History: []models.Snapshot{
				{Bet: 0, Balance: 5, CumulativeEarnings: 0},
				{Bet: 1, Balance: 10, CumulativeEarnings: 5},
				{Bet: 2, Balance: 0, CumulativeEarnings: 5},
			},
		},
	}

	rows := BuildChartRows(samples)
	require.Len(t, rows, 3)

	assert.Equal(t, 0, rows[0].Step)
	assert.Equal(t, map[int]int64{1: 5, 2: 5}, rows[0].Balances)

	assert.Equal(t, 1, rows[1].Bet)
	assert.Equal(t, map[int]int64{1: 0, 2: 10}, rows[1].Balances)
	assert.Equal(t, map[int]int64{1: 0, 2: 5}, rows[1].Earnings)

	// Only the longer trajectory reaches the last step
	assert.Equal(t, 2, rows[2].Step)
	assert.Equal(t, 2, rows[2].Bet)
	assert.Equal(t, map[int]int64{2: 0}, rows[2].Balances)
	assert.Equal(t, map[int]int64{2: 5}, rows[2].Earnings)
}

func TestBuildChartRows_SampledCadenceKeepsBetIndex(t *testing.T) {
	result := RunBatch(MustPolicy(models.StrategyFixedOne), 1, draws(true))
	rows := BuildChartRows(result.Samples)

	require.Len(t, rows, 4)
	assert.Equal(t, []int{0, 10, 20, 25}, []int{rows[0].Bet, rows[1].Bet, rows[2].Bet, rows[3].Bet})
	assert.Equal(t, int64(25), rows[3].Earnings[1])
}

func TestBuildChartRows_Empty(t *testing.T) {
	assert.Empty(t, BuildChartRows(nil))
}
