package simulate

import (
	"strings"
	"testing"
	"time"

	"moneygame/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(strategy models.Strategy) *models.SimulationRun {
	return &models.SimulationRun{
		ID:               17,
		Strategy:         strategy,
		Seed:             99,
		TotalTrials:      10000,
		Wins:             421,
		Losses:           9579,
		AvgBetsGivenLoss: 1.4123,
		CreatedAt:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Samples: []models.TrialResult{
			{
				SimNumber: 1,
				TotalBets: 1,
				History: []models.Snapshot{
					{Bet: 0, Balance: 5},
					{Bet: 1, Balance: 0},
				},
			},
			{
				SimNumber:     2,
				Won:           true,
				FinalBalance:  40,
				FinalEarnings: 35,
				TotalBets:     3,
				History: []models.Snapshot{
					{Bet: 0, Balance: 5},
					{Bet: 1, Balance: 10, CumulativeEarnings: 5},
					{Bet: 2, Balance: 20, CumulativeEarnings: 15},
					{Bet: 3, Balance: 40, CumulativeEarnings: 35},
				},
			},
		},
	}
}

func fieldByName(embed *discordgo.MessageEmbed, name string) *discordgo.MessageEmbedField {
	for _, field := range embed.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

func TestBuildRunEmbed(t *testing.T) {
	embed := BuildRunEmbed(sampleRun(models.StrategyAllIn))

	assert.Contains(t, embed.Title, "All-In")
	assert.Equal(t, "2024-05-01T10:00:00Z", embed.Timestamp)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Run #17 • seed 99", embed.Footer.Text)

	assert.Equal(t, "10,000", fieldByName(embed, "Total trials").Value)
	assert.Equal(t, "421", fieldByName(embed, "Wins").Value)
	assert.Equal(t, "4.21%", fieldByName(embed, "Win rate").Value)
	assert.Equal(t, "1.41", fieldByName(embed, "Avg bets when lost").Value)
	assert.Nil(t, fieldByName(embed, "Expected value"))

	samples := fieldByName(embed, "Sample trials")
	require.NotNil(t, samples)
	assert.Contains(t, samples.Value, "#1 ❌ 1 bets: $5 → $0")
	assert.Contains(t, samples.Value, "#2 ✅ 3 bets: $5 → $10 → $20 → $40")

	series := fieldByName(embed, "Balance series")
	require.NotNil(t, series)
	assert.True(t, strings.HasPrefix(series.Value, "```"))
	// Header plus one row per history index
	lines := strings.Split(strings.Trim(series.Value, "`\n"), "\n")
	assert.Len(t, lines, 5)
	assert.LessOrEqual(t, len(series.Value), 1024)
}

func TestBuildRunEmbed_FixedOnePrecision(t *testing.T) {
	run := sampleRun(models.StrategyFixedOne)
	run.Wins = 213
	run.Losses = 9787

	embed := BuildRunEmbed(run)

	assert.Equal(t, "2.1300%", fieldByName(embed, "Win rate").Value)
	assert.Contains(t, embed.Title, "Bet $1")

	expected := fieldByName(embed, "Expected value")
	require.NotNil(t, expected)
	assert.Equal(t, "-$0.30 per bet, -$30.00 after 100 bets", expected.Value)
}

func TestBuildRunEmbed_NoSamples(t *testing.T) {
	run := sampleRun(models.StrategyFixedFive)
	run.Samples = nil

	embed := BuildRunEmbed(run)

	assert.Nil(t, fieldByName(embed, "Sample trials"))
	assert.Nil(t, fieldByName(embed, "Balance series"))
}

func TestBuildRunEmbed_LongSeriesIsCut(t *testing.T) {
	history := make([]models.Snapshot, 40)
	for i := range history {
		history[i] = models.Snapshot{Bet: i * 10, Balance: int64(5 + i%3)}
	}
	run := sampleRun(models.StrategyFixedOne)
	run.Samples = []models.TrialResult{{SimNumber: 1, TotalBets: 390, History: history}}

	embed := BuildRunEmbed(run)

	series := fieldByName(embed, "Balance series").Value
	assert.Contains(t, series, "…")
	assert.LessOrEqual(t, len(series), 1024)
}

func TestBuildCompareEmbed(t *testing.T) {
	runs := []*models.SimulationRun{
		sampleRun(models.StrategyAllIn),
		sampleRun(models.StrategyFixedFive),
		sampleRun(models.StrategyFixedOne),
	}

	embed := BuildCompareEmbed(runs)

	assert.Contains(t, embed.Description, "All-In")
	assert.Contains(t, embed.Description, "Bet $5")
	assert.Contains(t, embed.Description, "Bet $1")
	assert.Contains(t, embed.Description, "4.2100%")
}

func TestBuildCompareEmbed_Empty(t *testing.T) {
	embed := BuildCompareEmbed(nil)
	assert.Equal(t, "No runs to compare.", embed.Description)
}

func TestRerunCustomID(t *testing.T) {
	for _, strategy := range models.AllStrategies {
		customID := rerunCustomID(strategy, 2500)
		assert.True(t, strings.HasPrefix(customID, RerunPrefix))

		parsed, trials, err := parseRerunCustomID(customID)
		require.NoError(t, err)
		assert.Equal(t, strategy, parsed)
		assert.Equal(t, 2500, trials)
	}

	_, _, err := parseRerunCustomID("bet_odds_50")
	assert.Error(t, err)

	_, _, err = parseRerunCustomID(RerunPrefix + "all-in_many")
	assert.Error(t, err)

	_, _, err = parseRerunCustomID(RerunPrefix + "martingale_100")
	assert.Error(t, err)
}
