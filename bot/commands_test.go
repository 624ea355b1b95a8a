package bot

import (
	"testing"

	"moneygame/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommands(t *testing.T) {
	commands := buildCommands(Config{DefaultTrials: 10000, MinTrials: 100, MaxTrials: 1000000})

	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"simulate", "compare", "history", "replay"}, names)

	simulate := commands[0]
	require.Len(t, simulate.Options, 2)

	strategy := simulate.Options[0]
	assert.True(t, strategy.Required)
	require.Len(t, strategy.Choices, len(models.AllStrategies))
	assert.Equal(t, "all-in", strategy.Choices[0].Value)
	assert.Equal(t, "All-In", strategy.Choices[0].Name)

	trials := simulate.Options[1]
	assert.Equal(t, discordgo.ApplicationCommandOptionInteger, trials.Type)
	assert.False(t, trials.Required)
	require.NotNil(t, trials.MinValue)
	assert.Equal(t, float64(100), *trials.MinValue)
	assert.Equal(t, float64(1000000), trials.MaxValue)
	assert.Contains(t, trials.Description, "10,000")
}
