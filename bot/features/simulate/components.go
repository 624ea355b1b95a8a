package simulate

import (
	"fmt"
	"strconv"
	"strings"

	"moneygame/models"
	"moneygame/simulation"

	"github.com/bwmarrin/discordgo"
)

// RerunPrefix prefixes the custom ID of every "Run again" button
const RerunPrefix = "simulate_rerun_"

// CreateRerunComponents creates the "Run again" button for a finished run
func CreateRerunComponents(strategy models.Strategy, numTrials int) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🔁 Run again",
					Style:    discordgo.PrimaryButton,
					CustomID: rerunCustomID(strategy, numTrials),
				},
			},
		},
	}
}

func rerunCustomID(strategy models.Strategy, numTrials int) string {
	return fmt.Sprintf("%s%s_%d", RerunPrefix, strategy, numTrials)
}

// parseRerunCustomID extracts the strategy and trial count from a rerun button ID
func parseRerunCustomID(customID string) (models.Strategy, int, error) {
	rest, ok := strings.CutPrefix(customID, RerunPrefix)
	if !ok {
		return "", 0, fmt.Errorf("not a rerun button: %s", customID)
	}

	sep := strings.LastIndex(rest, "_")
	if sep < 0 {
		return "", 0, fmt.Errorf("malformed rerun button: %s", customID)
	}

	strategy, err := simulation.ParseStrategy(rest[:sep])
	if err != nil {
		return "", 0, err
	}

	numTrials, err := strconv.Atoi(rest[sep+1:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed trial count in %s: %w", customID, err)
	}

	return strategy, numTrials, nil
}
