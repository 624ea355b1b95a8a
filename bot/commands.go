package bot

import (
	"fmt"

	"moneygame/bot/common"
	"moneygame/models"
	"moneygame/simulation"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// buildCommands returns the slash command definitions
func buildCommands(config Config) []*discordgo.ApplicationCommand {
	minTrials := float64(config.MinTrials)

	trialsOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "trials",
		Description: fmt.Sprintf("Number of trials (default %s)", common.FormatCount(int64(config.DefaultTrials))),
		Required:    false,
		MinValue:    &minTrials,
		MaxValue:    float64(config.MaxTrials),
	}

	strategyChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.AllStrategies))
	for _, strategy := range models.AllStrategies {
		strategyChoices = append(strategyChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  simulation.DisplayName(strategy),
			Value: string(strategy),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "simulate",
			Description: "Simulate a betting strategy from $5 to a $25 goal",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "strategy",
					Description: "How much to bet each round",
					Required:    true,
					Choices:     strategyChoices,
				},
				trialsOption,
			},
		},
		{
			Name:        "compare",
			Description: "Simulate every strategy side by side",
			Options: []*discordgo.ApplicationCommandOption{
				trialsOption,
			},
		},
		{
			Name:        "history",
			Description: "Show recent simulations and all-time results",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "strategy",
					Description: "Only show this strategy",
					Required:    false,
					Choices:     strategyChoices,
				},
			},
		},
		{
			Name:        "replay",
			Description: "Re-run a stored simulation from its seed",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "id",
					Description: "Run ID shown in the results footer",
					Required:    true,
				},
			},
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	for _, cmd := range buildCommands(b.config) {
		registered, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
		b.commands = append(b.commands, registered)
	}

	log.WithField("count", len(b.commands)).Info("Registered slash commands")
	return nil
}
