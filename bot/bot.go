package bot

import (
	"fmt"
	"strings"

	"moneygame/bot/common"
	"moneygame/bot/features/history"
	"moneygame/bot/features/simulate"
	"moneygame/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token         string
	GuildID       string
	DefaultTrials int
	MinTrials     int
	MaxTrials     int
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	commands []*discordgo.ApplicationCommand

	simulateFeature *simulate.Feature
	historyFeature  *history.Feature
}

func New(config Config, simulationService service.SimulationService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:          config,
		session:         dg,
		simulateFeature: simulate.New(simulationService, config.DefaultTrials),
		historyFeature:  history.New(simulationService),
	}

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleComponents)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.WithField("user", r.User.Username).Info("Discord session ready")
	})

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close removes registered commands and closes the Discord session
func (b *Bot) Close() error {
	for _, cmd := range b.commands {
		if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.config.GuildID, cmd.ID); err != nil {
			log.WithError(err).WithField("command", cmd.Name).Warn("Failed to remove slash command")
		}
	}
	return b.session.Close()
}

// handleCommands routes slash commands to their features
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	log.WithFields(log.Fields{
		"command": name,
		"user_id": common.InteractionUserID(i),
	}).Debug("Handling slash command")

	switch name {
	case "simulate":
		b.simulateFeature.HandleCommand(s, i)
	case "compare":
		b.simulateFeature.HandleCompareCommand(s, i)
	case "history":
		b.historyFeature.HandleHistoryCommand(s, i)
	case "replay":
		b.historyFeature.HandleReplayCommand(s, i)
	}
}

// handleComponents routes button presses by custom ID prefix
func (b *Bot) handleComponents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	if strings.HasPrefix(i.MessageComponentData().CustomID, simulate.RerunPrefix) {
		b.simulateFeature.HandleInteraction(s, i)
	}
}
