package history

import (
	"moneygame/service"

	"github.com/bwmarrin/discordgo"
)

// Feature represents the run history feature
type Feature struct {
	simulationService service.SimulationService
}

// New creates a new history feature instance
func New(simulationService service.SimulationService) *Feature {
	return &Feature{
		simulationService: simulationService,
	}
}

// HandleHistoryCommand handles the /history command
func (f *Feature) HandleHistoryCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleHistory(s, i)
}

// HandleReplayCommand handles the /replay command
func (f *Feature) HandleReplayCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleReplay(s, i)
}
