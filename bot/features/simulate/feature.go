package simulate

import (
	"moneygame/service"

	"github.com/bwmarrin/discordgo"
)

// Feature represents the simulation feature
type Feature struct {
	simulationService service.SimulationService
	defaultTrials     int
}

// New creates a new simulation feature instance
func New(simulationService service.SimulationService, defaultTrials int) *Feature {
	return &Feature{
		simulationService: simulationService,
		defaultTrials:     defaultTrials,
	}
}

// HandleCommand handles the /simulate command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleSimulate(s, i)
}

// HandleCompareCommand handles the /compare command
func (f *Feature) HandleCompareCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleCompare(s, i)
}

// HandleInteraction handles simulation component interactions
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	f.handleRerun(s, i)
}
