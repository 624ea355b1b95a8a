package simulate

import (
	"context"
	"errors"
	"strconv"
	"time"

	"moneygame/bot/common"
	"moneygame/models"
	"moneygame/service"
	"moneygame/simulation"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const simulationTimeout = 2 * time.Minute

// handleSimulate runs one strategy and posts its results
func (f *Feature) handleSimulate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var (
		strategy  models.Strategy
		numTrials = f.defaultTrials
		err       error
	)

	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "strategy":
			strategy, err = simulation.ParseStrategy(opt.StringValue())
			if err != nil {
				common.RespondWithError(s, i, "Unknown strategy. Choose all-in, fixed-5 or fixed-1.")
				return
			}
		case "trials":
			numTrials = int(opt.IntValue())
		}
	}

	if strategy == "" {
		common.RespondWithError(s, i, "Please choose a strategy.")
		return
	}

	f.runAndRespond(s, i, strategy, numTrials)
}

// handleRerun repeats a run from its "Run again" button with a fresh seed
func (f *Feature) handleRerun(s *discordgo.Session, i *discordgo.InteractionCreate) {
	strategy, numTrials, err := parseRerunCustomID(i.MessageComponentData().CustomID)
	if err != nil {
		log.WithError(err).Warn("Ignoring malformed rerun button")
		common.RespondWithError(s, i, "This button is no longer valid.")
		return
	}

	f.runAndRespond(s, i, strategy, numTrials)
}

func (f *Feature) runAndRespond(s *discordgo.Session, i *discordgo.InteractionCreate, strategy models.Strategy, numTrials int) {
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring simulation response: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), simulationTimeout)
	defer cancel()

	run, err := f.simulationService.RunSimulation(ctx, strategy, numTrials, requesterID(i))
	if err != nil {
		common.HandleError(s, i, toBotError(err), true)
		return
	}

	embed := BuildRunEmbed(run)
	if _, err := common.FollowUpWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, CreateRerunComponents(strategy, numTrials)); err != nil {
		log.Errorf("Error sending simulation results: %v", err)
	}
}

// handleCompare runs every strategy with the same trial count
func (f *Feature) handleCompare(s *discordgo.Session, i *discordgo.InteractionCreate) {
	numTrials := f.defaultTrials
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "trials" {
			numTrials = int(opt.IntValue())
		}
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring compare response: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), simulationTimeout)
	defer cancel()

	runs, err := f.simulationService.CompareStrategies(ctx, numTrials, requesterID(i))
	if err != nil {
		common.HandleError(s, i, toBotError(err), true)
		return
	}

	if _, err := common.FollowUpWithEmbeds(s, i, []*discordgo.MessageEmbed{BuildCompareEmbed(runs)}, nil); err != nil {
		log.Errorf("Error sending comparison results: %v", err)
	}
}

// requesterID returns the invoking Discord user, or nil if it cannot be parsed
func requesterID(i *discordgo.InteractionCreate) *int64 {
	id, err := strconv.ParseInt(common.InteractionUserID(i), 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func toBotError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidTrialCount):
		return common.NewUserError("Trial count is out of range.", err)
	case errors.Is(err, simulation.ErrUnknownStrategy):
		return common.NewUserError("Unknown strategy. Choose all-in, fixed-5 or fixed-1.", err)
	case errors.Is(err, context.DeadlineExceeded):
		return common.NewUserError("The simulation took too long. Try fewer trials.", err)
	default:
		return common.NewSystemError(err, "Failed to run simulation")
	}
}
