package history

import (
	"context"
	"errors"
	"time"

	"moneygame/bot/common"
	"moneygame/models"
	"moneygame/service"
	"moneygame/simulation"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	queryTimeout  = 10 * time.Second
	replayTimeout = 2 * time.Minute
)

// handleHistory lists recent runs and the pooled per-strategy results
func (f *Feature) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var strategy models.Strategy
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "strategy" {
			parsed, err := simulation.ParseStrategy(opt.StringValue())
			if err != nil {
				common.RespondWithError(s, i, "Unknown strategy. Choose all-in, fixed-5 or fixed-1.")
				return
			}
			strategy = parsed
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	runs, err := f.simulationService.GetRecentRuns(ctx, strategy, common.MaxHistoryEntries)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Failed to get recent runs"), false)
		return
	}

	summaries, err := f.simulationService.GetStrategySummaries(ctx)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Failed to get strategy summaries"), false)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				BuildHistoryEmbed(runs, strategy),
				BuildSummaryEmbed(summaries),
			},
		},
	})
	if err != nil {
		log.Errorf("Error responding to history command: %v", err)
	}
}

// handleReplay re-executes a stored run and reports whether it reproduced
func (f *Feature) handleReplay(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var runID int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "id" {
			runID = opt.IntValue()
		}
	}

	if runID <= 0 {
		common.RespondWithError(s, i, "Please provide a valid run ID.")
		return
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring replay response: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), replayTimeout)
	defer cancel()

	result, err := f.simulationService.ReplayRun(ctx, runID)
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			common.HandleError(s, i, common.NewUserError("No run exists with that ID.", err), true)
			return
		}
		common.HandleError(s, i, common.NewSystemError(err, "Failed to replay run"), true)
		return
	}

	if _, err := common.FollowUpWithEmbeds(s, i, []*discordgo.MessageEmbed{BuildReplayEmbed(result)}, nil); err != nil {
		log.Errorf("Error sending replay results: %v", err)
	}
}
