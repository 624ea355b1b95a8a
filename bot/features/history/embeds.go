package history

import (
	"fmt"
	"strings"

	"moneygame/bot/common"
	"moneygame/bot/features/simulate"
	"moneygame/models"
	"moneygame/simulation"

	"github.com/bwmarrin/discordgo"
)

// BuildHistoryEmbed lists recent runs, newest first
func BuildHistoryEmbed(runs []*models.SimulationRun, strategy models.Strategy) *discordgo.MessageEmbed {
	title := "📜 Recent Simulations"
	if strategy != "" {
		title = fmt.Sprintf("📜 Recent %s Simulations", simulation.DisplayName(strategy))
	}

	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: common.ColorPrimary,
	}

	if len(runs) == 0 {
		embed.Description = "No simulations have been run yet. Try `/simulate`."
		return embed
	}

	lines := make([]string, 0, len(runs))
	for _, run := range runs {
		line := fmt.Sprintf("`#%d` **%s** • %s trials • %s%% won",
			run.ID,
			simulation.DisplayName(run.Strategy),
			common.FormatCount(int64(run.TotalTrials)),
			simulate.FormatWinRate(run),
		)
		if !run.CreatedAt.IsZero() {
			line += " • " + common.FormatDiscordTimestamp(run.CreatedAt, "R")
		}
		lines = append(lines, line)
	}

	embed.Description = strings.Join(lines, "\n")
	return embed
}

// BuildSummaryEmbed shows pooled win rates across every stored run
func BuildSummaryEmbed(summaries []*models.StrategySummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📊 All-Time Results",
		Color: common.ColorInfo,
	}

	if len(summaries) == 0 {
		embed.Description = "No results yet."
		return embed
	}

	for _, summary := range summaries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: simulation.DisplayName(summary.Strategy),
			Value: fmt.Sprintf("%.2f%% over %s trials\n%d runs",
				summary.PooledWinRate*100,
				common.FormatCount(summary.TotalTrials),
				summary.Runs,
			),
			Inline: true,
		})
	}

	return embed
}

// BuildReplayEmbed reports whether a stored run reproduced from its seed
func BuildReplayEmbed(result *models.ReplayResult) *discordgo.MessageEmbed {
	run := result.Run

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔁 Replay of Run #%d", run.ID),
		Color: common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Strategy",
				Value:  simulation.DisplayName(run.Strategy),
				Inline: true,
			},
			{
				Name:   "Seed",
				Value:  fmt.Sprintf("%d", run.Seed),
				Inline: true,
			},
			{
				Name:   "Stored wins",
				Value:  common.FormatCount(int64(run.Wins)),
				Inline: true,
			},
			{
				Name:   "Replayed wins",
				Value:  common.FormatCount(int64(result.Replayed.Stats.Wins)),
				Inline: true,
			},
		},
	}

	if result.Matched {
		embed.Description = "✅ The replay reproduced the stored results exactly."
	} else {
		embed.Color = common.ColorDanger
		embed.Description = "⚠️ The replay does not match the stored results."
	}

	return embed
}
