package simulate

import (
	"fmt"
	"strings"
	"time"

	"moneygame/bot/common"
	"moneygame/models"
	"moneygame/simulation"

	"github.com/bwmarrin/discordgo"
)

const (
	maxTrajectoryPoints = 8
	maxSeriesRows       = 12
)

// BuildRunEmbed creates the results embed for a stored run
func BuildRunEmbed(run *models.SimulationRun) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎲 %s Strategy", simulation.DisplayName(run.Strategy)),
		Description: fmt.Sprintf("Start with %s, stop at ruin or %s in winnings. Each bet wins with %.0f%% probability.", common.FormatDollars(simulation.StartingBalance), common.FormatDollars(simulation.Goal), simulation.WinProbability*100),
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Total trials",
				Value:  common.FormatCount(int64(run.TotalTrials)),
				Inline: true,
			},
			{
				Name:   "Wins",
				Value:  common.FormatCount(int64(run.Wins)),
				Inline: true,
			},
			{
				Name:   "Win rate",
				Value:  FormatWinRate(run) + "%",
				Inline: true,
			},
			{
				Name:   "Avg bets when lost",
				Value:  fmt.Sprintf("%.2f", run.AvgBetsGivenLoss),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Run #%d • seed %d", run.ID, run.Seed),
		},
	}

	if policy, err := simulation.PolicyFor(run.Strategy); err == nil {
		if summary, ok := simulation.FormatExpectedValue(policy); ok {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Expected value",
				Value: summary,
			})
		}
	}

	if !run.CreatedAt.IsZero() {
		embed.Timestamp = run.CreatedAt.Format(time.RFC3339)
	}

	if len(run.Samples) > 0 {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{
				Name:  "Sample trials",
				Value: common.Truncate(formatSamples(run.Samples), common.MaxFieldValueLength),
			},
			&discordgo.MessageEmbedField{
				Name:  "Balance series",
				Value: formatSeriesTable(simulation.BuildChartRows(run.Samples), len(run.Samples)),
			},
		)
	}

	return embed
}

// BuildCompareEmbed creates a side-by-side table of one run per strategy
func BuildCompareEmbed(runs []*models.SimulationRun) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "⚖️ Strategy Comparison",
		Color: common.ColorInfo,
	}

	if len(runs) == 0 {
		embed.Description = "No runs to compare."
		return embed
	}

	var table strings.Builder
	table.WriteString("```\n")
	table.WriteString(fmt.Sprintf("%-8s %9s %10s %9s\n", "Strategy", "Trials", "Win rate", "Avg lost"))
	table.WriteString(strings.Repeat("-", 39) + "\n")
	for _, run := range runs {
		table.WriteString(fmt.Sprintf("%-8s %9d %9s%% %9.2f\n",
			simulation.DisplayName(run.Strategy), run.TotalTrials, FormatWinRate(run), run.AvgBetsGivenLoss))
	}
	table.WriteString("```")

	embed.Description = table.String()
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: "Avg lost = average number of bets in trials that ended in ruin",
	}

	return embed
}

// FormatWinRate renders a run's win rate at its strategy's precision
func FormatWinRate(run *models.SimulationRun) string {
	policy, err := simulation.PolicyFor(run.Strategy)
	if err != nil {
		return fmt.Sprintf("%.2f", run.WinRate()*100)
	}
	return simulation.FormatWinRate(run.Stats(), policy)
}

func formatSamples(samples []models.TrialResult) string {
	lines := make([]string, 0, len(samples))
	for idx, sample := range samples {
		simNumber := sample.SimNumber
		if simNumber == 0 {
			simNumber = idx + 1
		}

		outcome := "❌"
		if sample.Won {
			outcome = "✅"
		}

		balances := make([]int64, len(sample.History))
		for j, snap := range sample.History {
			balances[j] = snap.Balance
		}

		lines = append(lines, fmt.Sprintf("#%d %s %d bets: %s",
			simNumber, outcome, sample.TotalBets, common.FormatTrajectory(balances, maxTrajectoryPoints)))
	}
	return strings.Join(lines, "\n")
}

// formatSeriesTable renders the first chart rows as a fixed-width table of balances
func formatSeriesTable(rows []models.ChartRow, columns int) string {
	var table strings.Builder
	table.WriteString("```\n")
	table.WriteString(fmt.Sprintf("%5s", "Bet"))
	for sim := 1; sim <= columns; sim++ {
		table.WriteString(fmt.Sprintf(" %6s", fmt.Sprintf("#%d", sim)))
	}
	table.WriteString("\n")

	for idx, row := range rows {
		if idx == maxSeriesRows {
			table.WriteString(fmt.Sprintf("%5s\n", "…"))
			break
		}
		table.WriteString(fmt.Sprintf("%5d", row.Bet))
		for sim := 1; sim <= columns; sim++ {
			if balance, ok := row.Balances[sim]; ok {
				table.WriteString(fmt.Sprintf(" %6s", common.FormatDollars(balance)))
			} else {
				table.WriteString(fmt.Sprintf(" %6s", ""))
			}
		}
		table.WriteString("\n")
	}

	table.WriteString("```")
	return table.String()
}
