package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"moneygame/config"
	"moneygame/models"
	"moneygame/simulation"

	log "github.com/sirupsen/logrus"
)

// Simulate runs batches straight against the engine and writes a report to w.
// args are [strategy|all] [count]; both are optional.
func Simulate(w io.Writer, cfg *config.Config, args []string, seed int64) error {
	strategies := models.AllStrategies
	if len(args) > 0 && !strings.EqualFold(args[0], "all") {
		strategy, err := simulation.ParseStrategy(args[0])
		if err != nil {
			return err
		}
		strategies = []models.Strategy{strategy}
	}

	numTrials := cfg.DefaultSimulationCount
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid trial count %q: %w", args[1], err)
		}
		numTrials = parsed
	}
	if numTrials < cfg.MinSimulationCount || numTrials > cfg.MaxSimulationCount {
		return fmt.Errorf("trial count %d is outside [%d, %d]", numTrials, cfg.MinSimulationCount, cfg.MaxSimulationCount)
	}

	for idx, strategy := range strategies {
		policy := simulation.MustPolicy(strategy)
		// Strategies in one invocation draw from distinct streams
		strategySeed := seed + int64(idx)

		start := time.Now()
		result := simulation.RunBatch(policy, numTrials, simulation.NewSeededSource(strategySeed))
		log.WithFields(log.Fields{
			"strategy":    strategy,
			"trials":      numTrials,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("Batch finished")

		if idx > 0 {
			fmt.Fprintln(w)
		}
		writeBatchReport(w, policy, result, strategySeed)
	}

	return nil
}

func writeBatchReport(w io.Writer, policy simulation.Policy, result models.BatchResult, seed int64) {
	stats := result.Stats
	fmt.Fprintf(w, "%s (seed %d)\n", simulation.DisplayName(policy.Strategy), seed)
	fmt.Fprintf(w, "  Total trials:        %d\n", stats.TotalTrials)
	fmt.Fprintf(w, "  Wins:                %d\n", stats.Wins)
	fmt.Fprintf(w, "  Losses:              %d\n", stats.Losses)
	fmt.Fprintf(w, "  Win rate:            %s%%\n", simulation.FormatWinRate(stats, policy))
	fmt.Fprintf(w, "  Avg bets when lost:  %.2f\n", stats.AvgBetsGivenLoss)
	if summary, ok := simulation.FormatExpectedValue(policy); ok {
		fmt.Fprintf(w, "  Expected value:      %s\n", summary)
	}

	for _, sample := range result.Samples {
		outcome := "lost"
		if sample.Won {
			outcome = "won"
		}
		fmt.Fprintf(w, "  Sample #%d: %s after %d bets, final balance $%d, earnings $%d\n",
			sample.SimNumber, outcome, sample.TotalBets, sample.FinalBalance, sample.FinalEarnings)
	}
}
