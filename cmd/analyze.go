package cmd

import (
	"fmt"
	"io"
	"strconv"

	"moneygame/simulation"
)

const defaultAnalysisTrials = 1000000

// Analyze checks the engine's random source against the game's win probability.
// args is an optional draw count.
func Analyze(w io.Writer, args []string, seed int64) error {
	trials := defaultAnalysisTrials
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid draw count %q", args[0])
		}
		trials = parsed
	}

	report := simulation.AnalyzeSource(simulation.NewSeededSource(seed), simulation.WinProbability, trials)

	fmt.Fprintf(w, "RNG fairness (seed %d)\n", seed)
	fmt.Fprintf(w, "  Draws:               %d\n", report.Trials)
	fmt.Fprintf(w, "  Wins:                %d\n", report.Wins)
	fmt.Fprintf(w, "  Expected rate:       %.4f\n", report.WinProbability)
	fmt.Fprintf(w, "  Observed rate:       %.4f\n", report.ObservedRate)
	fmt.Fprintf(w, "  Deviation:           %+.4f\n", report.Deviation)
	fmt.Fprintf(w, "  Chi-squared (W/L):   %.3f\n", report.ChiSquaredWinLoss)
	fmt.Fprintf(w, "  Chi-squared (bins):  %.3f\n", report.ChiSquaredUniform)
	fmt.Fprintf(w, "  Buckets:             %v\n", report.Buckets)

	verdict := "PASS"
	if !report.Pass {
		verdict = "FAIL"
	}
	fmt.Fprintf(w, "  Result:              %s\n", verdict)

	return nil
}
