package simulation

import (
	"math"
)

const (
	// uniformChiSquaredLimit is the 95% critical value for 9 degrees of freedom
	uniformChiSquaredLimit = 16.92

	// rateTolerance is the accepted absolute deviation from the target probability
	rateTolerance = 0.02

	bucketCount = 10
)

// FairnessReport describes how closely a random source tracks a win probability
type FairnessReport struct {
	WinProbability    float64
	Trials            int
	Wins              int
	ObservedRate      float64
	Deviation         float64 // Observed minus expected rate
	ChiSquaredWinLoss float64
	Buckets           [bucketCount]int
	ChiSquaredUniform float64
	Pass              bool
}

// AnalyzeSource draws trials values from rng and checks them against
// winProbability using the same "value < p" roll the game uses, plus a
// ten-bucket uniformity test.
func AnalyzeSource(rng RandSource, winProbability float64, trials int) FairnessReport {
	report := FairnessReport{
		WinProbability: winProbability,
		Trials:         trials,
	}
	if trials <= 0 {
		return report
	}

	for i := 0; i < trials; i++ {
		value := rng.Float64()
		if value < winProbability {
			report.Wins++
		}

		bucket := int(value * bucketCount)
		if bucket >= bucketCount {
			bucket = bucketCount - 1
		}
		report.Buckets[bucket]++
	}

	n := float64(trials)
	report.ObservedRate = float64(report.Wins) / n
	report.Deviation = report.ObservedRate - winProbability

	expectedWins := n * winProbability
	expectedLosses := n * (1 - winProbability)
	if expectedWins > 0 && expectedLosses > 0 {
		report.ChiSquaredWinLoss = math.Pow(float64(report.Wins)-expectedWins, 2)/expectedWins +
			math.Pow(float64(trials-report.Wins)-expectedLosses, 2)/expectedLosses
	}

	expectedPerBucket := n / bucketCount
	for _, count := range report.Buckets {
		report.ChiSquaredUniform += math.Pow(float64(count)-expectedPerBucket, 2) / expectedPerBucket
	}

	report.Pass = math.Abs(report.Deviation) <= rateTolerance &&
		report.ChiSquaredUniform < uniformChiSquaredLimit

	return report
}
