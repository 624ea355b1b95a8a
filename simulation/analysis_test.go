package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSource_SeededSourceIsFair(t *testing.T) {
	report := AnalyzeSource(NewSeededSource(2024), WinProbability, 100000)

	total := 0
	for _, count := range report.Buckets {
		total += count
	}

	assert.Equal(t, 100000, total)
	assert.InDelta(t, WinProbability, report.ObservedRate, 0.01)
	assert.Less(t, report.ChiSquaredUniform, 30.0)
	assert.True(t, report.Pass)
}

func TestAnalyzeSource_BiasedSourceFails(t *testing.T) {
	report := AnalyzeSource(&scriptedSource{values: []float64{winDraw}}, WinProbability, 1000)

	assert.Equal(t, 1000, report.Wins)
	assert.Equal(t, 1000, report.Buckets[1])
	assert.False(t, report.Pass)
}

func TestAnalyzeSource_NoTrials(t *testing.T) {
	report := AnalyzeSource(NewSource(), WinProbability, 0)

	assert.Equal(t, 0, report.Wins)
	assert.False(t, report.Pass)
}
