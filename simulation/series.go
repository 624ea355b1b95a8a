package simulation

import (
	"moneygame/models"
)

// BuildChartRows pivots sample trajectories into rows keyed by history index,
// one column per sample, ready for a line chart. Shorter trajectories simply
// stop contributing once their history runs out.
func BuildChartRows(samples []models.TrialResult) []models.ChartRow {
	maxLength := 0
	for _, sample := range samples {
		if len(sample.History) > maxLength {
			maxLength = len(sample.History)
		}
	}

	rows := make([]models.ChartRow, 0, maxLength)
	for i := 0; i < maxLength; i++ {
		row := models.ChartRow{
			Step:     i,
			Bet:      -1,
			Balances: make(map[int]int64, len(samples)),
			Earnings: make(map[int]int64, len(samples)),
		}

		for idx, sample := range samples {
			if i >= len(sample.History) {
				continue
			}
			point := sample.History[i]
			if row.Bet < 0 {
				row.Bet = point.Bet
			}

			simNumber := sample.SimNumber
			if simNumber == 0 {
				simNumber = idx + 1
			}
			row.Balances[simNumber] = point.Balance
			row.Earnings[simNumber] = point.CumulativeEarnings
		}

		rows = append(rows, row)
	}

	return rows
}
