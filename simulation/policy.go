// Package simulation runs Monte Carlo trials of fixed betting strategies
// against a gambler's-ruin game: start with $5, win even money with
// probability 0.35, succeed once cumulative winnings reach $25.
package simulation

import (
	"errors"
	"fmt"
	"strings"

	"moneygame/models"
)

const (
	// StartingBalance is the spendable balance every trial begins with
	StartingBalance int64 = 5

	// Goal is the cumulative earnings threshold that wins a trial
	Goal int64 = 25

	// WinProbability is the chance a single bet pays out
	WinProbability = 0.35

	// MaxSamples is how many trials per batch keep their full history
	MaxSamples = 5
)

// ErrUnknownStrategy is returned for strategy names with no policy
var ErrUnknownStrategy = errors.New("unknown strategy")

// Policy sizes bets for one strategy and controls how its trials are sampled
type Policy struct {
	Strategy models.Strategy

	// BetAmount returns the wager for the next bet given the current balance
	BetAmount func(balance int64) int64

	// SampleEvery records a history snapshot every N bets
	SampleEvery int

	// WinRateDecimals is the display precision of the win rate percentage
	WinRateDecimals int

	// FixedBet is the constant wager of a flat-betting strategy, zero when bets vary
	FixedBet int64
}

var policies = map[models.Strategy]Policy{
	models.StrategyAllIn: {
		Strategy:        models.StrategyAllIn,
		BetAmount:       func(balance int64) int64 { return balance },
		SampleEvery:     1,
		WinRateDecimals: 2,
	},
	models.StrategyFixedFive: {
		Strategy:        models.StrategyFixedFive,
		BetAmount:       func(balance int64) int64 { return min(5, balance) },
		SampleEvery:     1,
		WinRateDecimals: 2,
		FixedBet:        5,
	},
	models.StrategyFixedOne: {
		Strategy: models.StrategyFixedOne,
		BetAmount: func(balance int64) int64 {
			if balance < 1 {
				return 0
			}
			return 1
		},
		// Low-stakes trials run for hundreds of bets
		SampleEvery:     10,
		WinRateDecimals: 4,
		FixedBet:        1,
	},
}

// PolicyFor returns the policy for a strategy
func PolicyFor(strategy models.Strategy) (Policy, error) {
	p, ok := policies[strategy]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	return p, nil
}

// MustPolicy is PolicyFor for strategies known at compile time
func MustPolicy(strategy models.Strategy) Policy {
	p, err := PolicyFor(strategy)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseStrategy resolves user input such as "allin", "bet5" or "1" to a strategy
func ParseStrategy(name string) (models.Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "", "-", "", "$", "", " ", "").Replace(normalized)

	switch normalized {
	case "allin", "all":
		return models.StrategyAllIn, nil
	case "fixed5", "bet5", "five", "5":
		return models.StrategyFixedFive, nil
	case "fixed1", "bet1", "one", "1":
		return models.StrategyFixedOne, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// DisplayName returns a human readable strategy label
func DisplayName(strategy models.Strategy) string {
	switch strategy {
	case models.StrategyAllIn:
		return "All-In"
	case models.StrategyFixedFive:
		return "Bet $5"
	case models.StrategyFixedOne:
		return "Bet $1"
	default:
		return string(strategy)
	}
}
