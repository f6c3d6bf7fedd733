// Package fraud computes the Thumbprint score: a 0-1000 heuristic risk
// rating for a classified transaction set, with the list of triggered
// indicators. Scoring is deterministic and has no side effects.
package fraud

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneythumb/moneythumb/internal/model"
)

// Thresholds are fixed. A caller that needs different sensitivity needs a
// different scorer, not a parameter.
const (
	maxScore = 1000

	roundNumberPoints     = 150
	roundNumberMinCredits = 10
	roundNumberShare      = 0.3

	identicalPoints      = 200
	identicalRepeatLimit = 5

	timingPoints = 100
	weekendShare = 0.2

	patternBreakPoints     = 100
	patternBreakMinCredits = 20
	patternBreakMultiple   = 5
)

// check is one fraud indicator: a fixed label, a fixed point value, and a
// predicate over the credit transactions.
type check struct {
	label  string
	points int
	detect func(credits []model.Transaction) bool
}

// checks run in this order; the factors list preserves it.
var checks = []check{
	{"Round number deposits", roundNumberPoints, hasRoundNumberPattern},
	{"Repeated identical amounts", identicalPoints, hasIdenticalDeposits},
	{"Unusual deposit timing", timingPoints, hasUnusualTiming},
	{"Inconsistent patterns", patternBreakPoints, hasPatternBreaks},
}

// Score returns the Thumbprint score in [0,1000] and the labels of the
// triggered indicators in fixed evaluation order.
func Score(txns []model.Transaction) (int, []string) {
	var credits []model.Transaction
	for _, tx := range txns {
		if tx.Direction == model.DirectionCredit {
			credits = append(credits, tx)
		}
	}

	score := 0
	var factors []string
	for _, c := range checks {
		if c.detect(credits) {
			score += c.points
			factors = append(factors, c.label)
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score, factors
}

var hundred = decimal.NewFromInt(100)

// hasRoundNumberPattern: too many deposits landing on exact multiples of 100.
func hasRoundNumberPattern(credits []model.Transaction) bool {
	if len(credits) < roundNumberMinCredits {
		return false
	}

	round := 0
	for _, tx := range credits {
		if tx.Amount.Mod(hundred).IsZero() {
			round++
		}
	}
	return float64(round)/float64(len(credits)) > roundNumberShare
}

// hasIdenticalDeposits: any single deposit amount recurring more than 5 times.
func hasIdenticalDeposits(credits []model.Transaction) bool {
	counts := make(map[string]int)
	for _, tx := range credits {
		counts[tx.Amount.String()]++
		if counts[tx.Amount.String()] > identicalRepeatLimit {
			return true
		}
	}
	return false
}

// hasUnusualTiming: more than 20% of deposits dated on a weekend.
func hasUnusualTiming(credits []model.Transaction) bool {
	if len(credits) == 0 {
		return false
	}

	weekend := 0
	for _, tx := range credits {
		switch tx.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekend++
		}
	}
	return float64(weekend)/float64(len(credits)) > weekendShare
}

// hasPatternBreaks: with an established deposit history, any single deposit
// more than 5x the mean deposit amount.
func hasPatternBreaks(credits []model.Transaction) bool {
	if len(credits) < patternBreakMinCredits {
		return false
	}

	total := decimal.Zero
	for _, tx := range credits {
		total = total.Add(tx.Amount)
	}
	mean := total.Div(decimal.NewFromInt(int64(len(credits))))
	limit := mean.Mul(decimal.NewFromInt(patternBreakMultiple))

	for _, tx := range credits {
		if tx.Amount.GreaterThan(limit) {
			return true
		}
	}
	return false
}
