package safehaven

import (
	"fmt"
	"math"
)

// BetStats holds the arithmetic and geometric average return of a set of
// equally likely outcomes. The gap between the two is the volatility tax
// the study keeps coming back to.
type BetStats struct {
	Arithmetic Percent
	Geometric  Percent
}

// ArithmeticMean returns the average return of the outcomes: each
// outcome is a wealth multiplier, so 1.05 contributes +5%.
func ArithmeticMean(outcomes []float64) Percent {
	if len(outcomes) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range outcomes {
		sum += o
	}
	return Percent(sum/float64(len(outcomes)) - 1)
}

// GeometricMean returns the compounded average return of the outcomes.
// A single zero outcome drives it to -100%.
func GeometricMean(outcomes []float64) Percent {
	if len(outcomes) == 0 {
		return 0
	}
	logSum := 0.0
	for _, o := range outcomes {
		if o == 0 {
			return -1
		}
		logSum += math.Log(o)
	}
	return Percent(math.Exp(logSum/float64(len(outcomes))) - 1)
}

// Averages computes both means at once.
func Averages(outcomes []float64) BetStats {
	return BetStats{Arithmetic: ArithmeticMean(outcomes), Geometric: GeometricMean(outcomes)}
}

// Blend pairs the outcomes of two bets into the outcomes of a portfolio
// holding weight w of a and (1-w) of b, rebalanced every roll.
// A single-outcome b is broadcast against a.
func Blend(a, b []float64, w float64) ([]float64, error) {
	if w < 0 || w > 1 {
		return nil, fmt.Errorf("weight %g must be within [0, 1]", w)
	}
	if len(b) == 1 {
		bb := make([]float64, len(a))
		for i := range bb {
			bb[i] = b[0]
		}
		b = bb
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("cannot blend %d outcomes with %d", len(a), len(b))
	}
	blended := make([]float64, len(a))
	for i := range a {
		blended[i] = w*a[i] + (1-w)*b[i]
	}
	return blended, nil
}

// KellyReport compares a dice bet alone against blending it with a cash
// anchor: what the anchor costs in arithmetic average, and what it earns
// back in geometric average.
type KellyReport struct {
	Dice       Bet
	Anchor     Bet
	DiceWeight Percent

	DiceStats    BetStats
	AnchorStats  BetStats
	BlendedStats BetStats

	// Cost is the arithmetic drag of the anchor, usually negative.
	Cost Percent
	// Net is the geometric gain of the anchor, positive when the
	// anchor is worth holding.
	Net Percent
}

// Kelly evaluates the blend of a dice bet with an anchor at the given
// dice weight.
func Kelly(dice, anchor Bet, diceWeight float64) (*KellyReport, error) {
	d := dice.Outcomes()
	a := anchor.Outcomes()
	blended, err := Blend(d, a, diceWeight)
	if err != nil {
		return nil, fmt.Errorf("blending %q with %q: %w", dice.Name, anchor.Name, err)
	}
	r := &KellyReport{
		Dice:         dice,
		Anchor:       anchor,
		DiceWeight:   Percent(diceWeight),
		DiceStats:    Averages(d),
		AnchorStats:  Averages(a),
		BlendedStats: Averages(blended),
	}
	r.Cost = r.BlendedStats.Arithmetic - r.DiceStats.Arithmetic
	r.Net = r.BlendedStats.Geometric - r.DiceStats.Geometric
	return r, nil
}
