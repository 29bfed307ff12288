package safehaven

import (
	"fmt"
	"math"
)

// This file implements Bernoulli's valuation of a risky wager: the
// expected ending wealth is the geometric, not arithmetic, expectation
// over the equally likely payoffs. A wager is worth taking only when
// that value exceeds the wealth you had before betting.

// ExpectedValue returns Bernoulli's expected ending wealth for a wager:
// exp of the average log of every potential ending wealth, where ending
// wealth is payoff + (wealth - bet).
func ExpectedValue(payoffs []float64, wealth, bet float64) (float64, error) {
	if len(payoffs) == 0 {
		return 0, fmt.Errorf("no payoffs")
	}
	if bet < 0 || bet > wealth {
		return 0, fmt.Errorf("bet %g must be within [0, %g]", bet, wealth)
	}
	logSum := 0.0
	for _, payoff := range payoffs {
		end := payoff + wealth - bet
		if end <= 0 {
			return 0, fmt.Errorf("ruinous outcome: payoff %g leaves non-positive wealth %g", payoff, end)
		}
		logSum += math.Log(end)
	}
	return math.Exp(logSum / float64(len(payoffs))), nil
}

// PetersburgPayoffs returns the doubling payoffs of the Petersburg
// wager truncated to the given number of rounds: 1, 2, 4, ... 2^(rounds-1).
func PetersburgPayoffs(rounds int) []float64 {
	payoffs := make([]float64, rounds)
	for i := range payoffs {
		payoffs[i] = math.Pow(2, float64(i))
	}
	return payoffs
}

// WagerReport holds the valuation of a wager at a given bet size and the
// optimal bet size found by scanning every whole amount up to wealth.
type WagerReport struct {
	Wealth  Money
	Bet     Money
	Value   Money // expected ending wealth at Bet
	Premium Money // Value - Wealth, negative for a bad wager

	OptimalBet      Money
	OptimalValue    Money
	OptimalFraction Percent // OptimalBet / Wealth
}

// Wager values the wager at the given bet size and scans bet sizes from
// zero to the full wealth for the one maximizing Bernoulli's expected
// value. Bet sizes that can lead to ruin are skipped during the scan.
func Wager(payoffs []float64, wealth, bet Money) (*WagerReport, error) {
	w := wealth.Float()
	if w <= 0 {
		return nil, fmt.Errorf("wealth %s must be positive", wealth)
	}
	value, err := ExpectedValue(payoffs, w, bet.Float())
	if err != nil {
		return nil, err
	}

	bestBet, bestValue := 0.0, math.Inf(-1)
	for size := 0.0; size <= w; size++ {
		v, err := ExpectedValue(payoffs, w, size)
		if err != nil {
			continue
		}
		if v > bestValue {
			bestBet, bestValue = size, v
		}
	}

	cur := wealth.Currency()
	return &WagerReport{
		Wealth:          wealth,
		Bet:             bet,
		Value:           M(value, cur),
		Premium:         M(value, cur).Sub(wealth),
		OptimalBet:      M(bestBet, cur),
		OptimalValue:    M(bestValue, cur),
		OptimalFraction: Percent(bestBet / w),
	}, nil
}

// RecoveryProfit returns the profit needed to get back to even after a
// loss, assuming geometric growth: recovering a -50% loss takes +100%.
// A total loss needs an infinite recovery.
func RecoveryProfit(loss Percent) (Percent, error) {
	if loss < -1 || loss >= 0 {
		return 0, fmt.Errorf("loss %s must be within [-100%%, 0%%)", loss)
	}
	if loss == -1 {
		return Percent(math.Inf(1)), nil
	}
	return 1/(1+loss) - 1, nil
}
