package safehaven

import (
	"math"
	"testing"
)

func TestExpectedValue(t *testing.T) {
	// With a single certain payoff the expectation is exact.
	got, err := ExpectedValue([]float64{150}, 1000, 100)
	if err != nil {
		t.Fatalf("ExpectedValue() unexpected error: %v", err)
	}
	if want := 150.0 + 1000 - 100; math.Abs(got-want) > 1e-9 {
		t.Errorf("ExpectedValue() = %v, want %v", got, want)
	}

	// The geometric expectation sits below the arithmetic one.
	payoffs := []float64{0.0001, 300}
	bev, err := ExpectedValue(payoffs, 1000, 100)
	if err != nil {
		t.Fatal(err)
	}
	arith := (0.0001+1000-100)/2 + (300.0+1000-100)/2
	if bev >= arith {
		t.Errorf("ExpectedValue() = %v, want below arithmetic %v", bev, arith)
	}

	if _, err := ExpectedValue(nil, 1000, 100); err == nil {
		t.Error("ExpectedValue() with no payoffs expected an error")
	}
	if _, err := ExpectedValue([]float64{1}, 1000, 2000); err == nil {
		t.Error("ExpectedValue() with bet above wealth expected an error")
	}
	if _, err := ExpectedValue([]float64{0}, 100, 100); err == nil {
		t.Error("ExpectedValue() with ruinous outcome expected an error")
	}
}

func TestPetersburgPayoffs(t *testing.T) {
	got := PetersburgPayoffs(5)
	want := []float64{1, 2, 4, 8, 16}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PetersburgPayoffs(5) = %v, want %v", got, want)
		}
	}
}

func TestWager(t *testing.T) {
	// The truncated Petersburg wager against a modest wealth: the
	// optimal stake is a small fraction of wealth, never all of it.
	payoffs := PetersburgPayoffs(10)
	r, err := Wager(payoffs, M(1000, "USD"), M(100, "USD"))
	if err != nil {
		t.Fatalf("Wager() unexpected error: %v", err)
	}

	if r.OptimalBet.Float() <= 0 {
		t.Errorf("OptimalBet = %s, want positive: the wager has positive value", r.OptimalBet)
	}
	if r.OptimalBet.Float() >= 1000 {
		t.Errorf("OptimalBet = %s, want below full wealth", r.OptimalBet)
	}
	if r.OptimalValue.LessThan(r.Value) {
		t.Errorf("OptimalValue %s is below Value %s at the queried bet", r.OptimalValue, r.Value)
	}
	if frac := float64(r.OptimalFraction); frac <= 0 || frac >= 1 {
		t.Errorf("OptimalFraction = %v, want within (0, 1)", r.OptimalFraction)
	}

	if _, err := Wager(payoffs, M(0, "USD"), M(0, "USD")); err == nil {
		t.Error("Wager() with zero wealth expected an error")
	}
}

func TestRecoveryProfit(t *testing.T) {
	testCases := []struct {
		loss Percent
		want Percent
	}{
		{-0.50, 1.00},     // -50% takes +100%
		{-0.20, 0.25},     // -20% takes +25%
		{-0.90, 9.00},     // -90% takes +900%
	}
	for _, tc := range testCases {
		got, err := RecoveryProfit(tc.loss)
		if err != nil {
			t.Errorf("RecoveryProfit(%v) unexpected error: %v", tc.loss, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("RecoveryProfit(%v) = %v, want %v", tc.loss, got, tc.want)
		}
	}

	if got, err := RecoveryProfit(-1); err != nil || !math.IsInf(float64(got), 1) {
		t.Errorf("RecoveryProfit(-100%%) = %v, %v, want +Inf", got, err)
	}
	if _, err := RecoveryProfit(0.10); err == nil {
		t.Error("RecoveryProfit() of a gain expected an error")
	}
	if _, err := RecoveryProfit(-1.5); err == nil {
		t.Error("RecoveryProfit() below -100% expected an error")
	}
}
