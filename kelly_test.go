package safehaven

import (
	"math"
	"testing"
)

func TestArithmeticMean(t *testing.T) {
	testCases := []struct {
		outcomes []float64
		want     Percent
	}{
		{[]float64{0.5, 1.5}, 0},          // +50%/-50% coin averages to zero
		{[]float64{1.05}, 0.05},           // sure +5%
		{[]float64{1.0, 1.0, 1.3}, 0.10},  // one winning face
		{nil, 0},
	}
	for _, tc := range testCases {
		if got := ArithmeticMean(tc.outcomes); !got.Equal(tc.want) {
			t.Errorf("ArithmeticMean(%v) = %v, want %v", tc.outcomes, got, tc.want)
		}
	}
}

func TestGeometricMean(t *testing.T) {
	// The +50%/-50% coin has zero arithmetic average but compounds to
	// sqrt(0.75)-1, about -13.4% per flip. That gap is the whole point.
	got := GeometricMean([]float64{0.5, 1.5})
	want := Percent(math.Sqrt(0.75) - 1)
	if !got.Equal(want) {
		t.Errorf("GeometricMean(coin) = %v, want %v", got, want)
	}

	if got := GeometricMean([]float64{1.05, 1.05}); !got.Equal(0.05) {
		t.Errorf("GeometricMean(sure bet) = %v, want 5.00%%", got)
	}

	// A single total-loss face compounds to -100%.
	if got := GeometricMean([]float64{0, 2, 2}); !got.Equal(-1) {
		t.Errorf("GeometricMean(with ruin) = %v, want -100.00%%", got)
	}
}

func TestBlend(t *testing.T) {
	got, err := Blend([]float64{0.5, 1.5}, []float64{1.0}, 0.5)
	if err != nil {
		t.Fatalf("Blend() unexpected error: %v", err)
	}
	want := []float64{0.75, 1.25}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("Blend() = %v, want %v", got, want)
		}
	}

	if _, err := Blend([]float64{1, 2}, []float64{1, 2, 3}, 0.5); err == nil {
		t.Error("Blend() with mismatched lengths expected an error")
	}
	if _, err := Blend([]float64{1}, []float64{1}, 1.5); err == nil {
		t.Error("Blend() with weight above 1 expected an error")
	}
}

func TestKelly(t *testing.T) {
	// Spitznagel's dice-and-cash example: a die that loses half on one
	// face and wins on the rest, blended 40/60 with flat cash.
	dice := MustBet("dice", []float64{0.5, 1.05, 1.5}, []int{1, 4, 1})
	cash := MustBet("cash", []float64{1.0}, []int{1})

	r, err := Kelly(dice, cash, 0.40)
	if err != nil {
		t.Fatalf("Kelly() unexpected error: %v", err)
	}

	// Blending with cash always drags the arithmetic average down...
	if r.Cost >= 0 {
		t.Errorf("Cost = %v, want negative", r.Cost)
	}
	// ...but lifts the geometric average for this under-betting die.
	if r.Net <= 0 {
		t.Errorf("Net = %v, want positive", r.Net)
	}
	if !r.AnchorStats.Arithmetic.Equal(0) || !r.AnchorStats.Geometric.Equal(0) {
		t.Errorf("cash anchor stats = %+v, want zero returns", r.AnchorStats)
	}

	// Cross-check the blended arithmetic average directly.
	blended, err := Blend(dice.Outcomes(), cash.Outcomes(), 0.40)
	if err != nil {
		t.Fatal(err)
	}
	if got := ArithmeticMean(blended); !got.Equal(r.BlendedStats.Arithmetic) {
		t.Errorf("BlendedStats.Arithmetic = %v, want %v", r.BlendedStats.Arithmetic, got)
	}
}
