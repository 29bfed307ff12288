package renderer

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/etnz/safehaven"
	"github.com/shopspring/decimal"
)

func annual(year int, ret, dy float64) safehaven.AnnualReturn {
	total := safehaven.Percent(ret + dy)
	return safehaven.AnnualReturn{
		Year:          year,
		Price:         decimal.NewFromInt(100),
		Return:        safehaven.Percent(ret),
		DividendYield: safehaven.Percent(dy),
		TotalReturn:   total,
		Range:         safehaven.Classify(total),
	}
}

func testSeries(t *testing.T) *safehaven.Series {
	t.Helper()
	s, err := safehaven.NewSeries(
		annual(1928, 0.38, 0.045),
		annual(1929, -0.12, 0.035),
		annual(1930, -0.28, 0.045),
		annual(1931, 0.10, 0.040),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDistributionMarkdown(t *testing.T) {
	got := DistributionMarkdown(testSeries(t))

	for _, want := range []string{
		"Frequency Distribution of SPX Annual Returns, 1928-1931",
		"4 years",
		"< -15%",
		"> 30%",
		"Return Ranges",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DistributionMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestKellyMarkdown(t *testing.T) {
	dice := safehaven.MustBet("dice", []float64{0.5, 1.05, 1.5}, []int{1, 4, 1})
	cash := safehaven.MustBet("cash", []float64{1.0}, []int{1})
	r, err := safehaven.Kelly(dice, cash, 0.4)
	if err != nil {
		t.Fatal(err)
	}

	got := KellyMarkdown(r)
	for _, want := range []string{"Kelly Criterion", "dice", "cash", "blended", "Cost and Net Effect"} {
		if !strings.Contains(got, want) {
			t.Errorf("KellyMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestWalkMarkdown(t *testing.T) {
	bet := safehaven.MustBet("demon's die", []float64{0.5, 1.05, 1.5}, []int{1, 4, 1})
	res, err := safehaven.RandomWalks(rand.New(rand.NewPCG(1, 2)), 100, 50, bet)
	if err != nil {
		t.Fatal(err)
	}

	got := WalkMarkdown(res)
	for _, want := range []string{"Random Walks: demon's die", "Ending Wealth", "5th", "95th", "Geometric Average Return"} {
		if !strings.Contains(got, want) {
			t.Errorf("WalkMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestWagerMarkdown(t *testing.T) {
	r, err := safehaven.Wager(safehaven.PetersburgPayoffs(10), safehaven.M(1000, "USD"), safehaven.M(100, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	got := WagerMarkdown(r)
	for _, want := range []string{"Petersburg Wager", "Optimal Bet", "$"} {
		if !strings.Contains(got, want) {
			t.Errorf("WagerMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestRecoveryMarkdown(t *testing.T) {
	profit, err := safehaven.RecoveryProfit(-0.5)
	if err != nil {
		t.Fatal(err)
	}
	got := RecoveryMarkdown(-0.5, profit)
	if !strings.Contains(got, "100.00%") {
		t.Errorf("RecoveryMarkdown() missing the +100%% recovery in:\n%s", got)
	}
}

func TestComparisonMarkdown(t *testing.T) {
	c, err := safehaven.Compare(testSeries(t), safehaven.Insurance, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	got := ComparisonMarkdown(c)
	for _, want := range []string{"Insurance Payoff Profile", "insurance", "Blended"} {
		if !strings.Contains(got, want) {
			t.Errorf("ComparisonMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
