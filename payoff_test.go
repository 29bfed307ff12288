package safehaven

import "testing"

func TestNewProfile(t *testing.T) {
	if _, err := NewProfile("short", "", []float64{0.1, 0.2}); err == nil {
		t.Error("NewProfile() with 2 payoffs expected an error")
	}
	if _, err := NewProfile("below ruin", "", []float64{-2, 0, 0, 0, 0}); err == nil {
		t.Error("NewProfile() with a payoff below -100% expected an error")
	}

	p, err := NewProfile("custom", "Custom", []float64{0.5, 0.1, 0, -0.1, -0.2})
	if err != nil {
		t.Fatalf("NewProfile() unexpected error: %v", err)
	}
	if got := p.Payoff(DeepLoss); !got.Equal(0.5) {
		t.Errorf("Payoff(DeepLoss) = %v, want 50.00%%", got)
	}
	if got := p.Payoff(Boom); !got.Equal(-0.2) {
		t.Errorf("Payoff(Boom) = %v, want -20.00%%", got)
	}
}

func TestLookupProfile(t *testing.T) {
	for _, name := range []string{"insurance", "store-of-value", "cash"} {
		if _, ok := LookupProfile(name); !ok {
			t.Errorf("LookupProfile(%q) not found", name)
		}
	}
	if _, ok := LookupProfile("crystal-ball"); ok {
		t.Error("LookupProfile() of unknown name expected not found")
	}
}

func TestCompare(t *testing.T) {
	s := testSeries()
	c, err := Compare(s, Insurance, 0.10)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}

	if len(c.Rows) != len(Ranges()) {
		t.Fatalf("Rows length = %d, want %d", len(c.Rows), len(Ranges()))
	}

	// Crash bucket: 90% SPX mean + 10% insurance payoff of +900%.
	crash := c.Rows[0]
	if crash.Range != DeepLoss {
		t.Fatalf("first row Range = %v, want %v", crash.Range, DeepLoss)
	}
	want := Percent(0.9)*crash.SPX.Mean + Percent(0.1)*9.00
	if !crash.Blended.Equal(want) {
		t.Errorf("crash Blended = %v, want %v", crash.Blended, want)
	}
	// The insurance allocation turns the crash bucket positive.
	if crash.Blended <= 0 {
		t.Errorf("crash Blended = %v, want positive with 10%% insurance", crash.Blended)
	}

	if _, err := Compare(s, Insurance, 1.5); err == nil {
		t.Error("Compare() with allocation above 1 expected an error")
	}
}

func TestCompare_emptyBucket(t *testing.T) {
	// A series with a single year leaves four empty buckets, which must
	// still be reported with zero stats.
	s, err := NewSeries(annual(1950, 20, 0.40, 0.04))
	if err != nil {
		t.Fatal(err)
	}
	c, err := Compare(s, CashAnchor, 0.5)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}
	for _, row := range c.Rows {
		if row.Range == Boom {
			if row.Years != 1 {
				t.Errorf("Boom Years = %d, want 1", row.Years)
			}
			continue
		}
		if row.Years != 0 {
			t.Errorf("%v Years = %d, want 0", row.Range, row.Years)
		}
		if !row.Blended.Equal(Percent(0.5) * 0.02) {
			t.Errorf("%v Blended = %v, want half the cash carry", row.Range, row.Blended)
		}
	}
}
