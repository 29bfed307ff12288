package safehaven

import "github.com/shopspring/decimal"

// annual is a helper to declare a test year from its total return parts.
func annual(year int, price, ret, dy float64) AnnualReturn {
	total := Percent(ret) + Percent(dy)
	return AnnualReturn{
		Year:          year,
		Price:         decimal.NewFromFloat(price),
		Return:        Percent(ret),
		DividendYield: Percent(dy),
		TotalReturn:   total,
		Range:         Classify(total),
	}
}

// testSeries covers every return range at least once.
func testSeries() *Series {
	s, err := NewSeries(
		annual(1928, 24.35, 0.38, 0.045),   // boom
		annual(1929, 21.45, -0.12, 0.035),  // loss
		annual(1930, 15.34, -0.28, 0.045),  // deep loss
		annual(1931, 8.12, -0.47, 0.061),   // deep loss
		annual(1932, 6.89, -0.15, 0.07),    // loss
		annual(1933, 10.10, 0.46, 0.04),    // boom
		annual(1934, 9.84, -0.03, 0.037),   // modest gain
		annual(1935, 13.43, 0.36, 0.043),   // boom
		annual(1936, 17.18, 0.27, 0.042),   // boom
		annual(1937, 10.55, -0.38, 0.043),  // deep loss
		annual(1938, 13.07, 0.23, 0.041),   // strong gain
		annual(1939, 12.49, -0.04, 0.042),  // modest gain
	)
	if err != nil {
		panic(err.Error())
	}
	return s
}
