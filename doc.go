// Package safehaven implements the analyses behind a safe haven
// investing study: the S&P 500 annual total-return series and its
// frequency distribution, weighted dice bets and their arithmetic and
// geometric averages, Monte Carlo random walks of repeated bets,
// Bernoulli's log-utility valuation of a wager, and the payoff of
// blending the index with a safe haven prototype.
//
// Market data comes from the Nasdaq Data Link API (package nasdaq) and
// is persisted as a semicolon-separated CSV so that a study can be
// re-run offline.
package safehaven
