// Package bench runs head-to-head agent benchmarks and reports Elo-style
// relative strength.
package bench

import "math"

// DefaultKFactor is the Elo update step used when a run configures none.
const DefaultKFactor = 32

// InitialRating is the starting rating for an unrated lineup.
const InitialRating = 1500

// ExpectedScore returns the probability that a player rated a beats a player
// rated b under the logistic Elo model.
func ExpectedScore(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/400))
}

// NewRating folds one result into a rating. actual is 1 for a win, 0 for a
// loss, 0.5 for a draw.
func NewRating(rating, expected, actual, k float64) float64 {
	return rating + k*(actual-expected)
}
