package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedScore(t *testing.T) {
	// Equal ratings give even odds.
	assert.InDelta(t, 0.5, ExpectedScore(1500, 1500), 1e-9)

	// A 400 point edge gives about 10:1 odds.
	assert.InDelta(t, 10.0/11.0, ExpectedScore(1900, 1500), 1e-9)

	// Expectations of the two sides sum to 1.
	sum := ExpectedScore(1612, 1498) + ExpectedScore(1498, 1612)
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestNewRating(t *testing.T) {
	// A win against an even opponent gains half the K factor.
	updated := NewRating(1500, 0.5, 1, DefaultKFactor)
	assert.InDelta(t, 1516, updated, 1e-9)

	// A loss mirrors the gain.
	updated = NewRating(1500, 0.5, 0, DefaultKFactor)
	assert.InDelta(t, 1484, updated, 1e-9)

	// An expected win barely moves the rating.
	updated = NewRating(1900, ExpectedScore(1900, 1500), 1, DefaultKFactor)
	assert.Less(t, updated-1900, 3.0)
}
