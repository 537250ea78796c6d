package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	cases := []struct {
		avg      float64
		expected float64
	}{
		{0, 0},
		{3, 3.0},
		{4.25, 4.3},
		{4.24, 4.2},
		{4.66666666, 4.7},
		{2.5, 2.5},
		{4.95, 5.0},
		{1.0, 1.0},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, RoundRating(c.avg))
	}
}

func TestRoundRating_meanOfTwoReviews(t *testing.T) {
	// A rating of 4 and a rating of 2 average to exactly 3.0.
	assert.Equal(t, 3.0, RoundRating((4.0+2.0)/2.0))
}
