package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMiles(t *testing.T) {
	// Chicago Loop to Evanston, roughly 12 miles.
	d := HaversineMiles(41.8781, -87.6298, 42.0451, -87.6877)
	assert.InDelta(t, 11.7, d, 1.0)

	assert.Zero(t, HaversineMiles(42.0, -88.0, 42.0, -88.0))
}
