package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceConversion(t *testing.T) {
	assert.Equal(t, 2800.0, ToPKR(10.0))
	assert.Equal(t, 0.0, ToPKR(0))

	assert.InDelta(t, 10.0, FromPKR(2800.0), 1e-9)

	// Round trip through storage keeps the displayed amount stable
	assert.InDelta(t, 1499.0, ToPKR(FromPKR(1499.0)), 0.01)
}
