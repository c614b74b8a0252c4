package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_BeijingToTianjin(t *testing.T) {
	// Roughly 110 km apart.
	d := Distance(116.4074, 39.9042, 117.2010, 39.0842)

	assert.InDelta(t, 113000, d, 5000)
}

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Zero(t, Distance(116.4074, 39.9042, 116.4074, 39.9042))
}

func TestDistance_Symmetric(t *testing.T) {
	forward := Distance(116.4074, 39.9042, 121.4737, 31.2304)
	backward := Distance(121.4737, 31.2304, 116.4074, 39.9042)

	assert.InDelta(t, forward, backward, 0.001)
}
