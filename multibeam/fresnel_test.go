package multibeam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stokes relations: crossing the interface both ways transmits 1 - r² of the
// amplitude product for either polarization.
func TestFresnel_StokesRelations(t *testing.T) {
	cases := []struct {
		name string
		n    float64
		inc  float64
	}{
		{"glass shallow", 1.5, 10 * math.Pi / 180},
		{"glass steep", 1.5, 70 * math.Pi / 180},
		{"dense film", 10, 40 * math.Pi / 180},
		{"sic", 2.65, 15 * math.Pi / 180},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := math.Asin(math.Sin(tc.inc) / tc.n)

			rs := ReflectS(tc.inc, r)
			assert.InEpsilon(t, 1-rs*rs, TransmitS(tc.inc, r)*TransmitS(r, tc.inc), 1e-12)

			rp := ReflectP(tc.inc, r)
			assert.InEpsilon(t, 1-rp*rp, TransmitP(tc.inc, r)*TransmitP(r, tc.inc), 1e-12)
		})
	}
}

// Reversing the direction of travel flips the sign of the s reflection and
// leaves its magnitude unchanged.
func TestFresnel_ReflectionReversal(t *testing.T) {
	inc := 35 * math.Pi / 180
	r := math.Asin(math.Sin(inc) / 1.5)

	assert.InDelta(t, -ReflectS(inc, r), ReflectS(r, inc), 1e-14)
	assert.InDelta(t, -ReflectP(inc, r), ReflectP(r, inc), 1e-14)
}

// At Brewster incidence, i + r = π/2 and the p reflection vanishes.
func TestFresnel_BrewsterAngle(t *testing.T) {
	const n = 1.5
	brewster := math.Atan(n)
	r := math.Asin(math.Sin(brewster) / n)

	require.InDelta(t, math.Pi/2, brewster+r, 1e-12)
	assert.InDelta(t, 0, ReflectP(brewster, r), 1e-12)
}
