package app

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thinfilm/thickness"
)

func TestWriteThicknessReport(t *testing.T) {
	p := thickness.Params{N1: 2.65, N2: 2.68, IncidenceDeg: 15, Wavenumber: 1000, Order: 1}
	res, err := thickness.Compute(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeThicknessReport(&buf, p, res))

	out := buf.String()
	assert.True(t, strings.Contains(out, "thickness d ="))
	assert.True(t, strings.Contains(out, "dd/dn1"))
	assert.True(t, strings.Contains(out, "d = k / (2 * n1 * cos(r) * V)"))
}

func TestWriteThicknessReport_NonFinite(t *testing.T) {
	p := thickness.Params{N1: 2.65, N2: 2.68, IncidenceDeg: 15, Wavenumber: 1000, Order: 1}
	res := thickness.Result{
		CosRefraction:  0.99,
		K:              1,
		Thickness:      math.NaN(),
		SensN1:         -1,
		SensWavenumber: -1,
	}

	var buf bytes.Buffer
	err := writeThicknessReport(&buf, p, res)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
