package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"thinfilm/entity/format"
	"thinfilm/entity/mode"
	"thinfilm/entity/parameters"
)

func multibeamParams() *parameters.Parameters {
	return &parameters.Parameters{
		Beams:         15,
		Wavelength:    500,
		FilmIndex:     1.5,
		FilmThickness: 25000,
		Amplitude:     1,
		AzimuthDeg:    25,
		ThetaMaxDeg:   20,
		DeltaTheta:    0.001,
		FixedAngleDeg: 15,
	}
}

func TestApp_Run_ThicknessCSV(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "thickness.csv")
	params := &parameters.Parameters{
		Mode:         mode.Thickness,
		Format:       format.Csv,
		N1:           2.65,
		N2:           2.68,
		IncidenceDeg: 15,
		Wavenumber:   1000,
		Order:        1,
	}

	var report bytes.Buffer
	require.NoError(t, New(output, params, &report).Run(context.Background()))

	assert.True(t, strings.Contains(report.String(), "thickness d ="))
	_, err := os.Stat(filepath.Join(dir, "thickness_index_sweep.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "thickness_wavenumber_sweep.csv"))
	assert.NoError(t, err)
}

func TestApp_Run_MultibeamXLSX(t *testing.T) {
	output := filepath.Join(t.TempDir(), "multibeam.xlsx")
	params := multibeamParams()
	params.Mode = mode.Multibeam
	params.Format = format.Xlsx

	var report bytes.Buffer
	require.NoError(t, New(output, params, &report).Run(context.Background()))

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	assert.ElementsMatch(t, []string{"intensity", "orders"}, f.GetSheetList())
}

func TestApp_Run_MultibeamHTML(t *testing.T) {
	output := filepath.Join(t.TempDir(), "multibeam.html")
	params := multibeamParams()
	params.Mode = mode.Multibeam
	params.Format = format.HTML

	var report bytes.Buffer
	require.NoError(t, New(output, params, &report).Run(context.Background()))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "echarts"))
}

func TestApp_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	params := multibeamParams()
	params.Mode = mode.Multibeam
	err := New(filepath.Join(t.TempDir(), "multibeam.html"), params, &bytes.Buffer{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
