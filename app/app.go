package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"

	"thinfilm/entity"
	"thinfilm/entity/format"
	"thinfilm/entity/mode"
	"thinfilm/entity/parameters"
	"thinfilm/multibeam"
	"thinfilm/thickness"
)

// Sensitivity sweep shape, matching the bands the estimator is plotted over:
// n1 within ±0.1 and wavenumber within ±50 cm^-1 of the base value.
const (
	sweepPoints          = 50
	indexSweepHalfWidth  = 0.1
	wavenumberSweepWidth = 50.0
)

type App struct {
	Output string
	Params *parameters.Parameters
	Report io.Writer
}

func New(output string, params *parameters.Parameters, report io.Writer) *App {
	return &App{
		Output: output,
		Params: params,
		Report: report,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"mode":   a.Params.Mode,
		"output": a.Output,
	}).Debug("App started")

	if err := ctx.Err(); err != nil {
		return err
	}

	switch a.Params.Mode {
	case mode.Multibeam:
		return a.runMultibeam()
	default:
		return a.runThickness()
	}
}

func (a *App) runThickness() error {
	p := thickness.Params{
		N1:           a.Params.N1,
		N2:           a.Params.N2,
		IncidenceDeg: a.Params.IncidenceDeg,
		Wavenumber:   a.Params.Wavenumber,
		Order:        a.Params.Order,
	}

	res, err := thickness.Compute(p)
	if err != nil {
		return fmt.Errorf("failed to estimate thickness: %w", err)
	}
	log.WithFields(log.Fields{
		"thickness": res.Thickness,
		"k":         res.K,
		"cos":       res.CosRefraction,
	}).Info("Thickness estimated")

	if err := writeThicknessReport(a.Report, p, res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	n1x, n1d, err := thickness.SweepIndex(p, indexSweepHalfWidth, sweepPoints)
	if err != nil {
		return fmt.Errorf("failed to sweep epilayer index: %w", err)
	}
	nux, nud, err := thickness.SweepWavenumber(p, wavenumberSweepWidth, sweepPoints)
	if err != nil {
		return fmt.Errorf("failed to sweep wavenumber: %w", err)
	}

	if a.Params.Format != format.HTML {
		return a.export([]table{
			{
				name:    "index_sweep",
				headers: []string{"n1", "thickness_cm"},
				columns: [][]float64{n1x, n1d},
			},
			{
				name:    "wavenumber_sweep",
				headers: []string{"wavenumber_cm-1", "thickness_cm"},
				columns: [][]float64{nux, nud},
			},
		})
	}

	indexSeries, err := entity.NewSeries("thickness vs n1", n1x, n1d)
	if err != nil {
		return fmt.Errorf("failed to build series: %w", err)
	}
	wavenumberSeries, err := entity.NewSeries("thickness vs wavenumber", nux, nud)
	if err != nil {
		return fmt.Errorf("failed to build series: %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		newLineChart("epilayer refractive index n1", "thickness d, cm", n1x, indexSeries),
		newLineChart("wavenumber V, cm^-1", "thickness d, cm", nux, wavenumberSeries),
	)
	return a.renderPage(page)
}

func (a *App) runMultibeam() error {
	p := multibeam.Params{
		Beams:      a.Params.Beams,
		Wavelength: a.Params.Wavelength,
		Index:      a.Params.FilmIndex,
		Thickness:  a.Params.FilmThickness,
		Amplitude:  a.Params.Amplitude,
		Azimuth:    degToRad(a.Params.AzimuthDeg),
		ThetaMax:   degToRad(a.Params.ThetaMaxDeg),
		DeltaTheta: a.Params.DeltaTheta,
		FixedAngle: degToRad(a.Params.FixedAngleDeg),
	}

	computeTime := time.Now()
	res, err := multibeam.Compute(p)
	if err != nil {
		return fmt.Errorf("failed to simulate interference: %w", err)
	}
	log.WithFields(log.Fields{
		"time":   time.Since(computeTime),
		"angles": len(res.Angles),
		"orders": p.Beams,
	}).Info("Interference computed")
	logAgreement(res)

	angleDeg := make([]float64, len(res.Angles))
	for i, v := range res.Angles {
		angleDeg[i] = radToDeg(v)
	}

	if a.Params.Format != format.HTML {
		orderCol := make([]float64, len(res.Orders))
		for i, v := range res.Orders {
			orderCol[i] = float64(v)
		}
		return a.export([]table{
			{
				name:    "intensity",
				headers: []string{"angle_deg", "intensity_by_orders", "intensity_airy"},
				columns: [][]float64{angleDeg, res.IntensityByOrders, res.IntensityAiry},
			},
			{
				name:    "orders",
				headers: []string{"order", "s_amplitude", "p_amplitude"},
				columns: [][]float64{orderCol, res.SAmplitudes, res.PAmplitudes},
			},
		})
	}

	byOrders, err := entity.NewSeries("per-order decomposition", angleDeg, res.IntensityByOrders)
	if err != nil {
		return fmt.Errorf("failed to build series: %w", err)
	}
	airy, err := entity.NewSeries("Airy formula", angleDeg, res.IntensityAiry)
	if err != nil {
		return fmt.Errorf("failed to build series: %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		newLineChart("incidence angle, deg", "intensity", angleDeg, byOrders, airy),
		newAmplitudeScatter(res.SAmplitudes, res.PAmplitudes, res.Orders),
		newIntensitySurface(res.Angles, res.IntensityByOrders),
	)
	return a.renderPage(page)
}

// logAgreement summarizes how far the per-order decomposition sits from the
// Airy closed form over the finite sweep points.
func logAgreement(res multibeam.Result) {
	devs := make([]float64, 0, len(res.Angles))
	for i := range res.Angles {
		d, f := res.IntensityByOrders[i], res.IntensityAiry[i]
		if math.IsNaN(d) || math.IsInf(d, 0) || math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		devs = append(devs, math.Abs(d-f)/math.Abs(f))
	}

	mean, err := stats.Mean(devs)
	if err != nil {
		log.WithError(err).Warn("No finite points to compare")
		return
	}
	max, err := stats.Max(devs)
	if err != nil {
		log.WithError(err).Warn("No finite points to compare")
		return
	}
	log.WithFields(log.Fields{
		"points":       len(devs),
		"mean_rel_dev": mean,
		"max_rel_dev":  max,
	}).Info("Decomposition vs Airy agreement")
}

func (a *App) export(tables []table) error {
	if a.Params.Format == format.Xlsx {
		if err := writeXLSXTables(a.Output, tables); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
	} else {
		if err := writeCSVTables(a.Output, tables); err != nil {
			return fmt.Errorf("failed to export tables: %w", err)
		}
	}
	log.WithField("output", a.Output).Info("Results exported")
	return nil
}

func (a *App) renderPage(page *components.Page) error {
	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	log.WithField("time", time.Since(renderTime)).Info("Charts rendered and saved")
	return nil
}
