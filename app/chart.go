package app

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"thinfilm/entity"
)

const pageTitle = "Thin-film optical interference"

// surfaceStride thins the angle sweep before building the 3D sheet so the
// rendered page stays responsive.
const surfaceStride = 8

func newLineChart(xName, yName string, x []float64, series ...*entity.Series) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       pageTitle,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "chart",
					Title: "Save as image",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show:       opts.Bool(true),
					YAxisIndex: "default",
					Title: map[string]string{
						"zoom": "area zooming",
						"back": "restore area zooming",
					},
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	line.SetXAxis(x)
	for _, s := range series {
		line.AddSeries(s.Name(), s.Data())
	}
	return line
}

// newAmplitudeScatter plots the per-order (s, p) amplitude pairs, one point
// per transmitted order, tracing the polarization-state convergence.
func newAmplitudeScatter(sAmp, pAmp []float64, orders []int) *charts.Scatter {
	scatter := charts.NewScatter()

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       pageTitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "s-wave amplitude",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "p-wave amplitude",
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	for i, order := range orders {
		scatter.AddSeries(
			fmt.Sprintf("order %d", order),
			[]opts.ScatterData{{Value: []float64{sAmp[i], pAmp[i]}, SymbolSize: 8}},
		)
	}
	return scatter
}

// newIntensitySurface extrudes the intensity curve along a second axis, the
// 3D sheet view of the transmitted distribution.
func newIntensitySurface(angles, intensity []float64) *charts.Surface3D {
	surface := charts.NewSurface3D()

	maxIntensity := 0.0
	for _, v := range intensity {
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v > maxIntensity {
			maxIntensity = v
		}
	}

	surface.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       pageTitle,
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "angle, deg"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "intensity"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "relative intensity"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: 0,
			Max: float32(maxIntensity),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#000000", "#cc3333", "#ffff00", "#ffffff"},
			},
		}),
	)

	const rows = 30
	data := make([]opts.Chart3DData, 0, rows*(len(angles)/surfaceStride+1))
	for j := 0; j < rows; j++ {
		y := maxIntensity * float64(j) / (rows - 1)
		for i := 0; i < len(angles); i += surfaceStride {
			data = append(data, opts.Chart3DData{
				Value: []interface{}{radToDeg(angles[i]), y, intensity[i]},
			})
		}
	}
	surface.AddSeries("intensity", data)
	return surface
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
