package entity

import (
	"errors"

	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named x/y sequence produced by one of the computation cores.
// It is the only shape the chart and export consumers accept.
type Series struct {
	name string
	x    []float64
	y    []float64
}

func NewSeries(name string, x, y []float64) (*Series, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	if len(x) != len(y) {
		return nil, errors.New("x and y lengths differ")
	}
	return &Series{name: name, x: x, y: y}, nil
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) X() []float64 {
	return s.x
}

func (s *Series) Y() []float64 {
	return s.y
}

func (s *Series) Len() int {
	return len(s.x)
}

// Data converts the y values into the chart point representation.
func (s *Series) Data() []opts.LineData {
	data := make([]opts.LineData, len(s.y))
	for i, v := range s.y {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
