package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries(t *testing.T) {
	s, err := NewSeries("intensity", []float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, "intensity", s.Name())
	assert.Equal(t, 3, s.Len())

	data := s.Data()
	require.Len(t, data, 3)
	assert.Equal(t, 5.0, data[1].Value)
}

func TestNewSeries_Invalid(t *testing.T) {
	_, err := NewSeries("", []float64{1}, []float64{1})
	assert.Error(t, err)

	_, err = NewSeries("intensity", []float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestDomainError_Message(t *testing.T) {
	err := &DomainError{Quantity: "refraction angle sine", Value: 1.73}
	assert.Equal(t, "non-physical refraction angle sine: 1.73", err.Error())
}
