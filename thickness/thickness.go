// Package thickness estimates epilayer thickness from double-beam
// interference between the front-surface reflection and the reflection
// returning from the substrate, d = k / (2 * n1 * cos(r) * V).
package thickness

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"thinfilm/entity"
)

type Params struct {
	N1           float64 // epilayer refractive index
	N2           float64 // substrate refractive index
	IncidenceDeg float64 // incidence angle in air, degrees
	Wavenumber   float64 // cm^-1
	Order        int     // interference order m
}

type Result struct {
	CosRefraction  float64
	K              float64 // order-correction term
	Thickness      float64 // cm
	SensN1         float64 // d(thickness)/d(n1), cm per unit index
	SensWavenumber float64 // d(thickness)/d(wavenumber), cm/(cm^-1)
}

// Compute evaluates the thickness and its analytic first-order sensitivities.
// It is pure: identical inputs always give identical results.
func Compute(p Params) (Result, error) {
	if p.N1 <= 0 {
		return Result{}, fmt.Errorf("epilayer index must be positive, got %g", p.N1)
	}
	if p.Wavenumber <= 0 {
		return Result{}, fmt.Errorf("wavenumber must be positive, got %g", p.Wavenumber)
	}

	cosR, err := cosRefraction(p.N1, p.IncidenceDeg)
	if err != nil {
		return Result{}, err
	}
	k := orderCorrection(p.N1, p.N2, p.Order)

	d := k / (2 * p.N1 * cosR * p.Wavenumber)
	return Result{
		CosRefraction:  cosR,
		K:              k,
		Thickness:      d,
		SensN1:         -k / (2 * p.Wavenumber * p.N1 * p.N1 * cosR * cosR * cosR),
		SensWavenumber: -k / (2 * p.N1 * cosR * p.Wavenumber * p.Wavenumber),
	}, nil
}

// cosRefraction applies Snell's law with air index 1:
// sin(r) = sin(i)/n1, cos(r) = sqrt(1 - sin²(r)).
func cosRefraction(n1, incidenceDeg float64) (float64, error) {
	sinR := math.Sin(incidenceDeg*math.Pi/180) / n1
	radicand := 1 - sinR*sinR
	if radicand < 0 {
		return 0, &entity.DomainError{Quantity: "refraction angle sine", Value: sinR}
	}
	return math.Sqrt(radicand), nil
}

// orderCorrection resolves the half-fringe correction. When n2 > n1 both
// reflections pick up a π phase shift and the shifts cancel, k = m. Otherwise
// only the air-to-epilayer reflection shifts, leaving an extra half fringe,
// k = m - 0.5. Equal indices fall into the second branch.
func orderCorrection(n1, n2 float64, m int) float64 {
	if n2 > n1 {
		return float64(m)
	}
	return float64(m) - 0.5
}

// SweepIndex recomputes the thickness over an evenly spaced band of candidate
// epilayer indices around p.N1. The refraction cosine and the order
// correction depend on n1, so both are re-derived per candidate.
func SweepIndex(p Params, halfWidth float64, n int) (xs, ds []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("sweep needs at least 2 points, got %d", n)
	}
	xs = floats.Span(make([]float64, n), p.N1-halfWidth, p.N1+halfWidth)
	ds = make([]float64, n)
	for i, n1 := range xs {
		q := p
		q.N1 = n1
		res, err := Compute(q)
		if err != nil {
			return nil, nil, fmt.Errorf("index sweep at n1=%g: %w", n1, err)
		}
		ds[i] = res.Thickness
	}
	return xs, ds, nil
}

// SweepWavenumber recomputes the thickness over an evenly spaced wavenumber
// band around p.Wavenumber. Cosine and order correction are unaffected by the
// wavenumber, but going through Compute keeps the two sweeps symmetric.
func SweepWavenumber(p Params, halfWidth float64, n int) (xs, ds []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("sweep needs at least 2 points, got %d", n)
	}
	xs = floats.Span(make([]float64, n), p.Wavenumber-halfWidth, p.Wavenumber+halfWidth)
	ds = make([]float64, n)
	for i, nu := range xs {
		q := p
		q.Wavenumber = nu
		res, err := Compute(q)
		if err != nil {
			return nil, nil, fmt.Errorf("wavenumber sweep at V=%g: %w", nu, err)
		}
		ds[i] = res.Thickness
	}
	return xs, ds, nil
}
