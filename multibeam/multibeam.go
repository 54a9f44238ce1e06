// Package multibeam simulates interference of the first N transmitted beams
// of a plane-parallel dielectric film. Each successive beam makes one more
// round trip inside the film, attenuated by the internal reflectance and
// delayed by the round-trip phase δ = (4π/λ) n h cos(r). The per-order
// complex sum is compared against the closed-form Airy intensity.
package multibeam

import (
	"fmt"
	"math"
	"math/cmplx"

	"thinfilm/entity"
)

type Params struct {
	Beams      int     // number of transmitted orders N
	Wavelength float64 // nm
	Index      float64 // film refractive index
	Thickness  float64 // film thickness, nm
	Amplitude  float64 // incident amplitude
	Azimuth    float64 // incident amplitude azimuth, radians
	ThetaMax   float64 // sweep half-range, radians
	DeltaTheta float64 // sweep step, radians
	FixedAngle float64 // incidence angle for the per-order analysis, radians
}

type Result struct {
	Angles            []float64 // radians, one per sweep point
	IntensityByOrders []float64 // per-order complex sum, |ΣAs|² + |ΣAp|²
	IntensityAiry     []float64 // closed-form Airy comparison
	SAmplitudes       []float64 // per-order s amplitude at FixedAngle
	PAmplitudes       []float64 // per-order p amplitude at FixedAngle
	Orders            []int     // 1..N
}

// Compute runs the angle sweep and the fixed-angle per-order decomposition.
// Pure: no state survives the call and identical inputs give identical
// outputs.
func Compute(p Params) (Result, error) {
	if err := validate(p); err != nil {
		return Result{}, err
	}

	angles := sweep(p.ThetaMax, p.DeltaTheta)

	asi := p.Amplitude * math.Sin(p.Azimuth)
	api := p.Amplitude * math.Cos(p.Azimuth)

	byOrders := make([]float64, len(angles))
	airy := make([]float64, len(angles))
	for idx, i1 := range angles {
		r1 := math.Asin(math.Sin(i1) / p.Index)
		delta := 4 * math.Pi / p.Wavelength * p.Index * p.Thickness * math.Cos(r1)

		byOrders[idx] = sumOrders(i1, r1, delta, asi, api, p.Beams)
		airy[idx] = airyIntensity(i1, r1, delta, p.Amplitude, p.Azimuth)
	}

	sAmp, pAmp, orders := orderAmplitudes(p, asi, api)

	return Result{
		Angles:            angles,
		IntensityByOrders: byOrders,
		IntensityAiry:     airy,
		SAmplitudes:       sAmp,
		PAmplitudes:       pAmp,
		Orders:            orders,
	}, nil
}

func validate(p Params) error {
	if p.Beams < 1 {
		return fmt.Errorf("beam count must be at least 1, got %d", p.Beams)
	}
	if p.Wavelength <= 0 {
		return fmt.Errorf("wavelength must be positive, got %g", p.Wavelength)
	}
	if p.ThetaMax <= 0 || p.DeltaTheta <= 0 {
		return fmt.Errorf("sweep range and step must be positive, got %g, %g", p.ThetaMax, p.DeltaTheta)
	}
	// Snell precondition over the whole sweep and at the fixed angle.
	if s := math.Sin(p.ThetaMax) / p.Index; s > 1 {
		return &entity.DomainError{Quantity: "refraction angle sine", Value: s}
	}
	if s := math.Abs(math.Sin(p.FixedAngle)) / p.Index; s > 1 {
		return &entity.DomainError{Quantity: "refraction angle sine", Value: s}
	}
	return nil
}

// sweep builds the inclusive angle grid from -max stepping by step. The point
// count follows the arange convention with stop = max+step: the final angle
// is kept even when the last step undershoots max, and may overshoot it by
// less than one step.
func sweep(max, step float64) []float64 {
	n := int(math.Ceil((2*max + step) / step))
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = -max + float64(i)*step
	}
	return angles
}

// sumOrders accumulates the N per-order complex amplitudes for each
// polarization and returns the total intensity |ΣAs|² + |ΣAp|². Order q
// carries the direct amplitude times (reflectance²)^q times e^{iqδ}, where
// the reflection coefficient is the internal one (film side, r1 -> i1).
func sumOrders(i1, r1, delta, asi, api float64, n int) float64 {
	as := asi * TransmitS(i1, r1) * TransmitS(r1, i1)
	ap := api * TransmitP(i1, r1) * TransmitP(r1, i1)

	rs := ReflectS(r1, i1)
	rp := ReflectP(r1, i1)
	phase := cmplx.Exp(complex(0, delta))
	stepS := complex(rs*rs, 0) * phase
	stepP := complex(rp*rp, 0) * phase

	termS := complex(as, 0)
	termP := complex(ap, 0)
	var sumS, sumP complex128
	for q := 0; q < n; q++ {
		sumS += termS
		sumP += termP
		termS *= stepS
		termP *= stepP
	}

	absS := cmplx.Abs(sumS)
	absP := cmplx.Abs(sumP)
	return absS*absS + absP*absP
}

// airyIntensity is the textbook formula that does not separate the two
// polarizations: reflectances enter through the single weighted quantity
// P = (rs sin a)² + (rp cos a)².
func airyIntensity(i1, r1, delta, amplitude, azimuth float64) float64 {
	rs := ReflectS(i1, r1)
	rp := ReflectP(i1, r1)
	sa := rs * math.Sin(azimuth)
	ca := rp * math.Cos(azimuth)
	p := sa*sa + ca*ca

	oneMinus := (1 - p) * (1 - p)
	half := math.Sin(delta / 2)
	return oneMinus / (oneMinus + 4*p*half*half) * amplitude * amplitude
}

// orderAmplitudes evaluates the geometric per-order decay at the fixed
// incidence angle: order q keeps a factor (reflectance²)^(q-1) of the direct
// amplitude for each polarization.
func orderAmplitudes(p Params, asi, api float64) (s, pp []float64, orders []int) {
	r := math.Asin(math.Sin(p.FixedAngle) / p.Index)
	asDir := asi * TransmitS(p.FixedAngle, r) * TransmitS(r, p.FixedAngle)
	apDir := api * TransmitP(p.FixedAngle, r) * TransmitP(r, p.FixedAngle)

	rs2 := ReflectS(p.FixedAngle, r)
	rs2 *= rs2
	rp2 := ReflectP(p.FixedAngle, r)
	rp2 *= rp2

	s = make([]float64, p.Beams)
	pp = make([]float64, p.Beams)
	orders = make([]int, p.Beams)
	sCur, pCur := asDir, apDir
	for q := 0; q < p.Beams; q++ {
		s[q] = sCur
		pp[q] = pCur
		orders[q] = q + 1
		sCur *= rs2
		pCur *= rp2
	}
	return s, pp, orders
}
