package multibeam

import "math"

// Fresnel amplitude coefficients at a dielectric interface, in the
// angle-difference/angle-sum form. i is the incidence angle, r the refraction
// angle, both in radians. The grazing (sin(i+r)=0) and Brewster (tan(i+r)=0
// for p) degeneracies are not guarded; they produce non-finite values.

func ReflectS(i, r float64) float64 {
	return -math.Sin(i-r) / math.Sin(i+r)
}

func ReflectP(i, r float64) float64 {
	return math.Tan(i-r) / math.Tan(i+r)
}

func TransmitS(i, r float64) float64 {
	return 2 * math.Sin(r) * math.Cos(i) / math.Sin(i+r)
}

func TransmitP(i, r float64) float64 {
	return 2 * math.Sin(r) * math.Cos(i) / (math.Sin(i+r) * math.Cos(i-r))
}
