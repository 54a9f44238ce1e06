package parameters

import (
	"thinfilm/entity/format"
	"thinfilm/entity/mode"
)

// Parameters carries everything the selected run mode needs. Angles are in
// degrees as typed on the command line except DeltaTheta, which is the sweep
// step in radians.
type Parameters struct {
	Mode   mode.Mode
	Format format.Format

	// Epilayer thickness estimation.
	N1           float64 // epilayer refractive index
	N2           float64 // substrate refractive index
	IncidenceDeg float64
	Wavenumber   float64 // cm^-1
	Order        int

	// Multi-beam interference simulation.
	Beams         int
	Wavelength    float64 // nm
	FilmIndex     float64
	FilmThickness float64 // nm
	Amplitude     float64
	AzimuthDeg    float64
	ThetaMaxDeg   float64
	DeltaTheta    float64 // radians
	FixedAngleDeg float64
}
