package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"thinfilm/app"
	"thinfilm/entity/format"
	"thinfilm/entity/mode"
	"thinfilm/entity/parameters"
)

func main() {
	modeFlag := flag.String("mode", "thickness", "run mode: thickness|multibeam")
	formatFlag := flag.String("format", "html", "output format: html|csv|xlsx")
	output := flag.String("output", "", "output path (defaults to <mode>.<format>)")
	verbose := flag.Bool("v", false, "debug logging")

	// Epilayer thickness estimation. Defaults are the SiC infrared case.
	n1 := flag.Float64("n1", 2.65, "epilayer refractive index")
	n2 := flag.Float64("n2", 2.68, "substrate refractive index")
	incidence := flag.Float64("incidence", 15, "incidence angle, deg")
	wavenumber := flag.Float64("wavenumber", 1000, "infrared wavenumber, cm^-1")
	order := flag.Int("order", 1, "interference order m")

	// Multi-beam interference simulation.
	beams := flag.Int("beams", 15, "number of transmitted orders")
	wavelength := flag.Float64("wavelength", 500, "wavelength, nm")
	filmIndex := flag.Float64("film-index", 10, "film refractive index")
	filmThickness := flag.Float64("film-thickness", 25000, "film thickness, nm")
	amplitude := flag.Float64("amplitude", 1, "incident amplitude")
	azimuth := flag.Float64("azimuth", 25, "incident amplitude azimuth, deg")
	thetaMax := flag.Float64("theta-max", 60, "sweep half-range, deg")
	deltaTheta := flag.Float64("delta-theta", 0.001, "sweep step, rad")
	fixedAngle := flag.Float64("fixed-angle", 15, "incidence angle for the per-order analysis, deg")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}
	if *verbose || os.Getenv("THINFILM_LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	runMode, err := mode.UnmarshalText(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}
	outFormat, err := format.UnmarshalText(*formatFlag)
	if err != nil {
		log.Fatal(err)
	}

	path := *output
	if path == "" {
		path = os.Getenv("THINFILM_OUTPUT")
	}
	if path == "" {
		path = fmt.Sprintf("%s%s", runMode, outFormat.Ext())
	}

	params := &parameters.Parameters{
		Mode:   runMode,
		Format: outFormat,

		N1:           *n1,
		N2:           *n2,
		IncidenceDeg: *incidence,
		Wavenumber:   *wavenumber,
		Order:        *order,

		Beams:         *beams,
		Wavelength:    *wavelength,
		FilmIndex:     *filmIndex,
		FilmThickness: *filmThickness,
		Amplitude:     *amplitude,
		AzimuthDeg:    *azimuth,
		ThetaMaxDeg:   *thetaMax,
		DeltaTheta:    *deltaTheta,
		FixedAngleDeg: *fixedAngle,
	}

	if err := app.New(path, params, os.Stdout).Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
