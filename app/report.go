package app

import (
	"fmt"
	"io"
	"math"

	"thinfilm/thickness"
)

// writeThicknessReport prints the estimator outputs as human-readable text.
// Every reported value must be finite before any formatting is attempted.
func writeThicknessReport(w io.Writer, p thickness.Params, res thickness.Result) error {
	for name, v := range map[string]float64{
		"thickness":              res.Thickness,
		"n1 sensitivity":         res.SensN1,
		"wavenumber sensitivity": res.SensWavenumber,
		"order correction":       res.K,
		"refraction cosine":      res.CosRefraction,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not finite: %g", name, v)
		}
	}

	fmt.Fprintln(w, "Epilayer thickness estimation")
	fmt.Fprintf(w, "  thickness d = %.10f cm\n", res.Thickness)
	fmt.Fprintf(w, "  sensitivity dd/dn1 = %.12f cm per unit index\n", res.SensN1)
	fmt.Fprintf(w, "  sensitivity dd/dV  = %.12f cm/(cm^-1)\n", res.SensWavenumber)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Model: d = k / (2 * n1 * cos(r) * V)")
	fmt.Fprintf(w, "  k = %g (n1 = %g, n2 = %g, m = %d)\n", res.K, p.N1, p.N2, p.Order)
	fmt.Fprintf(w, "  cos(r) = %.8f (incidence %g deg)\n", res.CosRefraction, p.IncidenceDeg)
	fmt.Fprintf(w, "  V = %g cm^-1\n", p.Wavenumber)
	return nil
}
