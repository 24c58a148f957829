// Package parser provides worksheet loading and normalization for trial workbooks.
package parser

// PistonArea is the effective piston area in square meters.
const PistonArea float64 = 0.00079173

// PascalsPerPSI converts pounds per square inch to pascals.
const PascalsPerPSI float64 = 6894.76

// ForceFromPressure converts a pressure reading in psi to newtons.
// The product is evaluated as (area * conversion) * pressure so results stay
// comparable with previously exported force columns.
func ForceFromPressure(psi float64) float64 {
	return PistonArea * PascalsPerPSI * psi
}
