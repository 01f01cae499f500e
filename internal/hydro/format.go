package hydro

import (
	"math"
	"strconv"
)

// FormatSig renders v with the given number of significant digits, switching
// to scientific notation outside [1e-4, 1e7). Non-finite values render as a
// placeholder dash so an invalid result never looks like a number.
func FormatSig(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "—"
	}
	if digits < 1 {
		digits = 1
	}
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs < 1e-4 || abs >= 1e7 {
		return strconv.FormatFloat(v, 'e', digits-1, 64)
	}
	// round to significant digits, then trim trailing zeros via 'g'
	exp := math.Floor(math.Log10(abs))
	scale := math.Pow(10, float64(digits-1)-exp)
	rounded := math.Round(v*scale) / scale
	return strconv.FormatFloat(rounded, 'g', -1, 64)
}
