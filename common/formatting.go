package common

import (
	"math"
	"strconv"
	"strings"
)

var numberSuffixes = []struct {
	scale  float64
	suffix string
}{
	{1e18, "E"},
	{1e15, "P"},
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatNumber formats n in short form (e.g. 5000 > 5K), keeping at most d digits
// after the decimal point. The sign is dropped.
func FormatNumber(n float64, d int) string {
	abs := math.Abs(n)

	precision := 1.0
	if d > 0 {
		precision = math.Pow10(d)
	}

	for _, s := range numberSuffixes {
		if abs >= s.scale {
			return formatMinPrecision(abs/s.scale, precision) + s.suffix
		}
	}

	return formatMinPrecision(abs, precision)
}

func formatMinPrecision(n float64, p float64) string {
	rounded := math.Round(n*p) / p
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// RemoveLeadingAndTrailingSlashes turns "/charts/daily/" into "charts/daily".
func RemoveLeadingAndTrailingSlashes(str string) string {
	return strings.Trim(str, "/")
}
