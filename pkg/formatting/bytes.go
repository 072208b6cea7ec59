// Package formatting provides human-readable formatting and wire-decoding
// utilities shared across the client: byte sizes, elapsed seconds, and
// order-preserving JSON object decoding.
package formatting

import (
	"math"
	"strconv"
)

var units = []string{
	"B", "KB", "MB",
	"GB", "TB", "PB",
	"EB", "ZB", "YB",
}

// FormatBytes converts a byte count to a human-readable string using base-1024 units.
// Zero renders as "0 B". Negative precision values are clamped to zero.
func FormatBytes(n int64, precision int) string {
	if n == 0 {
		return "0 B"
	}

	if precision < 0 {
		precision = 0
	}

	f := float64(n)
	k := 1024.0
	i := int(math.Floor(math.Log(f) / math.Log(k)))

	// Negative counts have no logarithm; keep them in plain bytes.
	if i < 0 {
		i = 0
	}

	if i >= len(units) {
		i = len(units) - 1
	}

	size := f / math.Pow(k, float64(i))
	formatted := strconv.FormatFloat(size, 'f', precision, 64)

	return formatted + " " + units[i]
}

// FormatSeconds renders an elapsed time in seconds to two decimal places
// with a seconds unit, e.g. "1.84s".
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 2, 64) + "s"
}
