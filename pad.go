package diffmark

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Pad returns c repeated n times, built by binary doubling so that long
// delete and replace runs cost O(log n) appends.
func Pad[T constraints.Unsigned](c byte, n T) string {
	var sb strings.Builder
	unit := []byte{c}
	for n > 0 {
		if n&1 == 1 {
			sb.Write(unit)
		}
		n >>= 1
		if n > 0 {
			unit = append(unit, unit...)
		}
	}
	return sb.String()
}

// run is Pad for the non-negative int counts used throughout the codec.
func run(c byte, n int) string {
	if n <= 0 {
		return ""
	}
	return Pad(c, uint64(n))
}
