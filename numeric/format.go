package numeric

import "strconv"

// FormatFloat renders f using the shortest decimal representation that round-trips
// exactly, trimming the trailing zeros a fixed-precision %f would otherwise print (e.g.
// "1" rather than "1.000000"). Used by String methods across the module so that printed
// coordinates stay readable regardless of magnitude.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
