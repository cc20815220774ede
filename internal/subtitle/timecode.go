package subtitle

import (
	"math"
	"strconv"
	"strings"
)

// ParseClock converts a subtitle clock string to seconds.
//
// Accepts "HH:MM:SS.mmm" and "MM:SS.mmm". Any other part count yields 0.
// Non-numeric parts yield NaN; the ASS path rejects NaN results, the VTT
// path deliberately does not validate.
func ParseClock(s string) float64 {
	parts := strings.Split(strings.TrimSpace(s), ":")

	num := func(p string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}

	switch len(parts) {
	case 3:
		return num(parts[0])*3600 + num(parts[1])*60 + num(parts[2])
	case 2:
		return num(parts[0])*60 + num(parts[1])
	default:
		return 0
	}
}
