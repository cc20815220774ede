package subtitle

import (
	"math"
	"strconv"
	"strings"
)

// color with alpha in [0,1]
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A float64
}

var (
	White            = RGBA{255, 255, 255, 1}
	Black            = RGBA{0, 0, 0, 1}
	TranslucentBlack = RGBA{0, 0, 0, 0.5}
)

// DecodeColor decodes an ASS color token with its &H / & delimiters already
// stripped. Digits are BBGGRR, reversed from typical RGB. An 8-digit token
// carries a leading alpha byte where 0x00 is opaque and 0xFF transparent;
// the alpha is inverted and rounded to 2 decimal places.
func DecodeColor(token string) (RGBA, bool) {
	hex := strings.TrimSpace(token)
	for len(hex) < 6 {
		hex = "0" + hex
	}

	alpha := 1.0
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[0:2], 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		alpha = math.Round((1-float64(a)/255)*100) / 100
		hex = hex[2:]
	}

	// tokens longer than 6 without an alpha byte keep their trailing 6 digits
	if len(hex) > 6 {
		hex = hex[len(hex)-6:]
	}

	b, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGBA{}, false
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGBA{}, false
	}
	r, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGBA{}, false
	}

	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: alpha}, true
}
