package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reTagBlock = regexp.MustCompile(`\{[^}]*\}`)

	rePos   = regexp.MustCompile(`\\pos\(\s*(-?\d*\.?\d+)\s*,\s*(-?\d*\.?\d+)\s*\)`)
	reAlign = regexp.MustCompile(`\\an([1-9])`)
	reColor = regexp.MustCompile(`\\1?c&H?([0-9A-Fa-f]{1,8})&?`)
	reFade  = regexp.MustCompile(`\\fad\(\s*(\d*\.?\d+)\s*,\s*(\d*\.?\d+)\s*\)`)
	reMove  = regexp.MustCompile(`\\move\(\s*(-?\d*\.?\d+)\s*,\s*(-?\d*\.?\d+)\s*,\s*(-?\d*\.?\d+)\s*,\s*(-?\d*\.?\d+)(?:\s*,\s*(\d*\.?\d+)\s*,\s*(\d*\.?\d+))?\s*\)`)
	reRotX  = regexp.MustCompile(`\\frx(-?\d*\.?\d+)`)
	reRotY  = regexp.MustCompile(`\\fry(-?\d*\.?\d+)`)
	reRotZ  = regexp.MustCompile(`\\frz?(-?\d*\.?\d+)`) // bare \fr sets z
	reBord  = regexp.MustCompile(`\\bord(-?\d*\.?\d+)`)
	reShad  = regexp.MustCompile(`\\shad(-?\d*\.?\d+)`)
	reBlur  = regexp.MustCompile(`\\blur(-?\d*\.?\d+)`)
	reFs    = regexp.MustCompile(`\\fs(\d+)`)
	reFn    = regexp.MustCompile(`\\fn([^\\}]+)`)
	reKara  = regexp.MustCompile(`\\k[fo]?\d+`)
)

// ParseOverrides extracts the recognized inline override tags from raw ASS cue
// text and returns them with the cleaned display text. Each tag type is located
// by its own independent search, so a repeated tag of the same type keeps the
// first match of that pattern; this mirrors long-standing renderer behavior and
// must not be changed to last-wins without flagging it.
func ParseOverrides(raw string) (*Overrides, string) {
	o := &Overrides{}
	found := false

	if m := rePos.FindStringSubmatch(raw); m != nil {
		x, _ := strconv.ParseFloat(m[1], 64)
		y, _ := strconv.ParseFloat(m[2], 64)
		o.Pos = &Position{X: x, Y: y}
		found = true
	}
	if m := reAlign.FindStringSubmatch(raw); m != nil {
		a, _ := strconv.Atoi(m[1])
		o.Alignment = &a
		found = true
	}
	if m := reColor.FindStringSubmatch(raw); m != nil {
		if c, ok := DecodeColor(m[1]); ok {
			o.Color = &c
			found = true
		}
	}
	if m := reFade.FindStringSubmatch(raw); m != nil {
		in, _ := strconv.ParseFloat(m[1], 64)
		out, _ := strconv.ParseFloat(m[2], 64)
		o.Fade = &Fade{In: in, Out: out}
		found = true
	}
	if m := reMove.FindStringSubmatch(raw); m != nil {
		mv := &Move{}
		mv.X1, _ = strconv.ParseFloat(m[1], 64)
		mv.Y1, _ = strconv.ParseFloat(m[2], 64)
		mv.X2, _ = strconv.ParseFloat(m[3], 64)
		mv.Y2, _ = strconv.ParseFloat(m[4], 64)
		if m[5] != "" && m[6] != "" {
			t1, _ := strconv.ParseFloat(m[5], 64)
			t2, _ := strconv.ParseFloat(m[6], 64)
			mv.T1 = &t1
			mv.T2 = &t2
		}
		o.Move = mv
		found = true
	}
	if rot, ok := parseRotation(raw); ok {
		o.Rotation = rot
		found = true
	}
	if v, ok := floatTag(reBord, raw); ok {
		o.Border = &v
		found = true
	}
	if v, ok := floatTag(reShad, raw); ok {
		o.Shadow = &v
		found = true
	}
	if v, ok := floatTag(reBlur, raw); ok {
		o.Blur = &v
		found = true
	}
	if m := reFs.FindStringSubmatch(raw); m != nil {
		size, _ := strconv.ParseFloat(m[1], 64)
		o.FontSize = &size
		found = true
	}
	if m := reFn.FindStringSubmatch(raw); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" {
			o.FontName = &name
			found = true
		}
	}
	if reKara.MatchString(raw) {
		// presence only; no highlight timeline is produced
		o.Karaoke = true
		found = true
	}

	text := CleanText(raw)
	if !found {
		return nil, text
	}
	return o, text
}

func parseRotation(raw string) (*Rotation, bool) {
	rot := &Rotation{}
	ok := false
	if m := reRotX.FindStringSubmatch(raw); m != nil {
		rot.X, _ = strconv.ParseFloat(m[1], 64)
		ok = true
	}
	if m := reRotY.FindStringSubmatch(raw); m != nil {
		rot.Y, _ = strconv.ParseFloat(m[1], 64)
		ok = true
	}
	if m := reRotZ.FindStringSubmatch(raw); m != nil {
		rot.Z, _ = strconv.ParseFloat(m[1], 64)
		ok = true
	}
	if !ok {
		return nil, false
	}
	return rot, true
}

func floatTag(re *regexp.Regexp, raw string) (float64, bool) {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CleanText strips {...} override blocks and converts ASS line markers:
// \N becomes a line break, \n a literal space.
func CleanText(raw string) string {
	text := reTagBlock.ReplaceAllString(raw, "")
	text = strings.ReplaceAll(text, `\N`, "\n")
	text = strings.ReplaceAll(text, `\n`, " ")
	return text
}
