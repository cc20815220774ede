package render

import (
	"strconv"
	"strings"

	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

const (
	defaultAlignment    = 2
	defaultFontName     = "Arial"
	defaultFontSize     = 20.0
	defaultOutlineWidth = 2.0
	defaultMargin       = 10.0
)

// ResolvedStyle is the effective visual style of one cue after merging its
// style-table entry with any inline overrides. Values are concrete; all
// absent-vs-zero decisions have been made.
type ResolvedStyle struct {
	FontName string
	FontSize float64
	Bold     bool
	Italic   bool

	Alignment int

	Color        subtitle.RGBA
	OutlineColor subtitle.RGBA
	BackColor    subtitle.RGBA

	OutlineWidth float64
	ShadowDepth  float64
	Blur         float64

	MarginL float64
	MarginR float64
	MarginV float64
}

// Resolve merges the cue's style-table entry with its inline overrides.
// Lookup order is the cue's style name, then "Default", then an empty style;
// each property falls back override -> style -> built-in default.
func Resolve(cue subtitle.Cue, track *subtitle.Track) ResolvedStyle {
	style := lookupStyle(cue, track)
	o := cue.Overrides
	if o == nil {
		o = &subtitle.Overrides{}
	}

	rs := ResolvedStyle{
		FontName:     stringOr(o.FontName, style.Fontname, defaultFontName),
		FontSize:     floatOr(o.FontSize, style.Fontsize, defaultFontSize),
		Bold:         style.Bold == "-1" || style.Bold == "1",
		Italic:       style.Italic == "-1" || style.Italic == "1",
		Alignment:    alignmentOr(o.Alignment, style.Alignment),
		Color:        colorOr(o.Color, style.PrimaryColour, subtitle.White),
		OutlineColor: colorOr(nil, style.OutlineColour, subtitle.Black),
		BackColor:    colorOr(nil, style.BackColour, subtitle.TranslucentBlack),
		OutlineWidth: floatOr(o.Border, style.Outline, defaultOutlineWidth),
		Blur:         floatOr(o.Blur, "", 0),
		MarginL:      floatOr(nil, style.MarginL, defaultMargin),
		MarginR:      floatOr(nil, style.MarginR, defaultMargin),
		MarginV:      floatOr(nil, style.MarginV, defaultMargin),
	}

	// shadow heuristic: a style that sets a back colour casts a shadow
	shadowDefault := 0.0
	if style.BackColour != "" {
		shadowDefault = 1.0
	}
	rs.ShadowDepth = floatOr(o.Shadow, style.Shadow, shadowDefault)

	return rs
}

func lookupStyle(cue subtitle.Cue, track *subtitle.Track) subtitle.Style {
	if track == nil {
		return subtitle.Style{}
	}
	name := cue.StyleName
	if name == "" {
		name = "Default"
	}
	if style, ok := track.Styles[name]; ok {
		return style
	}
	if style, ok := track.Styles["Default"]; ok {
		return style
	}
	return subtitle.Style{}
}

func stringOr(override *string, styleValue, fallback string) string {
	if override != nil {
		return *override
	}
	if styleValue != "" {
		return styleValue
	}
	return fallback
}

func floatOr(override *float64, styleValue string, fallback float64) float64 {
	if override != nil {
		return *override
	}
	if styleValue != "" {
		if v, err := strconv.ParseFloat(styleValue, 64); err == nil {
			return v
		}
	}
	return fallback
}

func alignmentOr(override *int, styleValue string) int {
	if override != nil {
		return *override
	}
	if styleValue != "" {
		if v, err := strconv.Atoi(styleValue); err == nil && v >= 1 && v <= 9 {
			return v
		}
	}
	return defaultAlignment
}

func colorOr(override *subtitle.RGBA, styleValue string, fallback subtitle.RGBA) subtitle.RGBA {
	if override != nil {
		return *override
	}
	if styleValue != "" {
		token := trimColorDelims(styleValue)
		if c, ok := subtitle.DecodeColor(token); ok {
			return c
		}
	}
	return fallback
}

func trimColorDelims(s string) string {
	s = strings.TrimPrefix(s, "&H")
	s = strings.TrimPrefix(s, "&h")
	return strings.Trim(s, "&")
}
