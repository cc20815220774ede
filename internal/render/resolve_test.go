package render

import (
	"testing"

	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

func styledTrack() *subtitle.Track {
	return &subtitle.Track{
		Format: subtitle.FormatASS,
		Styles: map[string]subtitle.Style{
			"Default": {
				Name:          "Default",
				Fontname:      "Arial",
				Fontsize:      "24",
				PrimaryColour: "&H00FFFFFF",
				OutlineColour: "&H00000000",
				Bold:          "0",
				Italic:        "0",
				Alignment:     "2",
				MarginL:       "15",
				MarginR:       "15",
				MarginV:       "12",
				Outline:       "2",
			},
			"Sign": {
				Name:          "Sign",
				Fontname:      "Verdana",
				Fontsize:      "32",
				PrimaryColour: "&H000000FF",
				BackColour:    "&H80000000",
				Bold:          "-1",
				Italic:        "1",
				Alignment:     "8",
				Outline:       "3",
			},
		},
		Info: subtitle.ScriptInfo{PlayResX: 384, PlayResY: 288},
	}
}

func TestResolveFromStyleTable(t *testing.T) {
	track := styledTrack()
	cue := subtitle.Cue{StyleName: "Sign", Format: subtitle.FormatASS}

	rs := Resolve(cue, track)

	if rs.FontName != "Verdana" || rs.FontSize != 32 {
		t.Errorf("font = %s/%v, want Verdana/32", rs.FontName, rs.FontSize)
	}
	if !rs.Bold || !rs.Italic {
		t.Errorf("bold/italic = %v/%v, want true/true", rs.Bold, rs.Italic)
	}
	if rs.Alignment != 8 {
		t.Errorf("alignment = %d, want 8", rs.Alignment)
	}
	if rs.Color.R != 255 || rs.Color.G != 0 || rs.Color.B != 0 {
		t.Errorf("primary color = %+v, want red", rs.Color)
	}
	if rs.OutlineWidth != 3 {
		t.Errorf("outline width = %v, want 3", rs.OutlineWidth)
	}
	// style sets a back colour, so the shadow heuristic applies
	if rs.ShadowDepth != 1 {
		t.Errorf("shadow = %v, want 1", rs.ShadowDepth)
	}
}

func TestResolveMissingStyleFallsBackToDefault(t *testing.T) {
	track := styledTrack()
	cue := subtitle.Cue{StyleName: "DoesNotExist", Format: subtitle.FormatASS}

	rs := Resolve(cue, track)
	if rs.FontName != "Arial" {
		t.Errorf("fontName = %q, want Default style's Arial", rs.FontName)
	}
}

func TestResolveEmptyStyleName(t *testing.T) {
	track := styledTrack()
	cue := subtitle.Cue{Format: subtitle.FormatASS}

	rs := Resolve(cue, track)
	if rs.FontName != "Arial" {
		t.Errorf("fontName = %q, want Default style's Arial", rs.FontName)
	}
	if rs.MarginL != 15 || rs.MarginV != 12 {
		t.Errorf("margins = %v/%v, want 15/12", rs.MarginL, rs.MarginV)
	}
}

func TestResolveBuiltinDefaults(t *testing.T) {
	// no style table at all
	track := &subtitle.Track{Format: subtitle.FormatVTT}
	cue := subtitle.Cue{Format: subtitle.FormatVTT}

	rs := Resolve(cue, track)

	if rs.Alignment != 2 {
		t.Errorf("alignment = %d, want 2", rs.Alignment)
	}
	if rs.FontSize != 20 {
		t.Errorf("fontSize = %v, want 20", rs.FontSize)
	}
	if rs.Color != subtitle.White {
		t.Errorf("color = %+v, want white", rs.Color)
	}
	if rs.OutlineColor != subtitle.Black {
		t.Errorf("outline color = %+v, want black", rs.OutlineColor)
	}
	if rs.BackColor != subtitle.TranslucentBlack {
		t.Errorf("back color = %+v, want translucent black", rs.BackColor)
	}
	if rs.OutlineWidth != 2 {
		t.Errorf("outline width = %v, want 2", rs.OutlineWidth)
	}
	if rs.ShadowDepth != 0 {
		t.Errorf("shadow = %v, want 0 without a back colour", rs.ShadowDepth)
	}
	if rs.Blur != 0 {
		t.Errorf("blur = %v, want 0", rs.Blur)
	}
	if rs.MarginL != 10 || rs.MarginR != 10 || rs.MarginV != 10 {
		t.Errorf("margins = %v/%v/%v, want 10s", rs.MarginL, rs.MarginR, rs.MarginV)
	}
	if rs.Bold || rs.Italic {
		t.Error("bold/italic must default to false")
	}
}

func TestResolveOverridesWinOverStyle(t *testing.T) {
	track := styledTrack()
	align := 5
	size := 40.0
	border := 4.0
	shadow := 2.0
	blur := 1.0
	font := "Courier"
	red := subtitle.RGBA{R: 255, A: 1}

	cue := subtitle.Cue{
		StyleName: "Default",
		Format:    subtitle.FormatASS,
		Overrides: &subtitle.Overrides{
			Alignment: &align,
			FontSize:  &size,
			Border:    &border,
			Shadow:    &shadow,
			Blur:      &blur,
			FontName:  &font,
			Color:     &red,
		},
	}

	rs := Resolve(cue, track)
	if rs.Alignment != 5 {
		t.Errorf("alignment = %d, want override 5", rs.Alignment)
	}
	if rs.FontSize != 40 || rs.FontName != "Courier" {
		t.Errorf("font = %s/%v, want Courier/40", rs.FontName, rs.FontSize)
	}
	if rs.OutlineWidth != 4 || rs.ShadowDepth != 2 || rs.Blur != 1 {
		t.Errorf("outline/shadow/blur = %v/%v/%v", rs.OutlineWidth, rs.ShadowDepth, rs.Blur)
	}
	if rs.Color != red {
		t.Errorf("color = %+v, want override red", rs.Color)
	}
}

func TestResolveBoldStringTruthiness(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"-1", true},
		{"1", true},
		{"0", false},
		{"", false},
		{"true", false}, // only the exact ASS encodings count
	}

	for _, tt := range tests {
		track := &subtitle.Track{
			Styles: map[string]subtitle.Style{
				"Default": {Name: "Default", Bold: tt.value},
			},
		}
		rs := Resolve(subtitle.Cue{}, track)
		if rs.Bold != tt.want {
			t.Errorf("Bold=%q resolved to %v, want %v", tt.value, rs.Bold, tt.want)
		}
	}
}
