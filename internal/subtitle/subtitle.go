package subtitle

// represents supported subtitle formats
type Format string

const (
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// represents a single timed subtitle entry
type Cue struct {
	Start float64 // seconds
	End   float64 // seconds

	Format Format

	// markup-stripped, renderable text
	Text string

	// original payload, ASS only; used for diffing and override extraction
	RawText string

	// ASS only; empty resolves to style "Default"
	StyleName string

	// ASS only; nil means no inline overrides
	Overrides *Overrides
}

// raw identity of a cue, used for active-set fingerprinting.
// VTT cues carry no raw payload, so the cleaned text stands in.
func (c Cue) Identity() string {
	if c.RawText != "" {
		return c.RawText
	}
	return c.Text
}

// a single Style: row, fields kept as the raw strings from the file.
// Missing column = empty string, which the resolver treats as absent.
type Style struct {
	Name          string
	Fontname      string
	Fontsize      string
	PrimaryColour string
	OutlineColour string
	BackColour    string
	Bold          string // "-1" or "1" are truthy
	Italic        string
	Alignment     string // 1-9 numpad code
	MarginL       string
	MarginR       string
	MarginV       string
	Outline       string
	Shadow        string
}

// script-level parameters from [Script Info]
type ScriptInfo struct {
	PlayResX int
	PlayResY int
}

const (
	DefaultPlayResX = 384
	DefaultPlayResY = 288
)

// parsed track: cue list plus the style context needed to present it.
// VTT tracks have an empty style table and default script info.
type Track struct {
	Format Format
	Cues   []Cue
	Styles map[string]Style
	Info   ScriptInfo
}

// x/y scale factors from authoring resolution to a container size
func (s ScriptInfo) ScaleTo(width, height float64) (float64, float64) {
	resX := s.PlayResX
	resY := s.PlayResY
	if resX <= 0 {
		resX = DefaultPlayResX
	}
	if resY <= 0 {
		resY = DefaultPlayResY
	}
	return width / float64(resX), height / float64(resY)
}

// structured inline override set extracted from one cue's tag blocks.
// Every field is independently optional; nil means "inherit", never zero.
type Overrides struct {
	Pos       *Position
	Alignment *int
	Color     *RGBA
	Fade      *Fade
	Move      *Move
	Rotation  *Rotation
	Border    *float64
	Shadow    *float64
	Blur      *float64
	FontSize  *float64
	FontName  *string

	// karaoke timing tags are detected but produce no highlight timeline
	Karaoke bool
}

type Position struct {
	X float64
	Y float64
}

// fade-in/out durations in milliseconds
type Fade struct {
	In  float64
	Out float64
}

// linear translation; T1/T2 are optional millisecond offsets
// relative to the cue start
type Move struct {
	X1, Y1 float64
	X2, Y2 float64
	T1, T2 *float64
}

// rotation in degrees per axis
type Rotation struct {
	X, Y, Z float64
}
