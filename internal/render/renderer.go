package render

import (
	"context"
	"sync"

	"github.com/Lakunake/web-subtitle-renderer/internal/logging"
	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

// Surface is the external presentation collaborator. Each call replaces
// whatever the surface previously displayed.
type Surface interface {
	Replace(instructions []Instruction)
}

// cached per-cue work that survives between ticks while the active set is
// stable; animation is applied on top of it every tick
type activeEntry struct {
	cue   subtitle.Cue
	style ResolvedStyle
}

// Renderer drives the pipeline: it installs tracks, evaluates the active cue
// set each tick and hands the surface a replace-all instruction list. A load
// installs cues, styles and the enabled flag as one swap under a mutex, so a
// concurrent tick never observes a torn track.
type Renderer struct {
	mu sync.Mutex

	source  Source
	surface Surface
	logger  *logging.Logger

	track   *subtitle.Track
	enabled bool

	sched    Scheduler
	active   []activeEntry
	viewport Viewport
	dirty    bool
}

func New(source Source, surface Surface, logger *logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Renderer{
		source:  source,
		surface: surface,
		logger:  logger,
	}
}

// LoadTrack fetches and parses a track, then atomically replaces the current
// one. A fetch failure disables output and clears state instead of surfacing
// to the tick path; the error is still returned for callers that want it.
// Concurrent loads are last-writer-wins.
func (r *Renderer) LoadTrack(ctx context.Context, identifier string, format subtitle.Format) error {
	text, err := r.source.FetchText(ctx, identifier)
	if err != nil {
		r.logger.Errorw("track load failed, output disabled",
			"identifier", identifier,
			"error", err,
		)
		r.install(nil)
		return err
	}

	var track *subtitle.Track
	switch format {
	case subtitle.FormatASS:
		track = subtitle.ParseASS(text)
	default:
		track = &subtitle.Track{
			Format: subtitle.FormatVTT,
			Cues:   subtitle.ParseVTT(text),
			Info: subtitle.ScriptInfo{
				PlayResX: subtitle.DefaultPlayResX,
				PlayResY: subtitle.DefaultPlayResY,
			},
		}
	}

	r.logger.Infow("track loaded",
		"identifier", identifier,
		"format", format,
		"cues", len(track.Cues),
		"styles", len(track.Styles),
	)
	r.install(track)
	return nil
}

func (r *Renderer) install(track *subtitle.Track) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.track = track
	r.enabled = track != nil
	r.active = nil
	r.dirty = true
	r.sched.Reset()
}

// Resize records the surface content box. Idempotent; consecutive calls with
// the same size do not invalidate cached layout.
func (r *Renderer) Resize(width, height float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vp := Viewport{Width: width, Height: height}
	if r.viewport != vp {
		r.viewport = vp
		r.dirty = true
	}
}

// Tick evaluates the pipeline at playback time t and hands the surface the
// resulting instruction list. Style and layout are recomputed only when the
// active set or viewport changed; animated properties are recomputed always.
func (r *Renderer) Tick(t float64) {
	r.surface.Replace(r.Evaluate(t))
}

// Evaluate is Tick without the surface handoff, for callers that consume the
// instruction list directly.
func (r *Renderer) Evaluate(t float64) []Instruction {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled || r.track == nil {
		return nil
	}

	activeCues, changed := r.sched.Evaluate(r.track.Cues, t)
	if changed || r.dirty {
		r.active = r.active[:0]
		for _, cue := range activeCues {
			r.active = append(r.active, activeEntry{
				cue:   cue,
				style: Resolve(cue, r.track),
			})
		}
		r.dirty = false
	}

	instructions := make([]Instruction, 0, len(r.active))
	for _, entry := range r.active {
		instructions = append(instructions, r.present(entry, t))
	}
	return instructions
}

func (r *Renderer) present(entry activeEntry, t float64) Instruction {
	cue := entry.cue
	o := cue.Overrides

	var pos *subtitle.Position
	var rot *subtitle.Rotation
	var fade *subtitle.Fade
	if o != nil {
		rot = o.Rotation
		fade = o.Fade
		if o.Move != nil {
			p := MoveAt(o.Move, cue, t)
			pos = &p
		} else if o.Pos != nil {
			pos = o.Pos
		}
	}

	inst := Layout(r.viewport, r.track.Info, entry.style, cue.Text, pos, rot)
	inst.Opacity = FadeOpacity(fade, cue, t)
	return inst
}
