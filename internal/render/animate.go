package render

import (
	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

// FadeOpacity computes the opacity of a cue with a \fad(t1,t2) override at
// playback time t. The cue fades in over its first t1 milliseconds, out over
// its last t2 milliseconds, and is fully opaque in between. The result is
// clamped to [0,1].
func FadeOpacity(f *subtitle.Fade, cue subtitle.Cue, t float64) float64 {
	if f == nil {
		return 1
	}

	elapsed := (t - cue.Start) * 1000
	remaining := (cue.End - t) * 1000

	opacity := 1.0
	switch {
	case f.In > 0 && elapsed < f.In:
		opacity = elapsed / f.In
	case f.Out > 0 && remaining < f.Out:
		opacity = remaining / f.Out
	}

	if opacity < 0 {
		return 0
	}
	if opacity > 1 {
		return 1
	}
	return opacity
}

// MoveAt computes the position of a cue with a \move override at playback
// time t, in authoring coordinates. Timing defaults to the full cue span;
// an inverted or empty window jumps straight to the destination.
func MoveAt(m *subtitle.Move, cue subtitle.Cue, t float64) subtitle.Position {
	duration := (cue.End - cue.Start) * 1000

	startTime := 0.0
	if m.T1 != nil {
		startTime = *m.T1
	}
	endTime := duration
	if m.T2 != nil {
		endTime = *m.T2
	}

	elapsed := (t - cue.Start) * 1000

	var progress float64
	switch {
	case endTime <= startTime:
		progress = 1
	case elapsed <= startTime:
		progress = 0
	case elapsed >= endTime:
		progress = 1
	default:
		progress = (elapsed - startTime) / (endTime - startTime)
	}

	return subtitle.Position{
		X: m.X1 + (m.X2-m.X1)*progress,
		Y: m.Y1 + (m.Y2-m.Y1)*progress,
	}
}
