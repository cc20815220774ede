package render

import (
	"strconv"
	"strings"

	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

// Scheduler computes the set of cues active at a playback time and detects
// changes between consecutive evaluations, letting the caller skip style and
// layout recomputation while the set is stable. Animation still has to run
// every tick; fade and move are continuous in time even for a stable set.
type Scheduler struct {
	fingerprint string
}

// Evaluate returns the cues whose closed interval [start, end] contains t,
// preserving track order, and whether the set differs from the previous call.
// Both boundary instants count as active; adjacent cues sharing a boundary
// are simultaneously active at it.
func (s *Scheduler) Evaluate(cues []subtitle.Cue, t float64) ([]subtitle.Cue, bool) {
	var active []subtitle.Cue
	var fp strings.Builder

	for _, cue := range cues {
		if cue.Start <= t && t <= cue.End {
			active = append(active, cue)
			fp.WriteString(cue.Identity())
			fp.WriteString(strconv.FormatFloat(cue.Start, 'g', -1, 64))
			fp.WriteByte('\x1f')
		}
	}

	changed := fp.String() != s.fingerprint
	s.fingerprint = fp.String()

	return active, changed
}

// Reset clears the remembered fingerprint so the next Evaluate always
// reports a change. Used when a new track is installed.
func (s *Scheduler) Reset() {
	s.fingerprint = ""
}
