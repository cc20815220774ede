package subtitle

import (
	"strings"
)

// drawing-command artifacts some authoring pipelines leave in payloads,
// e.g. "m 937.5 529 b ..."
func isDrawingLine(line string) bool {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "m") {
		return false
	}
	rest := strings.TrimLeft(t[1:], " ")
	if rest == "" {
		return false
	}
	c := rest[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// ParseVTT runs a single forward pass over a WebVTT document and returns its
// cues. Timing values are not validated; malformed blocks are skipped at line
// granularity and never abort the parse.
func ParseVTT(text string) []Cue {
	lines := splitLines(text)

	var cues []Cue
	i := 0

	// optional header line
	if i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "WEBVTT") {
		i++
	}

	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if line == "" {
			i++
			continue
		}
		if strings.HasPrefix(line, "NOTE") || strings.HasPrefix(line, "STYLE") {
			// skip the whole block
			for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
				i++
			}
			continue
		}
		if !strings.Contains(line, "-->") {
			// optional cue identifier
			i++
			continue
		}

		start, end := parseTimingLine(line)
		i++

		var payload []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			payloadLine := lines[i]
			i++
			if isDrawingLine(payloadLine) {
				continue
			}
			payload = append(payload, payloadLine)
		}

		// an all-drawing or empty payload drops the whole cue
		if len(payload) == 0 {
			continue
		}

		cue := Cue{
			Start:  start,
			End:    end,
			Format: FormatVTT,
			Text:   stripVoiceTags(strings.Join(payload, "\n")),
		}

		// dedup against the immediately preceding accepted cue only
		if n := len(cues); n > 0 {
			prev := cues[n-1]
			if prev.Start == cue.Start && prev.End == cue.End && prev.Text == cue.Text {
				continue
			}
		}
		cues = append(cues, cue)
	}

	return cues
}

func parseTimingLine(line string) (float64, float64) {
	parts := strings.SplitN(line, "-->", 2)
	start := ParseClock(parts[0])

	rest := strings.TrimSpace(parts[1])
	// cue settings after the end timestamp are ignored
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		rest = rest[:idx]
	}
	end := ParseClock(rest)

	return start, end
}

// removes <v NAME> ... </v> voice spans, keeping the spoken text
func stripVoiceTags(s string) string {
	for {
		open := strings.Index(s, "<v")
		if open < 0 {
			return s
		}
		close := strings.Index(s[open:], ">")
		if close < 0 {
			return s
		}
		s = s[:open] + s[open+close+1:]
		s = strings.Replace(s, "</v>", "", 1)
	}
}

func splitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
