package subtitle

import (
	"math"
	"strconv"
	"strings"
)

// ParseASS parses an ASS/SSA document into cues, a Name-keyed style table and
// the script playback resolution. Format headers are section-local and must
// precede the rows they describe; rows that arrive without one are skipped.
// Malformed lines are skipped, never fatal.
func ParseASS(text string) *Track {
	track := &Track{
		Format: FormatASS,
		Styles: make(map[string]Style),
		Info: ScriptInfo{
			PlayResX: DefaultPlayResX,
			PlayResY: DefaultPlayResY,
		},
	}

	section := ""
	var styleColumns []string
	var eventColumns []string

	for _, rawLine := range splitLines(text) {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			section = line
			continue
		}

		switch {
		case section == "[Script Info]":
			parseScriptInfoLine(line, &track.Info)

		case section == "[V4 Styles]" || section == "[V4+ Styles]":
			if cols, ok := formatColumns(line); ok {
				styleColumns = cols
				continue
			}
			if value, ok := sectionRow(line, "Style:"); ok && styleColumns != nil {
				if style, ok := parseStyleRow(value, styleColumns); ok {
					track.Styles[style.Name] = style
				}
			}

		case section == "[Events]":
			if cols, ok := formatColumns(line); ok {
				eventColumns = cols
				continue
			}
			if value, ok := sectionRow(line, "Dialogue:"); ok {
				if cue, ok := parseDialogueRow(value, eventColumns); ok {
					track.Cues = append(track.Cues, cue)
				}
			}
		}
	}

	return track
}

func parseScriptInfoLine(line string, info *ScriptInfo) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case "PlayResX":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			info.PlayResX = v
		}
	case "PlayResY":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			info.PlayResY = v
		}
	}
}

// a "Format:" header defines the column-name order for the rows that follow
func formatColumns(line string) ([]string, bool) {
	value, ok := sectionRow(line, "Format:")
	if !ok {
		return nil, false
	}
	cols := strings.Split(value, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols, true
}

func sectionRow(line, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
}

// Style rows are comma-split naively; commas inside style values are not
// special-cased.
func parseStyleRow(value string, columns []string) (Style, bool) {
	fields := strings.Split(value, ",")
	get := func(name string) string {
		for i, col := range columns {
			if col == name && i < len(fields) {
				return strings.TrimSpace(fields[i])
			}
		}
		return ""
	}

	style := Style{
		Name:          get("Name"),
		Fontname:      get("Fontname"),
		Fontsize:      get("Fontsize"),
		PrimaryColour: get("PrimaryColour"),
		OutlineColour: get("OutlineColour"),
		BackColour:    get("BackColour"),
		Bold:          get("Bold"),
		Italic:        get("Italic"),
		Alignment:     get("Alignment"),
		MarginL:       get("MarginL"),
		MarginR:       get("MarginR"),
		MarginV:       get("MarginV"),
		Outline:       get("Outline"),
		Shadow:        get("Shadow"),
	}
	if style.Name == "" {
		return Style{}, false
	}
	return style, true
}

func parseDialogueRow(value string, columns []string) (Cue, bool) {
	startIdx, endIdx, textIdx, styleIdx := -1, -1, -1, -1
	for i, col := range columns {
		switch col {
		case "Start":
			startIdx = i
		case "End":
			endIdx = i
		case "Text":
			textIdx = i
		case "Style":
			styleIdx = i
		}
	}
	// a Dialogue row is unusable without these columns declared
	if startIdx < 0 || endIdx < 0 || textIdx < 0 {
		return Cue{}, false
	}

	fields := splitDialogueFields(value, len(columns))
	if len(fields) < len(columns) {
		return Cue{}, false
	}

	start := ParseClock(fields[startIdx])
	end := ParseClock(fields[endIdx])
	if math.IsNaN(start) || math.IsNaN(end) ||
		math.IsInf(start, 0) || math.IsInf(end, 0) {
		return Cue{}, false
	}

	rawText := fields[textIdx]
	overrides, cleaned := ParseOverrides(rawText)

	cue := Cue{
		Start:     start,
		End:       end,
		Format:    FormatASS,
		Text:      cleaned,
		RawText:   rawText,
		Overrides: overrides,
	}
	if styleIdx >= 0 {
		cue.StyleName = strings.TrimSpace(fields[styleIdx])
	}
	return cue, true
}

// splitDialogueFields splits a Dialogue row into exactly numFields parts,
// consuming only the first numFields-1 commas. Everything after the last
// separator, embedded commas included, belongs to the free-form Text column.
func splitDialogueFields(content string, numFields int) []string {
	if numFields <= 0 {
		return nil
	}

	parts := make([]string, 0, numFields)
	remaining := content

	for i := 0; i < numFields-1; i++ {
		idx := strings.Index(remaining, ",")
		if idx == -1 {
			parts = append(parts, strings.TrimSpace(remaining))
			remaining = ""
			break
		}
		parts = append(parts, strings.TrimSpace(remaining[:idx]))
		remaining = remaining[idx+1:]
	}

	parts = append(parts, remaining)

	return parts
}
