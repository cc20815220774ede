package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lakunake/web-subtitle-renderer/internal/render"
	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

var cuesCmd = &cobra.Command{
	Use:   "cues [track]",
	Short: "Parse a track and list its cues",
	Long: `Parse the given subtitle track and print its cues as a table.

The track may be a local file path or an http(s) URL. The format is never
auto-detected; pass --format ass for ASS/SSA tracks.

Examples:
  subrender cues episode.vtt
  subrender cues opening.ass --format ass
  subrender cues https://example.com/track.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runCues,
}

func init() {
	rootCmd.AddCommand(cuesCmd)
}

func runCues(cmd *cobra.Command, args []string) error {
	identifier := args[0]
	formatStr, _ := cmd.Flags().GetString("format")

	format, err := parseFormat(formatStr)
	if err != nil {
		return err
	}

	track, err := fetchAndParse(cmd.Context(), identifier, format)
	if err != nil {
		return err
	}

	logger.Debugw("track parsed",
		"identifier", identifier,
		"cues", len(track.Cues),
		"styles", len(track.Styles),
	)

	rows := make([][]string, 0, len(track.Cues))
	for i, cue := range track.Cues {
		style := cue.StyleName
		if style == "" && cue.Format == subtitle.FormatASS {
			style = "Default"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.3f", cue.Start),
			fmt.Sprintf("%.3f", cue.End),
			style,
			strings.ReplaceAll(cue.Text, "\n", " / "),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"#", "Start", "End", "Style", "Text"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignLeft},
	))
	return nil
}

func parseFormat(s string) (subtitle.Format, error) {
	switch strings.ToLower(s) {
	case "vtt":
		return subtitle.FormatVTT, nil
	case "ass":
		return subtitle.FormatASS, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use vtt or ass", s)
	}
}

func pickSource(identifier string) render.Source {
	if strings.HasPrefix(identifier, "http://") || strings.HasPrefix(identifier, "https://") {
		return render.NewHTTPSource()
	}
	return render.FileSource{}
}

func fetchAndParse(ctx context.Context, identifier string, format subtitle.Format) (*subtitle.Track, error) {
	text, err := pickSource(identifier).FetchText(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if format == subtitle.FormatASS {
		return subtitle.ParseASS(text), nil
	}
	return &subtitle.Track{
		Format: subtitle.FormatVTT,
		Cues:   subtitle.ParseVTT(text),
		Info: subtitle.ScriptInfo{
			PlayResX: subtitle.DefaultPlayResX,
			PlayResY: subtitle.DefaultPlayResY,
		},
	}, nil
}
