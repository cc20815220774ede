package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Lakunake/web-subtitle-renderer/internal/config"
	"github.com/Lakunake/web-subtitle-renderer/internal/render"
	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

var renderCmd = &cobra.Command{
	Use:   "render [track]",
	Short: "Evaluate a track at a playback time and print render instructions",
	Long: `Load the given track, evaluate the presentation pipeline at a playback
time and print the resulting render instructions as JSON.

The output is the exact replace-all list a presentation surface would receive:
resolved geometry, colors, fonts, outline/shadow/blur parameters, opacity and
rotation for every active cue.

Options can also come from a YAML config file; explicit flags win.

Examples:
  subrender render episode.vtt --at 12.5
  subrender render opening.ass --format ass --at 4 --width 1920 --height 1080
  subrender render --config preview.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Float64("at", 0, "Playback time to evaluate, in seconds")
	renderCmd.Flags().Float64("width", 1280, "Viewport width in pixels")
	renderCmd.Flags().Float64("height", 720, "Viewport height in pixels")
	renderCmd.Flags().String("config", "", "YAML config file with preview options")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildRenderConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	r := render.New(pickSource(cfg.Track), nil, logger)
	if err := r.LoadTrack(cmd.Context(), cfg.Track, subtitle.Format(cfg.Format)); err != nil {
		return err
	}
	r.Resize(cfg.Width, cfg.Height)

	instructions := r.Evaluate(cfg.At)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(instructions)
}

func buildRenderConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// explicit flags override the file
	if len(args) == 1 {
		cfg.Track = args[0]
	}
	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	} else if cfg.Format == "" {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("at") {
		cfg.At, _ = cmd.Flags().GetFloat64("at")
	}
	if cmd.Flags().Changed("width") {
		cfg.Width, _ = cmd.Flags().GetFloat64("width")
	}
	if cmd.Flags().Changed("height") {
		cfg.Height, _ = cmd.Flags().GetFloat64("height")
	}

	return cfg, nil
}
