package cli

import (
	"github.com/Lakunake/web-subtitle-renderer/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subrender",
	Short: "Subtitle track presentation engine",
	Long: `Subrender turns WebVTT and ASS subtitle tracks into styled, positioned,
animated presentation instructions for overlay on a video surface.

It parses both grammars, resolves per-cue style from style tables and inline
override tags, and computes layout and animation for any viewport size.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("format", "f", "vtt", "Track format (vtt, ass)")
}
