package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/tui"

	"github.com/spf13/cobra"
)

// logger is configured from --verbose before any command runs.
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "hallpass",
	Short: "A CLI and TUI for university timetable spreadsheets",
	Long: `hallpass reads the timetable spreadsheets registrars publish (weekly grids,
class lists and exam schedules), normalizes them into sessions and units,
and exports them as JSON, YAML or an .ics calendar.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		tui.Logger = logger
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log detector decisions and parser fall-through")
}
