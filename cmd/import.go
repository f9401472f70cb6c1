package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/config"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/exporter"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/fetch"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/ingest"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE|URL",
	Short: "Parse a timetable file and export its sessions",
	Long: `Parse an .xlsx, .csv or .html timetable, from disk or a registrar URL,
and write the normalized sessions.
Semester, year and institution default to the values in ~/.hallpass.json.
Without --output the result is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyConfigFlags(cmd, cfg)

		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		if !cmd.Flags().Changed("format") {
			if guessed, ok := exporter.FormatFromPath(output); ok {
				format = guessed
			}
		}
		noCache, _ := cmd.Flags().GetBool("no-cache")

		im := ingest.New(parser.Default(logger), logger, !noCache)
		opts := reader.Options{FillMerged: cfg.FillMerged}

		var res *timetable.Result
		run := func() {
			if !fetch.IsURL(path) {
				res, err = im.ImportFile(path, cfg.Params(), opts)
				return
			}
			var name string
			var data []byte
			if name, data, err = fetch.NewClient().Download(cmd.Context(), path); err == nil {
				res, err = im.ImportBytes(name, data, cfg.Params(), opts)
			}
		}
		if output != "" {
			_ = spinner.New().
				Title(fmt.Sprintf("Parsing %s...", path)).
				Action(run).
				Run()
		} else {
			run()
		}
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}

		icsOpts, err := exporter.ICSOptionsFor(cfg)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if output != "" {
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer file.Close()
			w = file
		}

		written := len(res.Entries)
		if format == "ics" {
			written = exporter.CountEvents(res.Entries, icsOpts)
			if skipped := len(res.Entries) - written; skipped > 0 {
				logger.Warn("sessions left off the calendar", "skipped", skipped, "placed", written)
				if icsOpts.SemesterStart.IsZero() {
					fmt.Fprintln(os.Stderr, "No semester start configured; weekly sessions were skipped. Set one with `hallpass config --semester-start YYYY-MM-DD`.")
				}
			}
		}

		if err := exporter.Write(format, res, icsOpts, w); err != nil {
			return fmt.Errorf("failed to write %s: %w", format, err)
		}

		if output != "" {
			fmt.Println(tui.Summary(res))
			fmt.Printf("Successfully exported %d of %d sessions to %s\n", written, len(res.Entries), output)
		}
		return nil
	},
}

// applyConfigFlags lets command-line flags override saved settings for
// this run only.
func applyConfigFlags(cmd *cobra.Command, cfg *config.AppConfig) {
	flags := cmd.Flags()
	if flags.Changed("institution") {
		cfg.InstitutionID, _ = flags.GetString("institution")
	}
	if flags.Changed("semester") {
		cfg.Semester, _ = flags.GetInt("semester")
	}
	if flags.Changed("year") {
		cfg.Year, _ = flags.GetInt("year")
	}
	if flags.Changed("fill-merged") {
		cfg.FillMerged, _ = flags.GetBool("fill-merged")
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("institution", "i", "", "Institution ID stamped onto every session")
	cmd.Flags().IntP("semester", "s", 0, "Semester number")
	cmd.Flags().IntP("year", "y", 0, "Academic year")
	cmd.Flags().Bool("fill-merged", false, "Copy merged cell values into every cell they span")
}

func init() {
	rootCmd.AddCommand(importCmd)

	addParamFlags(importCmd)
	importCmd.Flags().StringP("format", "f", "json", "Output format: json, yaml or ics")
	importCmd.Flags().StringP("output", "o", "", "Output file path (default stdout)")
	importCmd.Flags().Bool("no-cache", false, "Always parse, ignoring ~/.hallpass_cache")
}
