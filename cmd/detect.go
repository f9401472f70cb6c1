package cmd

import (
	"fmt"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/config"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/tui"

	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect FILE",
	Short: "Show which timetable layout a file matches",
	Long:  `Run every registered layout detector against FILE and report which parser would handle it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyConfigFlags(cmd, cfg)

		grid, err := reader.Read(args[0], reader.Options{FillMerged: cfg.FillMerged})
		if err != nil {
			return err
		}

		engine := parser.Default(logger)
		for _, p := range engine.Parsers() {
			logger.Debug("registered parser", "name", p.Name(), "description", p.Description())
		}

		fmt.Printf("%s: %d rows\n", args[0], len(grid))
		fmt.Println(tui.Detections(engine.Explain(grid, cfg.Params())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
	addParamFlags(detectCmd)
}
