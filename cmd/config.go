package cmd

import (
	"fmt"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/config"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hallpass configuration",
	Long:  "View or edit your local configuration settings (institution, semester, calendar anchoring).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		for _, name := range []string{"institution", "semester", "year", "fill-merged", "semester-start", "weeks", "timezone"} {
			changed = changed || cmd.Flags().Changed(name)
		}
		if !changed {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		applyConfigFlags(cmd, cfg)
		flags := cmd.Flags()
		if flags.Changed("semester-start") {
			cfg.SemesterStart, _ = flags.GetString("semester-start")
		}
		if flags.Changed("weeks") {
			cfg.Weeks, _ = flags.GetInt("weeks")
		}
		if flags.Changed("timezone") {
			cfg.Timezone, _ = flags.GetString("timezone")
			if _, err := cfg.Location(); err != nil {
				return err
			}
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved to ~/.hallpass.json")
		fmt.Print(tui.ConfigSummary(cfg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	addParamFlags(configCmd)
	configCmd.Flags().String("semester-start", "", "First day of teaching (YYYY-MM-DD)")
	configCmd.Flags().Int("weeks", 0, "Number of teaching weeks for calendar export")
	configCmd.Flags().String("timezone", "", "IANA timezone for calendar export (default Africa/Nairobi)")
}
