package cmd

import (
	"fmt"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/fetch"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var linksCmd = &cobra.Command{
	Use:   "links URL",
	Short: "List timetable files linked from a registrar page",
	Long:  `Fetch a registrar web page and list every linked .xlsx, .csv or .html file, ready for "hallpass import".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !fetch.IsURL(args[0]) {
			return fmt.Errorf("%q is not an http(s) URL", args[0])
		}

		var links []fetch.Link
		var err error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching %s...", args[0])).
			Action(func() {
				links, err = fetch.NewClient().Links(cmd.Context(), args[0])
			}).
			Run()

		if err != nil {
			return err
		}
		if len(links) == 0 {
			return fmt.Errorf("no timetable files linked from %s", args[0])
		}

		for _, l := range links {
			fmt.Printf("%s\n  %s\n", l.Text, l.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
