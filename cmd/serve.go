package cmd

import (
	"errors"
	"net/http"
	"time"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/config"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/ingest"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the timetable parser over HTTP",
	Long: `Start an HTTP server with POST /timetables/parse, which accepts a multipart
upload (file, semester, year, institution_id) and returns the parsed result as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyConfigFlags(cmd, cfg)

		// Uploads are parsed fresh; the on-disk cache belongs to the local user.
		im := ingest.New(parser.Default(logger), logger, false)
		handler := server.New(im, logger, cfg.Params(), reader.Options{FillMerged: cfg.FillMerged})

		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addParamFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
