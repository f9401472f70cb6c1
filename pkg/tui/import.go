package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/config"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/exporter"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/ingest"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Logger is used by the interactive flows. The CLI replaces it at startup.
var Logger = slog.Default()

func validateInputFile(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	if _, err := reader.FormatOf(s); err != nil {
		return err
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot open %s", s)
	}
	return nil
}

func validateNumber(s string) error {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n < 0 {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

// RunImportTUI walks through importing a timetable file and exporting the
// selected units.
func RunImportTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the hallpass importer!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		path        string
		institution = cfg.InstitutionID
		semester    = itoa(cfg.Semester)
		year        = itoa(cfg.Year)
	)

	fileForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timetable file").
				Description("An .xlsx, .csv or .html export from the registrar.").
				Placeholder("~/Downloads/timetable.xlsx").
				Value(&path).
				Validate(func(s string) error { return validateInputFile(expandHome(s)) }),
			huh.NewInput().Title("Institution ID").Value(&institution),
			huh.NewInput().Title("Semester").Value(&semester).Validate(validateNumber),
			huh.NewInput().Title("Year").Value(&year).Validate(validateNumber),
		),
	).WithTheme(GetTheme())

	if err := fileForm.Run(); err != nil {
		return err
	}
	path = expandHome(path)

	params := timetable.Params{InstitutionID: strings.TrimSpace(institution)}
	params.Semester, _ = strconv.Atoi(semester)
	params.Year, _ = strconv.Atoi(year)

	im := ingest.New(parser.Default(Logger), Logger, true)
	var res *timetable.Result
	var importErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Parsing %s...", path)).
		Action(func() {
			res, importErr = im.ImportFile(path, params, reader.Options{FillMerged: cfg.FillMerged})
		}).
		Run()

	if importErr != nil {
		fmt.Println(errorStyle.Render(importErr.Error()))
		return nil
	}

	fmt.Println(Summary(res))

	var unitOptions []huh.Option[string]
	for _, code := range res.Codes() {
		label := code
		if name := res.Units[code].Name; name != "" && name != code {
			label = code + " " + name
		}
		unitOptions = append(unitOptions, huh.NewOption(label, code).Selected(true))
	}

	var selectedUnits []string
	format := "ics"
	outputFile := "timetable.ics"

	exportForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select units to export").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(unitOptions...).
				Value(&selectedUnits).
				Filterable(true).
				Height(12),
			huh.NewSelect[string]().
				Title("Output format").
				Options(huh.NewOptions(exporter.Formats...)...).
				Value(&format),
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := exportForm.Run(); err != nil {
		return err
	}

	if len(selectedUnits) == 0 {
		fmt.Println(errorStyle.Render("No units selected!"))
		return nil
	}
	if !strings.HasSuffix(outputFile, "."+format) {
		outputFile += "." + format
	}

	icsOpts, err := exporter.ICSOptionsFor(cfg)
	if err != nil {
		return err
	}
	if format == "ics" && icsOpts.SemesterStart.IsZero() {
		fmt.Println(mutedStyle.Render("No semester start configured; only exams will be placed on the calendar. Set one under Settings."))
	}

	filtered := res.Only(selectedUnits)

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.Write(format, filtered, icsOpts, file); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}

	written := len(filtered.Entries)
	if format == "ics" {
		written = exporter.CountEvents(filtered.Entries, icsOpts)
	}
	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d of %d sessions to %s", written, len(filtered.Entries), outputFile)))
	return nil
}

// RunDetectTUI asks for a file and shows how each parser judges it.
func RunDetectTUI() error {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timetable file").
				Value(&path).
				Validate(func(s string) error { return validateInputFile(expandHome(s)) }),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	grid, err := reader.Read(expandHome(path), reader.Options{FillMerged: cfg.FillMerged})
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	fmt.Println(Detections(parser.Default(Logger).Explain(grid, cfg.Params())))
	return nil
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
