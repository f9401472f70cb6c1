package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Institution & Semester", "semester"),
						huh.NewOption("Set Calendar (Start, Weeks, Timezone)", "calendar"),
						huh.NewOption("Toggle Merged Cell Filling", "merged"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "semester":
			err = runSetSemesterTUI(cfg)
		case "calendar":
			err = runSetCalendarTUI(cfg)
		case "merged":
			err = runSetFillMergedTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.hallpass.json) ---"))
			fmt.Println(ConfigSummary(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// ConfigSummary lists the settings in a human readable block.
func ConfigSummary(cfg *config.AppConfig) string {
	orUnset := func(s string) string {
		if s == "" {
			return "Not set"
		}
		return s
	}
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = config.DefaultTimezone + " (default)"
	}

	lines := []string{
		"Institution: " + orUnset(cfg.InstitutionID),
		"Semester: " + orUnset(itoa(cfg.Semester)),
		"Year: " + orUnset(itoa(cfg.Year)),
		"Semester Start: " + orUnset(cfg.SemesterStart),
		fmt.Sprintf("Teaching Weeks: %d", cfg.WeekCount()),
		"Timezone: " + timezone,
		fmt.Sprintf("Fill Merged Cells: %t", cfg.FillMerged),
		"Accent Color: " + orUnset(cfg.AccentColor),
	}
	return strings.Join(lines, "\n") + "\n"
}

func runSetSemesterTUI(cfg *config.AppConfig) error {
	institution := cfg.InstitutionID
	semester := itoa(cfg.Semester)
	year := itoa(cfg.Year)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Institution ID").
				Description("Stamped onto every imported session.").
				Value(&institution),
			huh.NewInput().Title("Semester").Value(&semester).Validate(validateNumber),
			huh.NewInput().Title("Year").Value(&year).Validate(validateNumber),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.InstitutionID = strings.TrimSpace(institution)
	cfg.Semester, _ = strconv.Atoi(semester)
	cfg.Year, _ = strconv.Atoi(year)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Semester settings saved.\n"))
	return nil
}

func runSetCalendarTUI(cfg *config.AppConfig) error {
	start := cfg.SemesterStart
	weeks := strconv.Itoa(cfg.WeekCount())
	timezone := cfg.Timezone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First day of teaching").
				Description("YYYY-MM-DD. Weekly sessions start on the first matching weekday.").
				Placeholder("2026-01-05").
				Value(&start).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("use the YYYY-MM-DD format")
					}
					return nil
				}),
			huh.NewInput().Title("Teaching weeks").Value(&weeks).Validate(validateNumber),
			huh.NewInput().
				Title("Timezone").
				Placeholder(config.DefaultTimezone).
				Value(&timezone).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.LoadLocation(s); err != nil {
						return fmt.Errorf("unknown timezone %q", s)
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SemesterStart = strings.TrimSpace(start)
	cfg.Weeks, _ = strconv.Atoi(weeks)
	cfg.Timezone = strings.TrimSpace(timezone)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Calendar settings saved.\n"))
	return nil
}

func runSetFillMergedTUI(cfg *config.AppConfig) error {
	fill := cfg.FillMerged

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Fill merged cells?").
				Description("Copies a merged cell's value into every cell it spans. Helps sheets that merge time slots down several rows.").
				Value(&fill),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.FillMerged = fill
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Merged cell filling is now %t.\n", fill)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for hallpass").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Hallpass Blue", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Savanna Gold", colorBlock("214")), "214"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}

func validateHex(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(str[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}
