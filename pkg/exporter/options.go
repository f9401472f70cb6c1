package exporter

import (
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/config"
)

// ICSOptionsFor builds calendar options from the user's settings.
func ICSOptionsFor(cfg *config.AppConfig) (ICSOptions, error) {
	loc, err := cfg.Location()
	if err != nil {
		return ICSOptions{}, err
	}
	start, err := cfg.Start()
	if err != nil {
		return ICSOptions{}, err
	}
	return ICSOptions{SemesterStart: start, Weeks: cfg.WeekCount(), Location: loc}, nil
}
