package settings

import (
	"fmt"
	"strings"

	"github.com/unitglance/unitglance/pkg/units"
)

// Settings holds the user's preferred display unit per category plus the
// preferred currency code and timezone designator. Zero-value fields
// mean "no preference" and fall back to the built-in defaults; callers
// usually pass a Settings through [Settings.WithDefaults] first.
type Settings struct {
	Length      string `yaml:"length" json:"length"`
	Weight      string `yaml:"weight" json:"weight"`
	Temperature string `yaml:"temperature" json:"temperature"`
	Volume      string `yaml:"volume" json:"volume"`
	Area        string `yaml:"area" json:"area"`
	Speed       string `yaml:"speed" json:"speed"`
	Torque      string `yaml:"torque" json:"torque"`
	Pressure    string `yaml:"pressure" json:"pressure"`
	Timezone    string `yaml:"timezone" json:"timezone"`
	Currency    string `yaml:"currency" json:"currency"`
}

// Defaults returns the built-in preference set: metric units, Celsius,
// UTC and USD.
func Defaults() Settings {
	return Settings{
		Length:      "m",
		Weight:      "kg",
		Temperature: "c",
		Volume:      "l",
		Area:        "m2",
		Speed:       "kmh",
		Torque:      "nm",
		Pressure:    "bar",
		Timezone:    "utc",
		Currency:    "USD",
	}
}

// WithDefaults returns a copy with every empty field filled in from
// [Defaults]. The receiver is not modified.
func (s Settings) WithDefaults() Settings {
	d := Defaults()
	fill := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	return Settings{
		Length:      fill(s.Length, d.Length),
		Weight:      fill(s.Weight, d.Weight),
		Temperature: fill(s.Temperature, d.Temperature),
		Volume:      fill(s.Volume, d.Volume),
		Area:        fill(s.Area, d.Area),
		Speed:       fill(s.Speed, d.Speed),
		Torque:      fill(s.Torque, d.Torque),
		Pressure:    fill(s.Pressure, d.Pressure),
		Timezone:    fill(s.Timezone, d.Timezone),
		Currency:    fill(s.Currency, d.Currency),
	}
}

// UnitFor returns the preferred unit for a measurement category.
// Reports false for categories settings do not cover (dimensions share
// the length preference; currency and timezone have dedicated fields).
func (s Settings) UnitFor(cat units.Category) (string, bool) {
	switch cat {
	case units.Length, units.Dimensions:
		return s.Length, s.Length != ""
	case units.Weight:
		return s.Weight, s.Weight != ""
	case units.Temperature:
		return s.Temperature, s.Temperature != ""
	case units.Volume:
		return s.Volume, s.Volume != ""
	case units.Area:
		return s.Area, s.Area != ""
	case units.Speed:
		return s.Speed, s.Speed != ""
	case units.Torque:
		return s.Torque, s.Torque != ""
	case units.Pressure:
		return s.Pressure, s.Pressure != ""
	}
	return "", false
}

// Validate checks every non-empty unit preference against the table.
// The currency and timezone fields are not validated here; their value
// spaces belong to pkg/currency and the detector's zone table.
func (s Settings) Validate(t *units.Table) error {
	check := func(cat units.Category, v string) error {
		if v == "" {
			return nil
		}
		code := t.Normalize(v)
		got, ok := t.CategoryOf(code)
		if !ok || got != cat {
			return fmt.Errorf("%w: %q is not a %s unit", ErrInvalidUnit, v, cat)
		}
		return nil
	}

	for _, c := range []struct {
		cat units.Category
		val string
	}{
		{units.Length, s.Length},
		{units.Weight, s.Weight},
		{units.Temperature, s.Temperature},
		{units.Volume, s.Volume},
		{units.Area, s.Area},
		{units.Speed, s.Speed},
		{units.Torque, s.Torque},
		{units.Pressure, s.Pressure},
	} {
		if err := check(c.cat, c.val); err != nil {
			return err
		}
	}

	if s.Currency != "" && len(strings.TrimSpace(s.Currency)) != 3 {
		return fmt.Errorf("%w: currency %q is not a 3-letter code", ErrInvalidUnit, s.Currency)
	}
	return nil
}
