package configs

import "time"

const dateLayout = "2006-01-02"

// Config holds all settings for one report run.
type Config struct {
	Files       []string  `mapstructure:"files" validate:"required,min=1,dive,required"`
	Report      string    `mapstructure:"report" validate:"required"`
	Date        string    `mapstructure:"date" validate:"omitempty,datetime=2006-01-02"`
	MetricsAddr string    `mapstructure:"metrics_addr" validate:"omitempty,hostname_port"`
	Log         LogConfig `mapstructure:"log" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// HasDate reports whether a date filter was requested.
func (c *Config) HasDate() bool {
	return c.Date != ""
}

// Day returns the filter date as a UTC day. Call only after validation; an
// unset or invalid date yields the zero time.
func (c *Config) Day() time.Time {
	t, err := time.Parse(dateLayout, c.Date)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
