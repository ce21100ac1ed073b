package config

import "errors"

// Levels line up with zapcore's numeric levels.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return errors.New("log level must be between -1 (debug) and 2 (error)")
	}
	if c.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	return nil
}
