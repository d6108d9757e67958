package charts

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySeries  = errors.New("empty series")
	ErrEmptyPalette = errors.New("palette has no color")
	ErrTooFewTicks  = errors.New("at least two ticks are required")
	ErrTickOverflow = errors.New("too many ticks")
	ErrInvalidValue = errors.New("invalid value")
	ErrInvalidColor = errors.New("invalid color")
)

// ConfigError reports an option given to one of the planners that can not
// be used as is.
type ConfigError struct {
	Option string
	Value  any
	Err    error
}

func configError(option string, value any, err error) error {
	return ConfigError{
		Option: option,
		Value:  value,
		Err:    err,
	}
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Option, e.Value, e.Err)
}

func (e ConfigError) Unwrap() error {
	return e.Err
}
