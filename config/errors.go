package config

import "fmt"

// ErrAlreadyParsed is returned when Parse is called more than once
var ErrAlreadyParsed = fmt.Errorf("configuration already parsed")

// ErrParseFlags is returned when the command line flags are not valid
type ErrParseFlags struct {
	Cause error
}

func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}

// ErrReadConfig is returned when the configuration file cannot be read
type ErrReadConfig struct {
	Path  string
	Cause error
}

func (e ErrReadConfig) Error() string {
	return fmt.Sprintf("failed to read configuration file %s: %s", e.Path, e.Cause.Error())
}

func (e ErrReadConfig) Unwrap() error {
	return e.Cause
}
