package config

import "errors"

var (
	// ErrEmptySeedURL is returned when no seed URL is provided
	ErrEmptySeedURL = errors.New("seed URL cannot be empty")
	// ErrNegativeLimit is returned when the page limit is negative
	ErrNegativeLimit = errors.New("limit cannot be negative")
	// ErrInvalidTimeout is returned when request timeout is not greater than 0
	ErrInvalidTimeout = errors.New("request_timeout must be greater than 0")
	// ErrEmptyOutputPath is returned when the output path is empty
	ErrEmptyOutputPath = errors.New("output_path cannot be empty")
)
