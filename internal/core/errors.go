package core

import "errors"

var (
	// ErrValidation marks malformed or incomplete batch input. Surfaced
	// before any processing starts.
	ErrValidation = errors.New("validation failed")

	// ErrAuth marks a failed token acquisition. Fatal for the batch.
	ErrAuth = errors.New("authentication failed")

	// ErrDataSource marks an unusable benefits workbook. The batch
	// degrades to an empty benefit mapping instead of aborting.
	ErrDataSource = errors.New("data source unavailable")
)
