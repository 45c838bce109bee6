package domain

import "errors"

// Domain errors returned by the engine. Check them with errors.Is.
var (
	// ErrNoSelection is returned before any file system access when the
	// selected file set is empty.
	ErrNoSelection = errors.New("fileorg: no files selected to move in origin folder")

	// ErrUnknownOrdering is returned when an ordering name cannot be parsed.
	ErrUnknownOrdering = errors.New("fileorg: unknown ordering")

	// ErrUnknownPlacement is returned when a numbering placement cannot be parsed.
	ErrUnknownPlacement = errors.New("fileorg: unknown numbering placement")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("fileorg: invalid configuration")
)
