package errors

import "errors"

// Domain errors
var (
	// Client errors
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client already exists")
	ErrInvalidClientID     = errors.New("invalid client ID")
	ErrEmptyClientName     = errors.New("client name cannot be empty")

	// Scan errors
	ErrScanNotFound         = errors.New("scan not found")
	ErrInvalidScanStatus    = errors.New("invalid scan status")
	ErrScanAlreadyCompleted = errors.New("scan already completed")
	ErrResultAlreadyFinal   = errors.New("scan result already finalized")
	ErrResultNotFound       = errors.New("scan result not found")
	ErrEmptySurfaceKey      = errors.New("surface key cannot be empty")

	// Catalog errors
	ErrSurfaceNotFound     = errors.New("surface not found in catalog")
	ErrDuplicateSurfaceKey = errors.New("duplicate surface key in catalog")

	// Repository errors
	ErrRepositoryOperation   = errors.New("repository operation failed")
	ErrInvalidData           = errors.New("invalid data")
	ErrSerializationFailed   = errors.New("serialization failed")
	ErrDeserializationFailed = errors.New("deserialization failed")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)
