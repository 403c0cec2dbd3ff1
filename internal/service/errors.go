package service

import "errors"

// Error taxonomy of the analysis pipeline. Callers wrap these with %w and the
// HTTP layer maps them to status codes with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrAcquisition     = errors.New("no elevation source available")
	ErrUpstreamAuth    = errors.New("reasoning service authorization failed")
	ErrUpstreamFailure = errors.New("reasoning service failed")
)
