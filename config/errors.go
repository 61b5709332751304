package config

import "errors"

// ErrRequiredFlagMissing is returned when -g is absent, or when -r is
// absent and no partition preview (-z) was requested.
var ErrRequiredFlagMissing = errors.New("config: required flag missing")

// ErrInvalidValue is returned when a flag's value is out of range.
var ErrInvalidValue = errors.New("config: invalid value")
