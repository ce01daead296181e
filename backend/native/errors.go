package native

import "errors"

// Package errors for the native backend.
var (
	// ErrNilProvider is returned when FromProvider is given a nil provider.
	ErrNilProvider = errors.New("native: nil device provider")

	// ErrNoHAL is returned when a provider does not expose HAL device and queue.
	ErrNoHAL = errors.New("native: provider does not expose HAL types")

	// ErrInvalidSize is returned when a buffer size is not positive.
	ErrInvalidSize = errors.New("native: buffer size must be positive")
)
