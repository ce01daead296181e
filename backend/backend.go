package backend

import (
	"errors"

	"github.com/gogpu/glcompat"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend is a glcompat.Backend that owns the device it mirrors into.
//
// Backends must be registered via Register() and are opened via Open().
type Backend interface {
	glcompat.Backend

	// Name returns the backend identifier (e.g., "noop").
	Name() string

	// Close releases all backend resources, including the device.
	// The backend should not be used after Close is called.
	Close()
}
