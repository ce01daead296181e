package glcompat

import (
	"log/slog"

	"github.com/gogpu/gputypes"
)

// DefaultTextureUnits is the texture unit count of a Context created
// without WithTextureUnits.
const DefaultTextureUnits = 8

// Option configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Two texture units, mirrored into a wgpu device
//	gl := glcompat.NewContext(
//		glcompat.WithTextureUnits(2),
//		glcompat.WithBackend(native.NewHALBackend(device, queue)),
//	)
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	textureUnits  int
	maxBuffers    int
	maxBufferSize uint64
	backend       Backend
	logger        *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		textureUnits:  DefaultTextureUnits,
		maxBuffers:    0, // unlimited
		maxBufferSize: gputypes.DefaultLimits().MaxBufferSize,
	}
}

// WithTextureUnits sets the number of fixed-function texture units.
// The value is clamped to [1, 32].
func WithTextureUnits(n int) Option {
	return func(o *options) {
		o.textureUnits = n
	}
}

// WithMaxBuffers caps the number of live buffer objects. Binding a new name
// beyond the cap fails with OUT_OF_MEMORY. Zero means no cap.
func WithMaxBuffers(n int) Option {
	return func(o *options) {
		o.maxBuffers = n
	}
}

// WithMaxBufferSize caps the storage of a single buffer object. Uploads
// larger than n bytes fail with OUT_OF_MEMORY. The default is the
// MaxBufferSize of the default WebGPU limits. Zero restores the default.
func WithMaxBufferSize(n uint64) Option {
	return func(o *options) {
		if n == 0 {
			n = gputypes.DefaultLimits().MaxBufferSize
		}
		o.maxBufferSize = n
	}
}

// WithBackend mirrors buffer storage into a native rendering library.
//
// Example:
//
//	import "github.com/gogpu/glcompat/backend/native"
//
//	gl := glcompat.NewContext(glcompat.WithBackend(native.NewHALBackend(device, queue)))
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithLogger gives the Context its own logger instead of the package
// logger set by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
