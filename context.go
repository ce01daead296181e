package glcompat

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gogpu/glcompat/internal/buffer"
	"github.com/gogpu/glcompat/internal/texcoord"
)

// Context is one emulated GL context.
// It owns the buffer registry, the buffer binding points, the per-unit
// texture coordinates and the last-error register.
// Context implements io.Closer for releasing native buffers.
type Context struct {
	buffers   *buffer.Registry
	texCoords *texcoord.State

	// lastError is the code set by the most recent entry point.
	lastError Enum

	// maxBufferSize caps the storage of one buffer object.
	maxBufferSize uint64

	backend Backend
	logger  *slog.Logger

	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a new emulated context.
//
//	// Eight texture units, no native mirror
//	gl := glcompat.NewContext()
//
//	// Configured from a TOML file
//	cfg, _ := glcompat.LoadConfig("glcompat.toml")
//	gl := glcompat.NewContext(cfg.Options(os.Stderr)...)
func NewContext(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Context{
		buffers:       buffer.NewRegistry(o.maxBuffers),
		texCoords:     texcoord.New(o.textureUnits),
		lastError:     NO_ERROR,
		maxBufferSize: o.maxBufferSize,
		backend:       o.backend,
		logger:        o.logger,
	}
}

// Close destroys the native mirror of every live buffer. The Context must
// not be used after Close. Calling Close twice is a no-op.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.backend == nil {
		return nil
	}
	for _, name := range c.buffers.Names() {
		c.releaseNative(c.buffers.Object(name, false))
	}
	return nil
}

// GetError returns the code recorded by the last entry point and resets the
// register to NO_ERROR.
func (c *Context) GetError() Enum {
	code := c.lastError
	c.lastError = NO_ERROR
	return code
}

// TextureUnits returns the configured texture unit count.
func (c *Context) TextureUnits() int {
	return c.texCoords.Units()
}

// GetInteger answers the integer state queries glcompat tracks:
// ARRAY_BUFFER_BINDING, ELEMENT_ARRAY_BUFFER_BINDING and MAX_TEXTURE_UNITS.
func (c *Context) GetInteger(pname Enum) int32 {
	const op = "glGetIntegerv"

	var target buffer.Target
	switch pname {
	case ARRAY_BUFFER_BINDING:
		target = buffer.TargetArray
	case ELEMENT_ARRAY_BUFFER_BINDING:
		target = buffer.TargetElementArray
	case MAX_TEXTURE_UNITS:
		c.ok()
		return int32(c.texCoords.Units()) //nolint:gosec // at most texcoord.MaxUnits
	default:
		c.reject(op, errInvalidEnum, "pname", pname)
		return 0
	}

	name, _ := c.buffers.Binding(target)
	c.ok()
	return int32(name) //nolint:gosec // GL reports names as GLint
}

// log returns the Context logger, falling back to the package logger.
func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// ok records a successful call.
func (c *Context) ok() {
	c.lastError = NO_ERROR
}

// reject records the GL code for err and logs the rejected call.
// args are extra key/value pairs naming the rejected parameter.
func (c *Context) reject(op string, err error, args ...any) {
	code := errorCode(err)
	c.lastError = code

	attrs := make([]any, 0, len(args)+6)
	attrs = append(attrs, "op", op, "code", code)
	attrs = append(attrs, args...)
	attrs = append(attrs, "err", err)
	c.log().Warn("glcompat: call rejected", attrs...)
}

// Errors for arguments rejected before reaching the registry or the
// texcoord state.
var (
	errInvalidEnum  = errors.New("glcompat: invalid enum")
	errInvalidValue = errors.New("glcompat: invalid value")
)

// errorCode maps an error from the state packages onto a GL error code.
func errorCode(err error) Enum {
	switch {
	case err == nil:
		return NO_ERROR
	case errors.Is(err, buffer.ErrInvalidEnum),
		errors.Is(err, texcoord.ErrInvalidEnum),
		errors.Is(err, errInvalidEnum):
		return INVALID_ENUM
	case errors.Is(err, buffer.ErrInvalidValue),
		errors.Is(err, errInvalidValue):
		return INVALID_VALUE
	case errors.Is(err, buffer.ErrOutOfMemory):
		return OUT_OF_MEMORY
	default:
		return INVALID_OPERATION
	}
}
