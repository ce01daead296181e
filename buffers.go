package glcompat

import (
	"fmt"

	"github.com/gogpu/glcompat/internal/buffer"
)

// BindBuffer binds buffer to target. Binding 0 unbinds. Binding a name that
// is not yet a buffer creates it with empty storage.
//
// Errors: INVALID_ENUM for an unknown target, OUT_OF_MEMORY when the new
// object cannot be created. On error the binding is unchanged.
func (c *Context) BindBuffer(target Enum, name uint32) {
	if err := c.buffers.Bind(buffer.Target(target), name); err != nil {
		c.reject("glBindBuffer", err, "target", target, "buffer", name)
		return
	}
	c.ok()
}

// BufferBinding returns the name bound to target, or 0 with INVALID_ENUM
// for an unknown target.
func (c *Context) BufferBinding(target Enum) uint32 {
	name, err := c.buffers.Binding(buffer.Target(target))
	if err != nil {
		c.reject("glGetBufferBinding", err, "target", target)
		return 0
	}
	c.ok()
	return name
}

// GenBuffers returns n unused buffer names. They become buffers when first
// bound.
func (c *Context) GenBuffers(n int) []uint32 {
	names, err := c.buffers.Generate(n)
	if err != nil {
		c.reject("glGenBuffers", err, "n", n)
		return nil
	}
	c.ok()
	return names
}

// DeleteBuffers deletes the named buffers. Zero and names that are not
// buffers are ignored.
//
// Bindings that still refer to a deleted name are not cleared; data
// operations through them fail with INVALID_OPERATION until rebound.
func (c *Context) DeleteBuffers(names ...uint32) {
	for _, name := range names {
		c.releaseNative(c.buffers.Delete(name))
	}
	c.ok()
}

// IsBuffer reports whether name is a live buffer object. Zero never is.
func (c *Context) IsBuffer(name uint32) bool {
	c.ok()
	return c.buffers.Exists(name)
}

// BufferData replaces the storage of the buffer bound to target with size
// bytes. The bytes come from data, which must hold at least size bytes, or
// are zero when data is nil.
//
// Errors: INVALID_ENUM for an unknown target or usage, INVALID_VALUE for a
// negative size or short data, INVALID_OPERATION when nothing is bound and
// OUT_OF_MEMORY when size exceeds the maximum buffer size or the native
// mirror cannot be allocated.
func (c *Context) BufferData(target Enum, size int, data []byte, usage Enum) {
	const op = "glBufferData"

	t, u := buffer.Target(target), buffer.Usage(usage)
	if !t.Valid() {
		c.reject(op, fmt.Errorf("%w: target %s", buffer.ErrInvalidEnum, t), "target", target)
		return
	}
	if !u.Valid() {
		c.reject(op, fmt.Errorf("%w: usage %s", buffer.ErrInvalidEnum, u), "usage", usage)
		return
	}
	if size < 0 || (data != nil && len(data) < size) {
		c.reject(op, fmt.Errorf("%w: size %d with %d bytes of data", buffer.ErrInvalidValue, size, len(data)), "size", size)
		return
	}

	obj, err := c.buffers.Bound(t)
	if err != nil {
		c.reject(op, err, "target", target)
		return
	}
	if uint64(size) > c.maxBufferSize { //nolint:gosec // size checked non-negative above
		c.reject(op, fmt.Errorf("%w: size %d exceeds maximum %d", buffer.ErrOutOfMemory, size, c.maxBufferSize),
			"buffer", obj.Name, "size", size)
		return
	}

	storage := make([]byte, size)
	copy(storage, data)

	native, err := c.createNative(t, storage)
	if err != nil {
		c.reject(op, err, "buffer", obj.Name, "size", size)
		return
	}

	if err := c.buffers.Upload(t, storage, u); err != nil {
		c.discardNative(native)
		c.reject(op, err, "target", target)
		return
	}
	c.releaseNative(obj)
	obj.Native = native
	c.ok()
}

// BufferSubData overwrites part of the storage of the buffer bound to
// target, starting at offset. The range must lie within the storage.
func (c *Context) BufferSubData(target Enum, offset int, data []byte) {
	const op = "glBufferSubData"

	t := buffer.Target(target)
	if err := c.buffers.WriteRange(t, offset, data); err != nil {
		c.reject(op, err, "target", target, "offset", offset, "size", len(data))
		return
	}
	obj, _ := c.buffers.Bound(t)
	c.writeNative(obj, offset, data)
	c.ok()
}

// GetBufferSubData copies length bytes starting at offset from the buffer
// bound to target into dst.
//
// Errors, checked in this order: INVALID_ENUM for an unknown target,
// INVALID_OPERATION when nothing is bound, when dst is nil (or shorter than
// length) and length is not zero, and when [offset, offset+length) does not
// lie within the storage. A zero length succeeds without touching dst.
func (c *Context) GetBufferSubData(target Enum, offset, length int, dst []byte) {
	if err := c.buffers.ReadRange(buffer.Target(target), offset, length, dst); err != nil {
		c.reject("glGetBufferSubData", err, "target", target, "offset", offset, "size", length)
		return
	}
	c.ok()
}

// GetBufferParameteri returns BUFFER_SIZE or BUFFER_USAGE of the buffer
// bound to target.
func (c *Context) GetBufferParameteri(target, pname Enum) int32 {
	const op = "glGetBufferParameteriv"

	t := buffer.Target(target)
	if !t.Valid() {
		c.reject(op, fmt.Errorf("%w: target %s", buffer.ErrInvalidEnum, t), "target", target)
		return 0
	}
	if pname != BUFFER_SIZE && pname != BUFFER_USAGE {
		c.reject(op, fmt.Errorf("%w: pname %s", buffer.ErrInvalidEnum, pname), "pname", pname)
		return 0
	}
	obj, err := c.buffers.Bound(t)
	if err != nil {
		c.reject(op, err, "target", target)
		return 0
	}

	c.ok()
	if pname == BUFFER_SIZE {
		return int32(obj.Size) //nolint:gosec // GL reports sizes as GLint
	}
	return int32(obj.Usage) //nolint:gosec // usage enums fit in GLint
}

// discardNative destroys a native buffer that never got attached to an object.
func (c *Context) discardNative(id NativeID) {
	if c.backend != nil && id != 0 {
		c.backend.DestroyBuffer(id)
	}
}
