package glcompat

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcompat/internal/buffer"
)

// NativeID is an opaque handle to a buffer in the native rendering library.
// Zero is never a valid handle.
type NativeID = buffer.NativeID

// Backend is the part of the native rendering library that receives buffer
// storage. Implementations need not be safe for concurrent use; a Context
// calls them from its rendering thread only.
type Backend interface {
	// CreateBuffer allocates a native buffer of at least size bytes.
	CreateBuffer(size int, usage gputypes.BufferUsage) (NativeID, error)

	// DestroyBuffer releases a native buffer. Unknown IDs are ignored.
	DestroyBuffer(id NativeID)

	// WriteBuffer copies data into a native buffer at offset. The offset is
	// always a multiple of 4.
	WriteBuffer(id NativeID, offset uint64, data []byte)
}

// nativeAlignment is the offset granularity of Backend.WriteBuffer.
const nativeAlignment = 4

// nativeUsage derives native usage flags from the GL binding point. The GL
// usage hint does not change placement in the native library.
func nativeUsage(target buffer.Target) gputypes.BufferUsage {
	usage := gputypes.BufferUsageCopyDst | gputypes.BufferUsageCopySrc
	switch target {
	case buffer.TargetArray:
		usage |= gputypes.BufferUsageVertex
	case buffer.TargetElementArray:
		usage |= gputypes.BufferUsageIndex
	}
	return usage
}

// createNative allocates and fills a native buffer for storage. It returns
// zero without a backend or for empty storage.
func (c *Context) createNative(target buffer.Target, storage []byte) (NativeID, error) {
	if c.backend == nil || len(storage) == 0 {
		return 0, nil
	}

	id, err := c.backend.CreateBuffer(len(storage), nativeUsage(target))
	if err != nil {
		return 0, fmt.Errorf("%w: native buffer of %d bytes: %v", buffer.ErrOutOfMemory, len(storage), err)
	}
	c.backend.WriteBuffer(id, 0, storage)
	c.log().Debug("glcompat: native buffer created", "native", id, "size", len(storage))
	return id, nil
}

// writeNative forwards a sub-range write to the mirror of obj. The written
// window is widened to 4-byte boundaries from the object's storage, since
// native queue writes are aligned.
func (c *Context) writeNative(obj *buffer.Object, offset int, data []byte) {
	if c.backend == nil || obj == nil || obj.Native == 0 || len(data) == 0 {
		return
	}
	storage := obj.Bytes()
	start := offset &^ (nativeAlignment - 1)
	end := min((offset+len(data)+nativeAlignment-1)&^(nativeAlignment-1), len(storage))
	window := make([]byte, end-start)
	copy(window, storage[start:end])
	c.backend.WriteBuffer(obj.Native, uint64(start), window) //nolint:gosec // offset validated non-negative
}

// releaseNative destroys the mirror of obj, if any.
func (c *Context) releaseNative(obj *buffer.Object) {
	if c.backend == nil || obj == nil || obj.Native == 0 {
		return
	}
	c.backend.DestroyBuffer(obj.Native)
	c.log().Debug("glcompat: native buffer destroyed", "buffer", obj.Name, "native", obj.Native)
	obj.Native = 0
}
