// Package native mirrors glcompat buffer storage into GPU buffers created
// through gogpu/wgpu/hal.
package native

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glcompat"
)

// copyAlignment is the size and offset granularity of queue buffer writes.
const copyAlignment = 4

// HALBackend implements glcompat.Backend on a hal.Device and hal.Queue.
// The device and queue belong to the caller; Close releases only the
// buffers created through the backend.
//
// Thread Safety: HALBackend is safe for concurrent use, so several
// Contexts may share one backend. All resource operations are protected
// by a mutex.
type HALBackend struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue

	// ID generation
	nextID atomic.Uint64

	// buffers maps glcompat native IDs to hal buffers.
	buffers map[glcompat.NativeID]hal.Buffer
	sizes   map[glcompat.NativeID]uint64
}

// Ensure HALBackend implements glcompat.Backend
var _ glcompat.Backend = (*HALBackend)(nil)

// NewHALBackend creates a backend on device and queue.
func NewHALBackend(device hal.Device, queue hal.Queue) *HALBackend {
	b := &HALBackend{
		device:  device,
		queue:   queue,
		buffers: make(map[glcompat.NativeID]hal.Buffer),
		sizes:   make(map[glcompat.NativeID]uint64),
	}

	// Start ID generation at 1 (0 is invalid)
	b.nextID.Store(1)

	return b
}

// FromProvider creates a backend sharing the device of an external provider
// (e.g., gogpu). The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func FromProvider(provider gpucontext.DeviceProvider) (*HALBackend, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return NewHALBackend(device, queue), nil
}

// newID generates a unique resource ID.
func (b *HALBackend) newID() glcompat.NativeID {
	return glcompat.NativeID(b.nextID.Add(1) - 1)
}

// CreateBuffer creates a GPU buffer of at least size bytes, rounded up to
// the copy alignment.
func (b *HALBackend) CreateBuffer(size int, usage gputypes.BufferUsage) (glcompat.NativeID, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	id := b.newID()
	aligned := alignUp(uint64(size))
	desc := &hal.BufferDescriptor{
		Label: fmt.Sprintf("glcompat-buffer-%d", id),
		Size:  aligned,
		Usage: usage,
	}

	buffer, err := b.device.CreateBuffer(desc)
	if err != nil {
		return 0, fmt.Errorf("failed to create buffer: %w", err)
	}

	b.mu.Lock()
	b.buffers[id] = buffer
	b.sizes[id] = aligned
	b.mu.Unlock()

	glcompat.Logger().Debug("native: buffer created", "id", id, "size", aligned, "usage", usage)
	return id, nil
}

// DestroyBuffer releases a GPU buffer. Unknown IDs are ignored.
func (b *HALBackend) DestroyBuffer(id glcompat.NativeID) {
	b.mu.Lock()
	buffer, ok := b.buffers[id]
	if ok {
		delete(b.buffers, id)
		delete(b.sizes, id)
	}
	b.mu.Unlock()

	if ok {
		b.device.DestroyBuffer(buffer)
	}
}

// WriteBuffer writes data to a buffer at offset. The offset must be a
// multiple of 4; data is zero-padded to a multiple of 4 bytes. Writes to
// unknown buffers or past the end are dropped.
func (b *HALBackend) WriteBuffer(id glcompat.NativeID, offset uint64, data []byte) {
	if len(data) == 0 {
		return
	}

	b.mu.RLock()
	buffer, ok := b.buffers[id]
	size := b.sizes[id]
	b.mu.RUnlock()

	if !ok {
		return
	}
	if offset%copyAlignment != 0 {
		glcompat.Logger().Warn("native: unaligned buffer write dropped", "id", id, "offset", offset)
		return
	}

	padded := data
	if n := alignUp(uint64(len(data))); n != uint64(len(data)) {
		padded = make([]byte, n)
		copy(padded, data)
	}
	if offset+uint64(len(padded)) > size {
		glcompat.Logger().Warn("native: buffer write past end dropped",
			"id", id, "offset", offset, "len", len(padded), "size", size)
		return
	}

	b.queue.WriteBuffer(buffer, offset, padded)
}

// Len returns the number of live buffers.
func (b *HALBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.buffers)
}

// Size returns the allocated size of a buffer, 0 if id is unknown.
func (b *HALBackend) Size(id glcompat.NativeID) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sizes[id]
}

// Close destroys every buffer still owned by the backend.
func (b *HALBackend) Close() {
	b.mu.Lock()
	buffers := b.buffers
	b.buffers = make(map[glcompat.NativeID]hal.Buffer)
	b.sizes = make(map[glcompat.NativeID]uint64)
	b.mu.Unlock()

	for _, buffer := range buffers {
		b.device.DestroyBuffer(buffer)
	}
}

func alignUp(n uint64) uint64 {
	return (n + copyAlignment - 1) &^ (copyAlignment - 1)
}
