package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/glcompat/backend"
)

// BackendNoop is the registry name of the noop device backend.
const BackendNoop = "noop"

// init registers the noop backend on package import.
//
//	import _ "github.com/gogpu/glcompat/backend/native"
func init() {
	backend.Register(BackendNoop, func() (backend.Backend, error) {
		return OpenNoop()
	})
}

// NoopBackend is a HALBackend on its own gogpu/wgpu noop device. Buffer
// operations go through the full HAL path without touching a GPU.
type NoopBackend struct {
	*HALBackend

	// release destroys the device and instance.
	release func()
}

// OpenNoop opens a noop instance and device and wraps them in a backend.
func OpenNoop() (*NoopBackend, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("create noop instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: noop instance has no adapter", backend.ErrBackendNotAvailable)
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open noop device: %w", err)
	}
	return &NoopBackend{
		HALBackend: NewHALBackend(openDev.Device, openDev.Queue),
		release: func() {
			openDev.Device.Destroy()
			instance.Destroy()
		},
	}, nil
}

// Name returns BackendNoop.
func (b *NoopBackend) Name() string { return BackendNoop }

// Close destroys the remaining buffers, then the device and instance.
func (b *NoopBackend) Close() {
	b.HALBackend.Close()
	b.release()
}
