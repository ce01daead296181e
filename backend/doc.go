// Package backend provides a registry of named native buffer backends.
//
// A glcompat.Context can mirror buffer storage into a native rendering
// library through glcompat.WithBackend. This package lets tools pick such
// a backend by name at runtime, so they do not have to know how its device
// is created.
//
// # Backend Registration
//
// Backends are registered via init() functions. The noop wgpu device is
// registered by the native package:
//
//	import _ "github.com/gogpu/glcompat/backend/native"
//
// # Usage with Context
//
//	b, err := backend.Open("noop")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	gl := glcompat.NewContext(glcompat.WithBackend(b))
//	defer gl.Close()
//
// Close the Context before the backend, so that the Context can release
// its native buffers first.
//
// # Available Backends
//
// - "noop": gogpu/wgpu noop device (always available with backend/native)
package backend
