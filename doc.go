// Package glcompat emulates the buffer object and multitexture state of a
// legacy OpenGL context on top of the gogpu/wgpu native rendering library.
//
// # Overview
//
// glcompat exposes the GL 1.x entry points of ARB_vertex_buffer_object and
// ARB_multitexture as methods of a [Context]. The Context does the part a
// correct emulation layer must get right: it tracks client-visible buffer
// handles and the array / element-array binding points, keeps the current
// texture coordinate of every texture unit, validates every call the way GL
// does and records the resulting error code for [Context.GetError].
//
// # Quick Start
//
//	import "github.com/gogpu/glcompat"
//
//	gl := glcompat.NewContext(glcompat.WithTextureUnits(4))
//
//	names := gl.GenBuffers(1)
//	gl.BindBuffer(glcompat.ARRAY_BUFFER, names[0])
//	gl.BufferData(glcompat.ARRAY_BUFFER, len(vertices), vertices, glcompat.STATIC_DRAW)
//	if code := gl.GetError(); code != glcompat.NO_ERROR {
//		log.Printf("upload failed: %s", code)
//	}
//
//	gl.MultiTexCoord2f(glcompat.TEXTURE1, 0.5, 0.5)
//
// # Native Mirror
//
// A Context created with [WithBackend] mirrors every buffer upload into the
// native library. backend/native provides a [Backend] over a
// gogpu/wgpu hal.Device and hal.Queue, and the backend package opens
// registered backends by name:
//
//	b, err := backend.Open("noop")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//	gl := glcompat.NewContext(glcompat.WithBackend(b))
//
// # Threading
//
// A Context belongs to one rendering thread, like the GL context it
// emulates. It performs no locking; concurrent calls are undefined.
//
// # Errors
//
// Entry points do not return errors. A rejected call leaves all state as it
// was, stores INVALID_ENUM, INVALID_VALUE, INVALID_OPERATION or
// OUT_OF_MEMORY and logs a warning through the package logger (see
// [SetLogger]). A successful call stores NO_ERROR.
package glcompat

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
