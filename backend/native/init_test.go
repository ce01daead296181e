package native

import (
	"slices"
	"testing"

	"github.com/gogpu/glcompat"
	"github.com/gogpu/glcompat/backend"
)

func TestNoopRegistered(t *testing.T) {
	if !slices.Contains(backend.Available(), BackendNoop) {
		t.Fatalf("Available() = %v, want %q", backend.Available(), BackendNoop)
	}

	b, err := backend.Open(BackendNoop)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", BackendNoop, err)
	}
	defer b.Close()
	if b.Name() != BackendNoop {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendNoop)
	}
}

func TestNoopBackendWithContext(t *testing.T) {
	b, err := OpenNoop()
	if err != nil {
		t.Fatalf("OpenNoop() error = %v", err)
	}
	defer b.Close()

	gl := glcompat.NewContext(glcompat.WithBackend(b))
	gl.BindBuffer(glcompat.ARRAY_BUFFER, 1)
	gl.BufferData(glcompat.ARRAY_BUFFER, 5, []byte{1, 2, 3, 4, 5}, glcompat.STATIC_DRAW)
	gl.BufferSubData(glcompat.ARRAY_BUFFER, 3, []byte{9, 9})
	if code := gl.GetError(); code != glcompat.NO_ERROR {
		t.Fatalf("buffer calls error = %s", code)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}

	if err := gl.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after Context.Close, want 0", b.Len())
	}
}
