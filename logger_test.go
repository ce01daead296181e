package glcompat

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandlerDiscards(t *testing.T) {
	var h slog.Handler = nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("op", "glBindBuffer")}).(nopHandler); !ok {
		t.Error("WithAttrs() left nopHandler")
	}
	if _, ok := h.WithGroup("gl").(nopHandler); !ok {
		t.Error("WithGroup() left nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("Logger() is not the logger passed to SetLogger")
	}

	// Contexts resolve the package logger per call, so one built before
	// SetLogger still picks it up.
	gl := NewContext(WithBackend(newFakeBackend()))
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	gl.BindBuffer(ARRAY_BUFFER, 1)
	gl.BufferData(ARRAY_BUFFER, 1, []byte{7}, STATIC_DRAW)
	if !strings.Contains(buf.String(), "native buffer created") {
		t.Errorf("debug record missing: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestPackageLoggerSeesRejectedCalls(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	gl := NewContext()
	gl.BindBuffer(TEXTURE_2D, 1)

	out := buf.String()
	for _, want := range []string{"call rejected", "op=glBindBuffer", "code=GL_INVALID_ENUM"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var pkg, own bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&pkg, nil)))

	gl := NewContext(WithLogger(slog.New(slog.NewTextHandler(&own, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))), WithBackend(newFakeBackend()))

	gl.MultiTexCoord1f(TEXTURE7+1, 1)
	gl.BindBuffer(ARRAY_BUFFER, 1)
	gl.BufferData(ARRAY_BUFFER, 4, []byte{1, 2, 3, 4}, STATIC_DRAW)

	if pkg.Len() != 0 {
		t.Errorf("package logger received output: %s", pkg.String())
	}
	out := own.String()
	for _, want := range []string{"op=glMultiTexCoord1f", "native buffer created"} {
		if !strings.Contains(out, want) {
			t.Errorf("context log missing %q: %s", want, out)
		}
	}
}

func TestSuccessfulCallsDoNotWarn(t *testing.T) {
	var buf bytes.Buffer
	gl := NewContext(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))))
	gl.BindBuffer(ARRAY_BUFFER, 1)
	gl.BufferData(ARRAY_BUFFER, 2, []byte{1, 2}, STATIC_DRAW)
	gl.MultiTexCoord2f(TEXTURE0, 1, 2)
	if buf.Len() != 0 {
		t.Errorf("unexpected warnings: %s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			gl := NewContext()
			gl.BindBuffer(TEXTURE_2D, uint32(i+1))
			gl.MultiTexCoord1f(TEXTURE0+Enum(DefaultTextureUnits), 1)
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkRejectSilent(b *testing.B) {
	gl := NewContext()
	b.ReportAllocs()
	for b.Loop() {
		gl.BindBuffer(TEXTURE_2D, 1)
	}
}
