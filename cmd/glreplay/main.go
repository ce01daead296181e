// Command glreplay replays a text trace of GL buffer and multitexture calls
// against a glcompat context and prints the result and GL error of each call.
//
// Usage:
//
//	glreplay [-config glcompat.toml] [-backend noop] [-fail-fast] trace.txt
//
// Each trace line is an entry point followed by its arguments:
//
//	# comments and blank lines are ignored
//	BindBuffer ARRAY_BUFFER 1
//	BufferData ARRAY_BUFFER 4 01020304 STATIC_DRAW
//	GetBufferSubData ARRAY_BUFFER 1 2
//	MultiTexCoord4f TEXTURE1 1 2 3 4
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gogpu/glcompat"
	"github.com/gogpu/glcompat/backend"
	_ "github.com/gogpu/glcompat/backend/native"
)

func main() {
	var (
		config   = flag.String("config", "", "TOML configuration file")
		mirror   = flag.String("backend", "", "mirror buffers into a registered backend (e.g. noop)")
		failFast = flag.Bool("fail-fast", false, "stop at the first call that sets a GL error")
	)
	flag.Parse()

	cfg := glcompat.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = glcompat.LoadConfig(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	opts := cfg.Options(os.Stderr)

	if *mirror != "" {
		b, err := backend.Open(*mirror)
		if err != nil {
			log.Fatalf("Failed to open backend: %v", err)
		}
		defer b.Close()
		opts = append(opts, glcompat.WithBackend(b))
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("Failed to open trace: %v", err)
		}
		defer f.Close()
		in = f
	}

	gl := glcompat.NewContext(opts...)
	defer gl.Close()

	r := newReplayer(gl, os.Stdout)
	r.failFast = *failFast
	if err := r.Run(in); err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
	log.Printf("Replayed %d calls, %d rejected\n", r.calls, r.rejected)
}
