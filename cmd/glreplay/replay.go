package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/glcompat"
)

// maxLineSize bounds one trace line. BufferData lines carry their data as
// hex, two characters per byte.
const maxLineSize = 256 << 20

// errSyntax marks trace lines that could not be parsed.
var errSyntax = errors.New("glreplay: syntax error")

// enumNames maps the GL names accepted in traces to their values.
var enumNames = map[string]glcompat.Enum{
	"NO_ERROR":                     glcompat.NO_ERROR,
	"ARRAY_BUFFER":                 glcompat.ARRAY_BUFFER,
	"ELEMENT_ARRAY_BUFFER":         glcompat.ELEMENT_ARRAY_BUFFER,
	"ARRAY_BUFFER_BINDING":         glcompat.ARRAY_BUFFER_BINDING,
	"ELEMENT_ARRAY_BUFFER_BINDING": glcompat.ELEMENT_ARRAY_BUFFER_BINDING,
	"BUFFER_SIZE":                  glcompat.BUFFER_SIZE,
	"BUFFER_USAGE":                 glcompat.BUFFER_USAGE,
	"STREAM_DRAW":                  glcompat.STREAM_DRAW,
	"STREAM_READ":                  glcompat.STREAM_READ,
	"STREAM_COPY":                  glcompat.STREAM_COPY,
	"STATIC_DRAW":                  glcompat.STATIC_DRAW,
	"STATIC_READ":                  glcompat.STATIC_READ,
	"STATIC_COPY":                  glcompat.STATIC_COPY,
	"DYNAMIC_DRAW":                 glcompat.DYNAMIC_DRAW,
	"DYNAMIC_READ":                 glcompat.DYNAMIC_READ,
	"DYNAMIC_COPY":                 glcompat.DYNAMIC_COPY,
	"TEXTURE_2D":                   glcompat.TEXTURE_2D,
	"MAX_TEXTURE_UNITS":            glcompat.MAX_TEXTURE_UNITS,
}

// parseEnum accepts a GL name, with or without the GL_ prefix, TEXTUREn
// for any n, or a number.
func parseEnum(s string) (glcompat.Enum, error) {
	name := strings.TrimPrefix(strings.ToUpper(s), "GL_")
	if v, ok := enumNames[name]; ok {
		return v, nil
	}
	if rest, ok := strings.CutPrefix(name, "TEXTURE"); ok && rest != "" {
		if n, err := strconv.ParseUint(rest, 10, 16); err == nil {
			return glcompat.TEXTURE0 + glcompat.Enum(n), nil
		}
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown enum %q", errSyntax, s)
	}
	return glcompat.Enum(n), nil
}

// parseBytes decodes hex data. A single "-" means no data.
func parseBytes(s string) ([]byte, error) {
	if s == "-" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: data %q: %v", errSyntax, s, err)
	}
	return b, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", errSyntax, s)
	}
	return int(n), nil
}

func parseName(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: buffer name %q", errSyntax, s)
	}
	return uint32(n), nil
}

// command runs one entry point and returns its printable result.
type command struct {
	args int // exact argument count, -1 for variadic
	run  func(gl *glcompat.Context, args []string) (string, error)
}

var commands = map[string]command{
	"BindBuffer": {2, func(gl *glcompat.Context, a []string) (string, error) {
		target, err := parseEnum(a[0])
		if err != nil {
			return "", err
		}
		name, err := parseName(a[1])
		if err != nil {
			return "", err
		}
		gl.BindBuffer(target, name)
		return "", nil
	}},
	"GenBuffers": {1, func(gl *glcompat.Context, a []string) (string, error) {
		n, err := parseInt(a[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprint(gl.GenBuffers(n)), nil
	}},
	"DeleteBuffers": {-1, func(gl *glcompat.Context, a []string) (string, error) {
		names := make([]uint32, 0, len(a))
		for _, s := range a {
			name, err := parseName(s)
			if err != nil {
				return "", err
			}
			names = append(names, name)
		}
		gl.DeleteBuffers(names...)
		return "", nil
	}},
	"IsBuffer": {1, func(gl *glcompat.Context, a []string) (string, error) {
		name, err := parseName(a[0])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(gl.IsBuffer(name)), nil
	}},
	"BufferData": {4, func(gl *glcompat.Context, a []string) (string, error) {
		target, err := parseEnum(a[0])
		if err != nil {
			return "", err
		}
		size, err := parseInt(a[1])
		if err != nil {
			return "", err
		}
		data, err := parseBytes(a[2])
		if err != nil {
			return "", err
		}
		usage, err := parseEnum(a[3])
		if err != nil {
			return "", err
		}
		gl.BufferData(target, size, data, usage)
		return "", nil
	}},
	"BufferSubData": {3, func(gl *glcompat.Context, a []string) (string, error) {
		target, err := parseEnum(a[0])
		if err != nil {
			return "", err
		}
		offset, err := parseInt(a[1])
		if err != nil {
			return "", err
		}
		data, err := parseBytes(a[2])
		if err != nil {
			return "", err
		}
		gl.BufferSubData(target, offset, data)
		return "", nil
	}},
	"GetBufferSubData": {3, func(gl *glcompat.Context, a []string) (string, error) {
		target, err := parseEnum(a[0])
		if err != nil {
			return "", err
		}
		offset, err := parseInt(a[1])
		if err != nil {
			return "", err
		}
		length, err := parseInt(a[2])
		if err != nil {
			return "", err
		}
		var dst []byte
		if length > 0 {
			dst = make([]byte, length)
		}
		gl.GetBufferSubData(target, offset, length, dst)
		return hex.EncodeToString(dst), nil
	}},
	"GetBufferParameteri": {2, func(gl *glcompat.Context, a []string) (string, error) {
		target, err := parseEnum(a[0])
		if err != nil {
			return "", err
		}
		pname, err := parseEnum(a[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(gl.GetBufferParameteri(target, pname))), nil
	}},
	"GetInteger": {1, func(gl *glcompat.Context, a []string) (string, error) {
		pname, err := parseEnum(a[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(gl.GetInteger(pname))), nil
	}},
	"MultiTexCoord": {-1, func(gl *glcompat.Context, a []string) (string, error) {
		if len(a) < 2 || len(a) > 5 {
			return "", fmt.Errorf("%w: MultiTexCoord takes a unit and 1 to 4 components", errSyntax)
		}
		target, err := parseEnum(a[0])
		if err != nil {
			return "", err
		}
		v := make([]float32, 0, 4)
		for _, s := range a[1:] {
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return "", fmt.Errorf("%w: component %q", errSyntax, s)
			}
			v = append(v, float32(f))
		}
		switch len(v) {
		case 1:
			gl.MultiTexCoord1fv(target, v)
		case 2:
			gl.MultiTexCoord2fv(target, v)
		case 3:
			gl.MultiTexCoord3fv(target, v)
		default:
			gl.MultiTexCoord4fv(target, v)
		}
		return "", nil
	}},
	"CurrentTexCoord": {1, func(gl *glcompat.Context, a []string) (string, error) {
		unit, err := parseInt(a[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprint(gl.CurrentTexCoord(unit)), nil
	}},
	"TexCoordSetMask": {0, func(gl *glcompat.Context, _ []string) (string, error) {
		return fmt.Sprintf("%#x", gl.TexCoordSetMask()), nil
	}},
}

// lookup resolves an entry point name. The gl prefix is optional. For
// MultiTexCoordN{f,d,s,i}[v] the digit N fixes the component count, so the
// call takes exactly N+1 arguments; all component types replay as float32.
// Bare MultiTexCoord takes its component count from the arguments.
func lookup(name string) (command, bool) {
	name = strings.TrimPrefix(name, "gl")
	if rest, ok := strings.CutPrefix(name, "MultiTexCoord"); ok && rest != "" {
		n := int(rest[0] - '0')
		if n < 1 || n > 4 || !validTexCoordSuffix(rest[1:]) {
			return command{}, false
		}
		cmd := commands["MultiTexCoord"]
		cmd.args = n + 1
		return cmd, true
	}
	cmd, ok := commands[name]
	return cmd, ok
}

// validTexCoordSuffix reports whether s is a component type letter with an
// optional v.
func validTexCoordSuffix(s string) bool {
	s = strings.TrimSuffix(s, "v")
	return s == "f" || s == "d" || s == "s" || s == "i"
}

// replayer feeds trace lines into a Context.
type replayer struct {
	gl       *glcompat.Context
	w        io.Writer
	failFast bool

	calls    int
	rejected int
}

func newReplayer(gl *glcompat.Context, w io.Writer) *replayer {
	return &replayer{gl: gl, w: w}
}

// Run replays every line of r. Each call prints one line:
//
//	<call>  <entry point>  <result>  <GL error>
func (p *replayer) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		code, err := p.Exec(fields[0], fields[1:])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if code != glcompat.NO_ERROR && p.failFast {
			return fmt.Errorf("line %d: %s set %s", lineNo, fields[0], code)
		}
	}
	return sc.Err()
}

// Exec runs one entry point, prints its outcome and returns the GL error
// it recorded.
func (p *replayer) Exec(name string, args []string) (glcompat.Enum, error) {
	cmd, ok := lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown entry point %q", errSyntax, name)
	}
	if cmd.args >= 0 && len(args) != cmd.args {
		return 0, fmt.Errorf("%w: %s takes %d arguments, got %d", errSyntax, name, cmd.args, len(args))
	}

	result, err := cmd.run(p.gl, args)
	if err != nil {
		return 0, err
	}
	code := p.gl.GetError()

	p.calls++
	if code != glcompat.NO_ERROR {
		p.rejected++
	}
	if result == "" {
		result = "-"
	}
	fmt.Fprintf(p.w, "%d\t%s\t%s\t%s\n", p.calls, name, result, code)
	return code, nil
}
