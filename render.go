package protodump

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/protodump/protodump/wire"
)

// Renderer writes a resolved tree as indented text: one field per line,
// two spaces per nesting level, fields in decode order. Integers render
// as unsigned decimal, text in quoted Go string syntax, raw bytes as
// lowercase unseparated hex pairs, and nested messages inside braces
// with an empty message collapsed to {}.
type Renderer struct {
	w   io.Writer
	err error
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// printf writes through the renderer's sticky error: after the first
// write failure every later write is a no-op.
func (r *Renderer) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Render writes the tree rooted at v and reports the first write error.
// A message root prints its fields at depth zero with no surrounding
// braces. A non-message root, meaning input that never parsed as
// fields, prints as a single value line with no field number; there is
// no tag at the top level to attribute it to.
func (r *Renderer) Render(v wire.Value) error {
	switch v.Kind {
	case wire.KindMessage:
		r.fields(v.Message)
	case wire.KindUint:
		r.printf("%d\n", v.Uint)
	case wire.KindText:
		r.printf("%s\n", strconv.Quote(v.Text()))
	default:
		r.printf("%s\n", hex.EncodeToString(v.Bytes))
	}
	return r.err
}

// renderFrame tracks one partially printed field list.
type renderFrame struct {
	fields []wire.Field
	next   int
}

// fields prints a field list and everything below it. The walk keeps
// its own frame stack for the same reason the resolver does: tree depth
// is bounded only by input size, so the call stack cannot carry it.
func (r *Renderer) fields(fields []wire.Field) {
	stack := []renderFrame{{fields: fields}}

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]
		if frame.next >= len(frame.fields) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				r.printf("%s}\n", indent(len(stack)-1))
			}
			continue
		}

		f := frame.fields[frame.next]
		frame.next++
		pad := indent(len(stack) - 1)

		switch f.Value.Kind {
		case wire.KindUint:
			r.printf("%s%d: %d\n", pad, f.Number, f.Value.Uint)
		case wire.KindText:
			r.printf("%s%d: %s\n", pad, f.Number, strconv.Quote(f.Value.Text()))
		case wire.KindMessage:
			if len(f.Value.Message) == 0 {
				r.printf("%s%d: {}\n", pad, f.Number)
			} else {
				r.printf("%s%d: {\n", pad, f.Number)
				stack = append(stack, renderFrame{fields: f.Value.Message})
			}
		default:
			// KindRaw, or a KindBytes that never went through the
			// resolver; both print as hex.
			r.printf("%s%d: %s\n", pad, f.Number, hex.EncodeToString(f.Value.Bytes))
		}
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
