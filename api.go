// Package protodump renders Protocol Buffers wire data as indented
// text without a schema. Length-delimited payloads are ambiguous on the
// wire, so each one is reinterpreted heuristically: as a nested message
// if it decodes completely, as text if it is valid UTF-8, and as raw
// hex otherwise. The output is an interpretation of the bytes, not a
// verified decoding.
package protodump

import (
	"io"
	"strings"

	"github.com/protodump/protodump/heuristic"
	"github.com/protodump/protodump/wire"
)

// Decode interprets data and returns the resolved root value. It never
// fails: input that does not parse as fields comes back as text or raw
// bytes. The root is a message value whenever the whole buffer decodes
// as a field sequence, which is every well-formed protobuf blob.
func Decode(data []byte) wire.Value {
	return heuristic.Resolve(data)
}

// Dump decodes data and returns its rendered text form.
func Dump(data []byte) string {
	var sb strings.Builder

	// Writes to a strings.Builder cannot fail.
	_ = NewRenderer(&sb).Render(Decode(data))
	return sb.String()
}

// DumpTo decodes data and writes the rendered text to w. The only
// possible error is a write error from w.
func DumpTo(w io.Writer, data []byte) error {
	return NewRenderer(w).Render(Decode(data))
}
