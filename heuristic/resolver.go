// Package heuristic reinterprets length-delimited wire payloads. The
// wire format erases the difference between a submessage, a UTF-8
// string, packed scalars and opaque bytes, so every payload is run
// through an ordered ladder of attempts, strict to loose: nested
// message first, then whole-buffer UTF-8 text, then raw bytes. The
// first attempt to succeed decides the interpretation; the raw tier
// cannot fail, so resolution is total.
package heuristic

import (
	"errors"
	"unicode/utf8"

	"github.com/protodump/protodump/wire"
)

// ErrInvalidUTF8 rejects payloads that are not well-formed UTF-8 in
// their entirety. Like the wire decode errors it only ever selects the
// next ladder tier; it is not reported outward.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// An attempt proposes one interpretation of a payload. It classifies
// the payload on its own, without descending into any nested payloads
// the interpretation may contain.
type attempt func(payload []byte) (wire.Value, error)

// The ladder, strict to loose. asRaw cannot fail, so every payload
// resolves to exactly one of message, text or raw.
var ladder = []attempt{tryMessage, tryText, asRaw}

// tryMessage accepts payloads that decode as a field sequence consuming
// every byte. Nested payloads inside the fields stay unresolved here.
//
// Two accepted false positives follow from trying this tier first:
// an even run of zero bytes decodes as repeated empty varint fields
// (tag 0, value 0), and short texts such as "08" happen to satisfy the
// field grammar. Both classify as messages.
func tryMessage(payload []byte) (wire.Value, error) {
	fields, err := wire.DecodeAll(payload)
	if err != nil {
		return wire.Value{}, err
	}
	return wire.MessageValue(fields), nil
}

// tryText accepts payloads that are valid UTF-8 from first byte to
// last. No replacement characters, no partial decode.
func tryText(payload []byte) (wire.Value, error) {
	if !utf8.Valid(payload) {
		return wire.Value{}, ErrInvalidUTF8
	}
	return wire.Value{Kind: wire.KindText, Bytes: payload}, nil
}

// asRaw accepts anything.
func asRaw(payload []byte) (wire.Value, error) {
	return wire.Value{Kind: wire.KindRaw, Bytes: payload}, nil
}

// resolveOne classifies a single payload with the ladder.
func resolveOne(payload []byte) wire.Value {
	var v wire.Value
	var err error
	for _, try := range ladder {
		v, err = try(payload)
		if err == nil {
			break
		}
	}
	return v
}

// Resolve interprets data as a whole, starting with a message attempt
// over the entire buffer, and returns the resolved root. Message
// children are resolved depth-first with an explicit work stack rather
// than recursion: nesting depth can approach half the input length on
// crafted buffers, which would exhaust the goroutine stack long before
// it exhausted memory. Resolve never fails; the worst classification
// for any input is raw.
//
// The empty buffer is a message with no fields. That tie-break falls
// out of the ladder order and the renderer depends on it: an empty
// length-delimited field always prints as {}, not as empty text.
func Resolve(data []byte) wire.Value {
	root := wire.BytesValue(data)
	work := []*wire.Value{&root}

	for len(work) > 0 {
		v := work[len(work)-1]
		work = work[:len(work)-1]

		*v = resolveOne(v.Bytes)
		if v.Kind != wire.KindMessage {
			continue
		}

		// A resolved field slice is never reallocated, so pointers into
		// it stay valid while its children wait on the stack. Children
		// are pushed in reverse to resolve in field order.
		for i := len(v.Message) - 1; i >= 0; i-- {
			if v.Message[i].Value.Kind == wire.KindBytes {
				work = append(work, &v.Message[i].Value)
			}
		}
	}

	return root
}
