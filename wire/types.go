package wire

import "fmt"

// WireType is the 3-bit type code carried in every field tag.
type WireType int32

const (
	WireVarint  WireType = 0 // base-128 variable-length integers
	WireFixed64 WireType = 1 // 8-byte little-endian values
	WireBytes   WireType = 2 // length-delimited payloads
	WireFixed32 WireType = 5 // 4-byte little-endian values
)

// Wire types 3 and 4 are the deprecated group delimiters and 6 and 7 are
// reserved; the decoder rejects all four with ErrUnknownWireType.

func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireFixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("wiretype(%d)", int32(wt))
	}
}

// FieldNumber is a protobuf field number. Without a schema there is
// nothing to validate numbers against, so zero and the reserved ranges
// are decoded and reported as-is.
type FieldNumber uint64

// Tag packs a field number and wire type into one varint-encoded value.
type Tag uint64

// MakeTag creates a tag from a field number and wire type.
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag splits a tag into its field number and wire type.
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// Kind identifies which interpretation a Value carries.
type Kind int

const (
	// KindUint is an unsigned integer magnitude from a varint, fixed64
	// or fixed32 field. No signedness or zigzag decoding is applied;
	// the wire format carries no signal to distinguish them.
	KindUint Kind = iota

	// KindBytes is a length-delimited payload that has not yet been
	// through the heuristic ladder.
	KindBytes

	// KindMessage is a payload reinterpreted as nested fields.
	KindMessage

	// KindText is a payload reinterpreted as UTF-8 text.
	KindText

	// KindRaw is a payload kept as opaque bytes, shown as hex.
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindBytes:
		return "bytes"
	case KindMessage:
		return "message"
	case KindText:
		return "text"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one decoded field value. Exactly one interpretation applies,
// selected by Kind: Uint for the integer kinds, Bytes for payload kinds,
// Message for resolved submessages.
type Value struct {
	Kind    Kind
	Uint    uint64
	Bytes   []byte
	Message []Field
}

// Text returns the payload as a string. Meaningful only for KindText.
func (v Value) Text() string {
	return string(v.Bytes)
}

// UintValue builds a KindUint value.
func UintValue(v uint64) Value {
	return Value{Kind: KindUint, Uint: v}
}

// BytesValue builds an unresolved KindBytes value.
func BytesValue(data []byte) Value {
	return Value{Kind: KindBytes, Bytes: data}
}

// MessageValue builds a KindMessage value from resolved fields.
func MessageValue(fields []Field) Value {
	return Value{Kind: KindMessage, Message: fields}
}

// TextValue builds a KindText value.
func TextValue(text string) Value {
	return Value{Kind: KindText, Bytes: []byte(text)}
}

// RawValue builds a KindRaw value.
func RawValue(data []byte) Value {
	return Value{Kind: KindRaw, Bytes: data}
}

// Field is one tagged value from the wire. A decoded buffer is an
// ordered sequence of fields: order is byte order, and repeated tags are
// kept as separate entries rather than collapsed.
type Field struct {
	Number FieldNumber
	Wire   WireType
	Value  Value
}
