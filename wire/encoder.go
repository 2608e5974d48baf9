package wire

// Encoder builds a wire-format buffer by appending. It exists for test
// vectors and round-trip checks; the dump path itself never encodes.
type Encoder struct {
	buf []byte
}

// NewEncoder creates an empty wire format encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0),
	}
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// EncodeTag appends the tag for a field number and wire type.
func (e *Encoder) EncodeTag(number FieldNumber, wireType WireType) {
	e.EncodeVarint(uint64(MakeTag(number, wireType)))
}

// EncodeField appends one field, tag first. Integer values follow the
// field's recorded wire type, so fixed-width fields re-encode at their
// original width; all payload kinds are written length-delimited with
// their bytes verbatim, and message values are encoded from their
// resolved fields.
func (e *Encoder) EncodeField(f Field) {
	switch f.Value.Kind {
	case KindUint:
		switch f.Wire {
		case WireFixed64:
			e.EncodeTag(f.Number, WireFixed64)
			e.EncodeFixed64(f.Value.Uint)
		case WireFixed32:
			e.EncodeTag(f.Number, WireFixed32)
			e.EncodeFixed32(uint32(f.Value.Uint))
		default:
			e.EncodeTag(f.Number, WireVarint)
			e.EncodeVarint(f.Value.Uint)
		}

	case KindMessage:
		sub := NewEncoder()
		sub.EncodeFields(f.Value.Message)
		e.EncodeTag(f.Number, WireBytes)
		e.EncodeBytes(sub.Bytes())

	default:
		e.EncodeTag(f.Number, WireBytes)
		e.EncodeBytes(f.Value.Bytes)
	}
}

// EncodeFields appends each field in order.
func (e *Encoder) EncodeFields(fields []Field) {
	for _, f := range fields {
		e.EncodeField(f)
	}
}
