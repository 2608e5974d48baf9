// Package wire decodes and encodes the Protocol Buffers wire format at
// the level the format itself defines: tags, varints, fixed-width
// integers and length-delimited payloads. It knows nothing about
// schemas; length-delimited payloads come back as raw bytes for a
// higher layer to reinterpret.
package wire

import "io"

// Decoder is a cursor over a fixed wire-format buffer. The cursor
// advances only on successful reads; after any error the decoder must
// be discarded, since the whole interpretation attempt it belonged to
// is abandoned with it.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a decoder positioned at the start of data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// DecodeField decodes the next field from the current position. Once
// the buffer is exhausted it returns io.EOF, the normal termination of
// a field loop rather than a decode failure.
func (d *Decoder) DecodeField() (Field, error) {
	if d.pos >= len(d.buf) {
		return Field{}, io.EOF
	}

	tag, err := d.DecodeVarint()
	if err != nil {
		return Field{}, err
	}
	number, wireType := ParseTag(Tag(tag))

	switch wireType {
	case WireVarint:
		v, err := d.DecodeVarint()
		if err != nil {
			return Field{}, err
		}
		return Field{Number: number, Wire: wireType, Value: UintValue(v)}, nil

	case WireFixed64:
		v, err := d.DecodeFixed64()
		if err != nil {
			return Field{}, err
		}
		return Field{Number: number, Wire: wireType, Value: UintValue(v)}, nil

	case WireFixed32:
		v, err := d.DecodeFixed32()
		if err != nil {
			return Field{}, err
		}
		return Field{Number: number, Wire: wireType, Value: UintValue(uint64(v))}, nil

	case WireBytes:
		data, err := d.DecodeBytes()
		if err != nil {
			return Field{}, err
		}
		return Field{Number: number, Wire: wireType, Value: BytesValue(data)}, nil

	default:
		return Field{}, ErrUnknownWireType
	}
}

// DecodeAll decodes data as one flat field sequence. The entire buffer
// must decode cleanly: any field error aborts the whole attempt with no
// partial result, and trailing bytes that cannot form a field make the
// buffer invalid rather than mostly-valid. Length-delimited payloads
// are returned unresolved as KindBytes.
func DecodeAll(data []byte) ([]Field, error) {
	d := NewDecoder(data)

	var fields []Field
	for {
		f, err := d.DecodeField()
		if err == io.EOF {
			return fields, nil
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
}
