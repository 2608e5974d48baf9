package wire

import "encoding/binary"

// DecodeFixed32 decodes a 4-byte little-endian value.
func (d *Decoder) DecodeFixed32() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, ErrTruncated
	}

	value := binary.LittleEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return value, nil
}

// DecodeFixed64 decodes an 8-byte little-endian value.
func (d *Decoder) DecodeFixed64() (uint64, error) {
	if d.pos+8 > len(d.buf) {
		return 0, ErrTruncated
	}

	value := binary.LittleEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return value, nil
}

// EncodeFixed32 appends v as 4 little-endian bytes.
func (e *Encoder) EncodeFixed32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

// EncodeFixed64 appends v as 8 little-endian bytes.
func (e *Encoder) EncodeFixed64(v uint64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}
