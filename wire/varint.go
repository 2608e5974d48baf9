package wire

// DecodeVarint decodes a base-128 varint from the current position.
// Groups are little-endian, seven payload bits per byte, high bit set on
// every byte except the last. At most 10 bytes are read for a 64-bit
// value; a 10-byte varint is accepted with any bits above 64 discarded.
func (d *Decoder) DecodeVarint() (uint64, error) {
	var result uint64
	var shift uint

	for i := 0; i < 10; i++ { // max 10 bytes for a 64-bit varint
		if d.pos >= len(d.buf) {
			return 0, ErrTruncated
		}

		b := d.buf[d.pos]
		d.pos++

		result |= uint64(b&0x7F) << shift

		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
	}

	return 0, ErrOverflow
}

// EncodeVarint appends v in base-128 varint form.
func (e *Encoder) EncodeVarint(v uint64) {
	for v >= 0x80 {
		e.buf = append(e.buf, byte(v)|0x80)
		v >>= 7
	}
	e.buf = append(e.buf, byte(v))
}

// VarintSize returns the number of bytes EncodeVarint uses for v.
func VarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
