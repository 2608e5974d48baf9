package wire

import "fmt"

// DecodeBytes decodes a varint length followed by that many raw bytes.
// The returned slice shares the decoder's underlying buffer rather than
// copying: the original input is the sole backing store for everything
// decoded out of it.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	length, err := d.DecodeVarint()
	if err != nil {
		return nil, fmt.Errorf("decode bytes length: %w", err)
	}

	// Compare in uint64 so a hostile length cannot wrap a signed int.
	if length > uint64(len(d.buf)-d.pos) {
		return nil, ErrTruncated
	}

	data := d.buf[d.pos : d.pos+int(length)]
	d.pos += int(length)
	return data, nil
}

// EncodeBytes appends a varint length prefix followed by data.
func (e *Encoder) EncodeBytes(data []byte) {
	e.EncodeVarint(uint64(len(data)))
	e.buf = append(e.buf, data...)
}
