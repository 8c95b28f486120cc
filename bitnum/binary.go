package bitnum

// MarshalBinary implements encoding.BinaryMarshaler. The bits are packed
// big-endian into bytes with the first byte padded with leading zeros.
func (n Number) MarshalBinary() (data []byte, err error) {
	v := trim(n.bits)

	// Note: Zero is encoded as a single zero byte rather than no bytes.
	if len(v) == 0 {
		return []byte{0}, nil
	}

	data = make([]byte, (len(v)+7)/8)
	pad := len(data)*8 - len(v)

	for i, b := range v {
		if !b {
			continue
		}

		p := pad + i
		data[p/8] |= 0b1000_0000 >> (p % 8)
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("empty data")
	}

	bits := make([]bool, 0, len(data)*8)
	for _, d := range data {
		for i := 0; i < 8; i++ {
			bits = append(bits, d&(0b1000_0000>>i) != 0)
		}
	}

	n.bits = normalize(bits)

	return nil
}
