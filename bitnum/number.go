package bitnum

import (
	"strings"
)

// Number is a non-negative integer of any size. Numbers are values; no
// operation modifies its operands.
type Number struct {
	bits []bool
}

// Zero returns zero.
func Zero() Number {
	return Number{bits: []bool{false}}
}

// One returns one.
func One() Number {
	return Number{bits: []bool{true}}
}

// FromBits returns the number for the given bits (most significant first).
// The bits are copied.
func FromBits(bits []bool) Number {
	b := make([]bool, len(bits))
	copy(b, bits)

	return Number{bits: normalize(b)}
}

// FromUint64 returns the number for v.
func FromUint64(v uint64) Number {
	bits := make([]bool, 64)
	for i := range bits {
		bits[i] = v&(1<<(63-i)) != 0
	}

	return Number{bits: normalize(bits)}
}

// value returns the bits, mapping the zero value of Number to zero.
func (n Number) value() []bool {
	if len(n.bits) == 0 {
		return []bool{false}
	}

	return n.bits
}

// Bits returns a copy of the bits (most significant first).
func (n Number) Bits() []bool {
	v := n.value()
	bits := make([]bool, len(v))
	copy(bits, v)

	return bits
}

// BitLen returns the number of bits. Zero has one bit.
func (n Number) BitLen() int {
	return len(n.value())
}

// IsZero returns true if n is zero.
func (n Number) IsZero() bool {
	return len(trim(n.bits)) == 0
}

// Normalize returns n with leading zero bits removed.
func (n Number) Normalize() Number {
	return FromBits(n.bits)
}

// Equal returns true if n and m have the same bits.
func (n Number) Equal(m Number) bool {
	a, b := n.value(), m.value()

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// BitString returns the bits as a string of '0' and '1' characters, most
// significant first.
func (n Number) BitString() string {
	v := n.value()

	sb := &strings.Builder{}
	sb.Grow(len(v))

	for _, b := range v {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// trim removes leading zero bits. Zero trims to an empty slice.
func trim(bits []bool) []bool {
	for len(bits) > 0 && !bits[0] {
		bits = bits[1:]
	}

	return bits
}

// normalize trims bits down to the minimal form.
func normalize(bits []bool) []bool {
	bits = trim(bits)
	if len(bits) == 0 {
		return []bool{false}
	}

	return bits
}

func reverse(bits []bool) {
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
}

// Uint64 returns n as a uint64. If n does not fit then ok is false.
func (n Number) Uint64() (v uint64, ok bool) {
	bits := trim(n.bits)
	if len(bits) > 64 {
		return 0, false
	}

	for _, b := range bits {
		v <<= 1
		if b {
			v |= 1
		}
	}

	return v, true
}
