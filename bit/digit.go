package bit

var digits = [10][]bool{
	{},
	{true},
	{true, false},
	{true, true},
	{true, false, false},
	{true, false, true},
	{true, true, false},
	{true, true, true},
	{true, false, false, false},
	{true, false, false, true},
}

// Digit returns the bits for the decimal digit c. Anything other than '0'
// through '9' returns an empty sequence.
func Digit(c byte) []bool {
	if c < '0' || c > '9' {
		return []bool{}
	}

	d := digits[c-'0']
	bits := make([]bool, len(d))
	copy(bits, d)

	return bits
}

// Char returns the decimal digit character for bits. Leading zero bits are
// ignored. If bits hold a value of ten or more then ok is false.
func Char(bits []bool) (c byte, ok bool) {
	for len(bits) > 0 && !bits[0] {
		bits = bits[1:]
	}

	for i, d := range digits {
		if equal(d, bits) {
			return '0' + byte(i), true
		}
	}

	return 0, false
}

// IsDecimal returns true if every character of s is an ASCII digit. The empty
// string is decimal.
func IsDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func equal(a, b []bool) bool {
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
