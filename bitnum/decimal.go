package bitnum

import (
	"github.com/calebcase/bitnum/bit"
)

var ten = []bool{true, false, true, false}

// FromDecimal returns the number for the decimal digits in text. Any
// character other than '0' through '9', or empty text, is an InvalidInput
// error.
func FromDecimal(text string) (n Number, err error) {
	if text == "" {
		return Number{}, InvalidInput.New("empty")
	}

	if !bit.IsDecimal(text) {
		return Number{}, InvalidInput.New("not a decimal number: %q", text)
	}

	base := Number{bits: ten}
	one := One()

	total := Zero()
	position := Zero()

	for i := len(text) - 1; i >= 0; i-- {
		digit := FromBits(bit.Digit(text[i]))

		total = total.Add(digit.Mul(base.Pow(position)))
		position = position.Add(one)
	}

	return total, nil
}

// MustDecimal is like FromDecimal but panics on error.
func MustDecimal(text string) Number {
	n, err := FromDecimal(text)
	if err != nil {
		panic(err)
	}

	return n
}

// Decimal returns the base 10 digits of n.
func (n Number) Decimal() string {
	v := trim(n.bits)
	if len(v) == 0 {
		return "0"
	}

	var digits []byte

	for len(v) > 0 {
		q, r := divmod(v, ten)

		c, ok := bit.Char(r)
		if !ok {
			panic("remainder out of range: " + Number{bits: r}.BitString())
		}

		digits = append(digits, c)
		v = trim(q)
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}

// String implements fmt.Stringer. It returns the decimal digits.
func (n Number) String() string {
	return n.Decimal()
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() (text []byte, err error) {
	return []byte(n.Decimal()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) (err error) {
	v, err := FromDecimal(string(text))
	if err != nil {
		return err
	}

	*n = v

	return nil
}
