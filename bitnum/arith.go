package bitnum

import "github.com/calebcase/bitnum/bit"

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return Number{bits: normalize(add(n.value(), m.value()))}
}

// Mul returns n * m.
func (n Number) Mul(m Number) Number {
	return Number{bits: normalize(mul(n.value(), m.value()))}
}

// Pow returns n raised to exponent by repeated multiplication. Pow of
// anything to zero is one.
//
// NOTE: This performs exponent multiplications.
func (n Number) Pow(exponent Number) Number {
	one := One()
	counter := Zero()
	product := One()

	for !counter.Equal(exponent) {
		product = n.Mul(product)
		counter = counter.Add(one)
	}

	return product
}

// add returns a + b. Missing high bits of the shorter operand are zero. The
// result is one bit longer than the longest operand only if a carry remains.
func add(a, b []bool) []bool {
	size := len(a)
	if len(b) > size {
		size = len(b)
	}

	sum := make([]bool, 0, size+1)
	carry := false

	for i, j := len(a)-1, len(b)-1; i >= 0 || j >= 0; i, j = i-1, j-1 {
		var lhs, rhs, s bool

		if i >= 0 {
			lhs = a[i]
		}

		if j >= 0 {
			rhs = b[j]
		}

		carry, s = bit.AddThree(lhs, rhs, carry)
		sum = append(sum, s)
	}

	if carry {
		sum = append(sum, true)
	}

	reverse(sum)

	return sum
}

// mul returns a * b using shift and add over the bits of a.
func mul(a, b []bool) []bool {
	shifted := make([]bool, len(b), len(a)+len(b))
	copy(shifted, b)

	product := []bool{}

	for i := len(a) - 1; i >= 0; i-- {
		if a[i] {
			product = add(product, shifted)
		}

		shifted = append(shifted, false)
	}

	return product
}

// sub returns a - b. If b is larger than a then borrow is true and diff is
// not meaningful.
func sub(a, b []bool) (diff []bool, borrow bool) {
	size := len(a)
	if len(b) > size {
		size = len(b)
	}

	diff = make([]bool, 0, size)

	for i, j := len(a)-1, len(b)-1; i >= 0 || j >= 0; i, j = i-1, j-1 {
		var lhs, rhs, d bool

		if i >= 0 {
			lhs = a[i]
		}

		if j >= 0 {
			rhs = b[j]
		}

		borrow, d = bit.SubThree(lhs, rhs, borrow)
		diff = append(diff, d)
	}

	reverse(diff)

	return diff, borrow
}

// divmod returns the quotient and remainder of a / d using long division. d
// must not be zero.
func divmod(a, d []bool) (q, r []bool) {
	q = make([]bool, 0, len(a))
	r = []bool{}

	for _, v := range a {
		r = append(r, v)

		diff, borrow := sub(r, d)
		if borrow {
			q = append(q, false)
		} else {
			q = append(q, true)
			r = diff
		}

		r = trim(r)
	}

	return normalize(q), normalize(r)
}
