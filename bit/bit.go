package bit

// AddThree adds three bits and returns the carry and the sum.
func AddThree(lhs, rhs, carry bool) (carryOut, sum bool) {
	sum = lhs != rhs != carry
	carryOut = (lhs && rhs) || (lhs && carry) || (rhs && carry)

	return carryOut, sum
}

// SubThree subtracts rhs and borrow from lhs and returns the borrow and the
// difference.
func SubThree(lhs, rhs, borrow bool) (borrowOut, diff bool) {
	diff = lhs != rhs != borrow
	borrowOut = (!lhs && (rhs || borrow)) || (lhs && rhs && borrow)

	return borrowOut, diff
}
