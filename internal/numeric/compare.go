package numeric

// Compare orders two floating-point values.
//
// It returns 1 when a < b, -1 when a > b and 0 when they are equal. Only
// float64 operands are comparable: when either argument carries any other
// type (integers included, even if numerically equal) the result is 0.
func Compare(a, b any) int {
	x, ok := a.(float64)
	if !ok {
		return 0
	}
	y, ok := b.(float64)
	if !ok {
		return 0
	}

	switch {
	case x < y:
		return 1
	case x > y:
		return -1
	default:
		return 0
	}
}
