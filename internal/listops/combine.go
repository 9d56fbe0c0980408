// Package listops combines sequences element by element.
package listops

// List is the designated list type accepted by Combine.
type List []any

// Tuple is an ordered sequence that is deliberately not a List. Combine
// rejects it even though it has the same shape.
type Tuple []any

// Combine adds a and b element-wise. Both arguments must be a List of the same
// length and every pair must support Add; otherwise the result is an empty
// List and any partial work is discarded.
func Combine(a, b any) List {
	out, ok := TryCombine(a, b)
	if !ok {
		return List{}
	}
	return out
}

// TryCombine is Combine with an explicit success flag, which distinguishes a
// failure from the empty result of combining two empty lists.
func TryCombine(a, b any) (List, bool) {
	left, ok := a.(List)
	if !ok {
		return nil, false
	}
	right, ok := b.(List)
	if !ok {
		return nil, false
	}
	if len(left) != len(right) {
		return nil, false
	}

	out := make(List, 0, len(left))
	for i := range left {
		sum, ok := Add(left[i], right[i])
		if !ok {
			return nil, false
		}
		out = append(out, sum)
	}
	return out, true
}

// Add applies the additive operator to a pair of values. Integers add to an
// int unless the sum overflows, a float64 on either side promotes the result
// to float64, strings concatenate and lists (or tuples) concatenate into a new
// sequence of the same type. Booleans count as the integers 0 and 1. Any
// other combination, nil included, is unsupported.
func Add(a, b any) (any, bool) {
	a, b = boolToInt(a), boolToInt(b)

	switch x := a.(type) {
	case int:
		switch y := b.(type) {
		case int:
			return addInt(x, y)
		case float64:
			return float64(x) + y, true
		}
	case float64:
		switch y := b.(type) {
		case int:
			return x + float64(y), true
		case float64:
			return x + y, true
		}
	case string:
		if y, ok := b.(string); ok {
			return x + y, true
		}
	case List:
		if y, ok := b.(List); ok {
			return append(append(make(List, 0, len(x)+len(y)), x...), y...), true
		}
	case Tuple:
		if y, ok := b.(Tuple); ok {
			return append(append(make(Tuple, 0, len(x)+len(y)), x...), y...), true
		}
	}
	return nil, false
}

// addInt fails instead of wrapping around.
func addInt(x, y int) (any, bool) {
	sum := x + y
	if (x > 0 && y > 0 && sum < 0) || (x < 0 && y < 0 && sum >= 0) {
		return nil, false
	}
	return sum, true
}

func boolToInt(v any) any {
	b, ok := v.(bool)
	if !ok {
		return v
	}
	if b {
		return 1
	}
	return 0
}

// Addable lists the element types CombineSlices works with.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// CombineSlices is the statically typed form of Combine. It reports false
// when the slices differ in length.
func CombineSlices[T Addable](a, b []T) ([]T, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, true
}
