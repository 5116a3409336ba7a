package slicest

// Reduce

// Reduce folds s into U, starting from U's zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var acc U
	for _, t := range s {
		acc = fn(t, acc)
	}
	return acc
}

// Map

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}

// Filter

// Filter returns the elements of s for which keep returns true, in order.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	result := make(S, 0, len(s))
	for _, t := range s {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// Partition splits s into the elements matching pred and the rest.
// Relative order is preserved within both results.
func Partition[T any, S ~[]T](s S, pred func(T) bool) (matched, rest S) {
	matched = make(S, 0, len(s))
	rest = make(S, 0, len(s))
	for _, t := range s {
		if pred(t) {
			matched = append(matched, t)
		} else {
			rest = append(rest, t)
		}
	}
	return matched, rest
}
