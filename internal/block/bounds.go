package block

// lowest returns the smallest value of an integer type T.
func lowest[T Number]() T {
	var zero T
	one := zero + 1
	if zero-one > zero {
		return zero
	}
	m := zero - one
	for m+m < m {
		m += m
	}
	return m
}

// highest returns the largest value of an integer type T.
func highest[T Number]() T {
	return lowest[T]() - 1
}

// subSat returns a-d for d >= 0, clamped to the lowest value of T.
func subSat[T Number](a, d T) T {
	if r := a - d; r <= a {
		return r
	}
	return lowest[T]()
}

// addSat returns a+d for d >= 0, clamped to the highest value of T.
func addSat[T Number](a, d T) T {
	if r := a + d; r >= a {
		return r
	}
	return highest[T]()
}
