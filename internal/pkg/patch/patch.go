package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// NonZero returns v unless it is the zero value, in which case fallback is returned
func NonZero[T comparable](v T, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
