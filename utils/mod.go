package utils

// FindIndex returns the index of the first occurrence of item in slice, or
// -1 if item is not present.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
