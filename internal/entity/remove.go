package entity

// RemoveIndices removes the elements at indices, which must be ascending as
// collected by a forward pass. Removal runs from the back so earlier indices
// stay valid, and survivors keep their relative order.
func RemoveIndices[T any](items []T, indices []int) []T {
	n := len(items)
	for i := len(indices) - 1; i >= 0; i-- {
		idx := indices[i]
		items = append(items[:idx], items[idx+1:]...)
	}
	var zero T
	for i := len(items); i < n; i++ {
		items[:n][i] = zero
	}
	return items
}
