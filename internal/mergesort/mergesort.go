// Package mergesort implements a comparator-based top-down merge sort.
// The solver uses it to rank unset cells by candidate count; it carries no
// sudoku knowledge of its own.
package mergesort

// Sort returns the items ordered by less, a strict "comes before"
// predicate: less(a, b) true means a ranks ahead of b. The input slice is
// never mutated; the result is freshly allocated. Ties keep the first
// half's element ahead, which makes the sort stable. Empty input returns
// an empty slice.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	mid := len(items) / 2
	a := Sort(items[:mid], less)
	b := Sort(items[mid:], less)
	return merge(a, b, less)
}

// merge interleaves two sorted runs. The head of a wins whenever b's head
// is not strictly less, preserving the relative order of equal elements.
func merge[T any](a, b []T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
