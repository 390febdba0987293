package document

// Move returns a copy of list with the element at from repositioned to
// to, shifting the elements in between. Any out-of-bounds index leaves
// the content unchanged; the returned slice is always a fresh copy.
func Move[T any](list []T, from, to int) []T {
	out := make([]T, len(list))
	copy(out, list)

	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return out
	}

	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{item}, out[to:]...)...)
	return out
}
