package sorting

// Merge sorts s by splitting it in halves, sorting them and
// merging the results. It is stable and uses a buffer of the
// same length as s
func Merge[T any](s []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}

	buf := make([]T, len(s))
	mergeSort(s, buf, cmp)
}

func mergeSort[T any](s, buf []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}

	middle := len(s) / 2
	mergeSort(s[:middle], buf[:middle], cmp)
	mergeSort(s[middle:], buf[middle:], cmp)

	left, right := s[:middle], s[middle:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// take from the left on ties to keep the sort stable
		if cmp(right[j], left[i]) < 0 {
			buf[k] = right[j]
			j++
		} else {
			buf[k] = left[i]
			i++
		}
		k++
	}

	k += copy(buf[k:], left[i:])
	copy(buf[k:], right[j:])
	copy(s, buf[:len(s)])
}
