package sorting

// Shaker sorts s with bubble passes that alternate direction,
// moving the highest value to the end and then the lowest value
// to the start of the unsorted window
func Shaker[T any](s []T, cmp func(a, b T) int) {
	start, end := 0, len(s)-1

	for start < end {
		swapped := false
		for i := start; i < end; i++ {
			if cmp(s[i], s[i+1]) > 0 {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		end--

		for i := end; i > start; i-- {
			if cmp(s[i-1], s[i]) > 0 {
				s[i-1], s[i] = s[i], s[i-1]
				swapped = true
			}
		}
		start++

		if !swapped {
			return
		}
	}
}
