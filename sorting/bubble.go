package sorting

// Bubble sorts s by repeatedly swapping adjacent values that are
// out of order. After each pass the highest value of the unsorted
// prefix is in its final position
func Bubble[T any](s []T, cmp func(a, b T) int) {
	for end := len(s) - 1; end > 0; end-- {
		for i := 0; i < end; i++ {
			if cmp(s[i], s[i+1]) > 0 {
				s[i], s[i+1] = s[i+1], s[i]
			}
		}
	}
}
