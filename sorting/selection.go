package sorting

// Selection sorts s by swapping the minimum of the unsorted
// suffix into its first position
func Selection[T any](s []T, cmp func(a, b T) int) {
	for i := 0; i < len(s)-1; i++ {
		lowest := i
		for j := i + 1; j < len(s); j++ {
			if cmp(s[j], s[lowest]) < 0 {
				lowest = j
			}
		}

		if lowest != i {
			s[i], s[lowest] = s[lowest], s[i]
		}
	}
}
