package sorting

// Insertion sorts s by shifting the greater values of the sorted
// prefix one position to the right and writing each value into
// the gap
func Insertion[T any](s []T, cmp func(a, b T) int) {
	for i := 1; i < len(s); i++ {
		value := s[i]
		j := i
		for ; j > 0 && cmp(value, s[j-1]) < 0; j-- {
			s[j] = s[j-1]
		}
		s[j] = value
	}
}
