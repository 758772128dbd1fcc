package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Duplicates returns every key that occurs more than once in s, in order of
// its second occurrence.
func Duplicates[S ~[]E, E any](s S, key func(E) string) []string {
	seen := make(map[string]struct{}, len(s))

	var dups []string

	for _, e := range s {
		k := key(e)
		if _, ok := seen[k]; ok {
			dups = append(dups, k)
			continue
		}

		seen[k] = struct{}{}
	}

	return dups
}
