package namespace

// MatchesTemplate reports whether search matches pattern in full, where each
// `*` in pattern matches zero or more characters and every other character
// matches itself.
//
// Matching is greedy with backtracking to the most recent `*`, so it runs in
// O(len(search)*len(pattern)) without recursion.
func MatchesTemplate(search, pattern string) bool {
	var (
		si, pi int
		star   = -1
		mark   int
	)

	for si < len(search) {
		switch {
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++

		case pi < len(pattern) && pattern[pi] == search[si]:
			si++
			pi++

		case star != -1:
			// Let the last star absorb one more character and retry.
			pi = star + 1
			mark++
			si = mark

		default:
			return false
		}
	}

	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}

	return pi == len(pattern)
}
