package core

import "strings"

// Suggest returns the candidate closest to input, for "did you mean"
// messages. Matching ignores case. It returns "" when nothing is within
// a small edit distance.
func Suggest(input string, candidates []string) string {
	const maxDistance = 3
	in := strings.ToLower(input)

	var best string
	bestDistance := maxDistance + 1
	for _, c := range candidates {
		if d := editDistance(in, strings.ToLower(c)); d < bestDistance {
			bestDistance = d
			best = c
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, in runes.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	cur := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(rb); i++ {
		cur[0] = i
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			cur[j] = 1 + min(prev[j-1], cur[j-1], prev[j])
		}
		prev, cur = cur, prev
	}
	return prev[len(ra)]
}
