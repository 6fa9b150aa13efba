package textutil

import "unicode/utf8"

// LevenshteinDistance returns the minimum number of single-rune insertions,
// deletions and substitutions needed to turn a into b.
//
// It runs in O(len(a)·len(b)) time and keeps a single row sized to the
// shorter input.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range ra {
		diag := row[0]
		row[0] = i + 1
		for j, cb := range rb {
			cost := 1
			if ca == cb {
				cost = 0
			}
			next := min(row[j+1]+1, row[j]+1, diag+cost)
			diag = row[j+1]
			row[j+1] = next
		}
	}

	return row[len(rb)]
}

// Similarity maps the edit distance onto [0, 1], where 1 means identical.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(LevenshteinDistance(a, b))/float64(longest)
}

// Closest returns the candidate with the smallest edit distance to target.
// Ties go to the earlier candidate. ok is false when candidates is empty or
// no candidate is within maxDistance; a negative maxDistance disables the
// limit.
func Closest(target string, candidates []string, maxDistance int) (best string, distance int, ok bool) {
	distance = -1
	for _, c := range candidates {
		d := LevenshteinDistance(target, c)
		if maxDistance >= 0 && d > maxDistance {
			continue
		}
		if distance < 0 || d < distance {
			best, distance = c, d
		}
	}
	if distance < 0 {
		return "", 0, false
	}
	return best, distance, true
}
