package editdist

// Levenshtein returns the code point-wise Levenshtein distance between
// source and target: the minimum number of single code point insertions,
// deletions and substitutions needed to turn one into the other.
//
// Invalid UTF-8 sequences are treated as if they decoded to utf8.RuneError,
// so two invalid sequences are considered equal regardless of their content.
func Levenshtein(source, target string) int {
	s, t := []rune(source), []rune(target)

	// A shared prefix or suffix never contributes to the distance,
	// so strip both before allocating the table.
	s, t = skipPrefix(s, t)
	s, t = skipSuffix(s, t)

	n, m := len(s), len(t)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	// Wagner-Fischer. d.get(i, j) is the distance between the length-i
	// prefix of s and the length-j prefix of t.
	d := newGrid(n+1, m+1, 0)
	for i := 0; i <= n; i++ {
		d.set(i, 0, i)
	}
	for j := 0; j <= m; j++ {
		d.set(0, j, j)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if s[i-1] == t[j-1] {
				d.set(i, j, d.get(i-1, j-1))
				continue
			}
			d.set(i, j, 1+min(
				d.get(i-1, j),   // deletion
				d.get(i, j-1),   // insertion
				d.get(i-1, j-1), // substitution
			))
		}
	}

	return d.get(n, m)
}
