// Package editdist implements the Levenshtein and Damerau-Levenshtein
// string edit distances over Unicode code points.
//
// Both metrics compare code points by exact value. No case folding,
// locale collation or grapheme cluster segmentation is performed, and
// neither input is Unicode-normalized; callers that want normalized
// comparison must normalize before calling.
package editdist

// Utility code.

// Skip longest common prefix of a and b.
func skipPrefix(a, b []rune) ([]rune, []rune) {
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a = a[1:]
		b = b[1:]
	}
	return a, b
}

// Skip longest common suffix of a and b.
func skipSuffix(a, b []rune) ([]rune, []rune) {
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a = a[:len(a)-1]
		b = b[:len(b)-1]
	}
	return a, b
}
