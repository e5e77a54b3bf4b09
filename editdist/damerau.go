package editdist

// DamerauLevenshtein returns the code point-wise Damerau-Levenshtein
// distance between source and target: the minimum number of single code
// point insertions, deletions, substitutions and adjacent transpositions
// needed to turn one into the other.
//
// This is the unrestricted-transposition variant (Lowrance and Wagner,
// "An Extension of the String-to-String Correction Problem", JACM 1975),
// not the optimal string alignment one: a transposed pair may be edited
// again afterwards.
//
// Invalid UTF-8 sequences are treated as if they decoded to utf8.RuneError,
// so two invalid sequences are considered equal regardless of their content.
func DamerauLevenshtein(source, target string) int {
	s, t := []rune(source), []rune(target)
	n, m := len(s), len(t)

	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	if n == m && source == target {
		return 0
	}

	// inf is an upper bound no real distance can reach; it marks border
	// cells for which no valid prior alignment exists, so a single int
	// type suffices for the whole table.
	inf := n + m

	// The table has two extra rows and columns for the sentinel border.
	// d.get(i+1, j+1) is the distance between the length-i prefix of s
	// and the length-j prefix of t.
	d := newGrid(n+2, m+2, 0)
	d.set(0, 0, inf)
	for i := 0; i <= n; i++ {
		d.set(i+1, 0, inf)
		d.set(i+1, 1, i)
	}
	for j := 0; j <= m; j++ {
		d.set(0, j+1, inf)
		d.set(1, j+1, j)
	}

	// lastRow[c] is the last row at which code point c matched the
	// target; zero means never.
	lastRow := make(map[rune]int, n)

	for row := 1; row <= n; row++ {
		charS := s[row-1]

		// Last column in this row with an exact match so far.
		lastMatchCol := 0

		for col := 1; col <= m; col++ {
			charT := t[col-1]
			lastMatchRow := lastRow[charT]

			cost := 1
			if charS == charT {
				cost = 0
			}

			distAdd := d.get(row, col+1) + 1
			distDel := d.get(row+1, col) + 1
			distSub := d.get(row, col) + cost
			// Align up to the last matching pair, delete everything
			// strictly between in the source, transpose, then insert
			// everything strictly between in the target.
			distTrans := d.get(lastMatchRow, lastMatchCol) +
				(row - lastMatchRow - 1) + 1 + (col - lastMatchCol - 1)

			d.set(row+1, col+1, min(distAdd, distDel, distSub, distTrans))

			if cost == 0 {
				lastMatchCol = col
			}
		}

		lastRow[charS] = row
	}

	return d.get(n+1, m+1)
}
