package editdist

import "testing"

func TestDamerauLevenshtein(t *testing.T) {
	for _, c := range []struct {
		a, b string
		dist int
	}{
		{"", "", 0},
		{"", "a cat", 5},
		{"an act", "a cat", 2},
		{"CA", "ABC", 2},
		{"MERCEDES-BENS", "MERCEDES-BENZ", 1},
		{"some string", "some string", 0},
		{"some string", "some other string", 6},
		{"kitten", "sitting", 3},
		{"teh", "the", 1},
		{"naïve", "naive", 1},
	} {
		if d := DamerauLevenshtein(c.a, c.b); d != c.dist {
			t.Errorf("DamerauLevenshtein(%q, %q) = %d; wanted %d",
				c.a, c.b, d, c.dist)
		}
		if r := DamerauLevenshtein(c.b, c.a); r != c.dist {
			t.Errorf("DamerauLevenshtein(%q, %q) = %d; wanted %d",
				c.b, c.a, r, c.dist)
		}
	}

	testSymmetry(t, DamerauLevenshtein, "Damerau-Levenshtein")
	testIdentity(t, DamerauLevenshtein, "Damerau-Levenshtein")
	testTriangle(t, DamerauLevenshtein, "Damerau-Levenshtein")
}

func TestDamerauLevenshteinTransposition(t *testing.T) {
	for _, c := range []struct {
		a, b string
		dist int
	}{
		{"ab", "ba", 1},
		{"xxxAByyy", "xxxBAyyy", 1},
		{"ABxxxxCD", "BAxxxxDC", 2},
		// Unrestricted variant: the transposed pair may be edited again,
		// so CA -> AC -> ABC needs only two operations.
		{"CA", "ABC", 2},
	} {
		if d := DamerauLevenshtein(c.a, c.b); d != c.dist {
			t.Errorf("d(%q, %q) = %d, want %d", c.a, c.b, d, c.dist)
		}
	}
}

func TestDamerauLevenshteinEmpty(t *testing.T) {
	for _, s := range []string{"", "a", "a cat", "naïve"} {
		want := len([]rune(s))
		if d := DamerauLevenshtein("", s); d != want {
			t.Errorf(`DamerauLevenshtein("", %q) = %d, want %d`, s, d, want)
		}
		if d := DamerauLevenshtein(s, ""); d != want {
			t.Errorf(`DamerauLevenshtein(%q, "") = %d, want %d`, s, d, want)
		}
	}
}

// Allowing transpositions can only lower the cost, never raise it.
func TestDamerauAtMostLevenshtein(t *testing.T) {
	for i := range cases {
		for j := range cases {
			a, b := cases[i].a, cases[j].b
			dl := DamerauLevenshtein(a, b)
			lev := Levenshtein(a, b)
			if dl > lev {
				t.Errorf("DamerauLevenshtein(%q, %q) = %d > Levenshtein = %d",
					a, b, dl, lev)
			}
		}
	}
}

func BenchmarkDamerauLevenshtein(b *testing.B) { benchmark(b, DamerauLevenshtein) }
