// Package fuzzy scores how similar two strings are on a 0-100 scale.
// All functions operate on runes, so Devanagari and Latin input behave the
// same way.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Normalize lower-cases s, trims surrounding space and drops trailing
// question marks.
func Normalize(s string) string {
	s = strings.TrimSpace(lower.String(s))
	s = strings.TrimRight(s, "?")
	return strings.TrimSpace(s)
}

// Ratio is 100 * 2 * LCS / (len(a) + len(b)) rounded to the nearest
// integer, where LCS is the longest common subsequence. Empty input scores 0.
func Ratio(a, b string) int {
	return ratio([]rune(a), []rune(b))
}

func ratio(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	l := lcs(a, b)
	return int(math.Round(200 * float64(l) / float64(len(a)+len(b))))
}

func lcs(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for _, x := range a {
		for j, y := range b {
			switch {
			case x == y:
				cur[j+1] = prev[j] + 1
			case prev[j+1] >= cur[j]:
				cur[j+1] = prev[j+1]
			default:
				cur[j+1] = cur[j]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// PartialRatio is the best Ratio between the shorter string and the
// windows of the longer one that line up with a block both strings share.
// A window running past the end of the longer string is cut short.
func PartialRatio(a, b string) int {
	s, l := []rune(a), []rune(b)
	if len(s) > len(l) {
		s, l = l, s
	}
	if len(s) == 0 {
		return 0
	}

	best := 0
	for _, m := range matchingBlocks(s, l) {
		start := max(0, m.j-m.i)
		end := min(len(l), start+len(s))
		if r := ratio(s, l[start:end]); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// block is a run of n equal runes at a[i:] and b[j:].
type block struct{ i, j, n int }

// matchingBlocks splits a and b around their longest common substring and
// recurses on both sides. The result ends with the empty block
// {len(a), len(b), 0}.
func matchingBlocks(a, b []rune) []block {
	var out []block
	var walk func(alo, ahi, blo, bhi int)
	walk = func(alo, ahi, blo, bhi int) {
		m := longestMatch(a, b, alo, ahi, blo, bhi)
		if m.n == 0 {
			return
		}
		walk(alo, m.i, blo, m.j)
		out = append(out, m)
		walk(m.i+m.n, ahi, m.j+m.n, bhi)
	}
	walk(0, len(a), 0, len(b))
	return append(out, block{len(a), len(b), 0})
}

// longestMatch finds the longest common substring of a[alo:ahi] and
// b[blo:bhi], preferring the earliest start in a, then in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) block {
	best := block{alo, blo, 0}
	prev := make([]int, bhi-blo+1)
	cur := make([]int, bhi-blo+1)
	for i := alo; i < ahi; i++ {
		for j := blo; j < bhi; j++ {
			k := 0
			if a[i] == b[j] {
				k = prev[j-blo] + 1
			}
			cur[j-blo+1] = k
			if k > best.n {
				best = block{i - k + 1, j - k + 1, k}
			}
		}
		prev, cur = cur, prev
	}
	return best
}

// TokenSortRatio compares the two strings after splitting them into words
// and sorting the words, so word order does not matter.
func TokenSortRatio(a, b string) int {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// Best returns the highest of Ratio, PartialRatio and TokenSortRatio.
func Best(a, b string) int {
	return max(Ratio(a, b), PartialRatio(a, b), TokenSortRatio(a, b))
}

// Tokens lower-cases s and splits it on every rune that is not a letter,
// mark, digit or underscore.
func Tokens(s string) []string {
	return strings.FieldsFunc(lower.String(s), func(r rune) bool { return !IsWordRune(r) })
}

// IsWordRune reports whether r belongs to a word. Marks are included so
// Devanagari vowel signs stay attached to their consonants.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func sortedTokens(s string) string {
	toks := Tokens(s)
	sort.Strings(toks)
	return strings.Join(toks, " ")
}
