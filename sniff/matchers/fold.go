package matchers

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/pivotal-cf/fuss/ranges"
)

// searchable is the form of a string the substring matcher searches in,
// together with a way back to offsets of the original string.
type searchable struct {
	text string

	// origin[i] is the offset in the original string of the rune whose
	// fold starts at i, or -1 if i falls inside a fold. A nil origin
	// means text is the original string.
	origin []int
}

func verbatim(s string) searchable {
	return searchable{text: s}
}

// fold case-folds s one rune at a time so that every folded rune can be
// traced back to it. Folding may change lengths, e.g. "ß" folds to "ss".
// Invalid UTF-8 bytes are kept as they are.
func fold(caser cases.Caser, s string) searchable {
	var b strings.Builder
	b.Grow(len(s))

	origin := make([]int, 0, len(s)+1)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		folded := s[i : i+size]
		if r != utf8.RuneError || size > 1 {
			if f := caser.String(folded); f != "" {
				folded = f
			}
		}

		origin = append(origin, i)
		for j := 1; j < len(folded); j++ {
			origin = append(origin, -1)
		}

		b.WriteString(folded)
		i += size
	}

	return searchable{
		text:   b.String(),
		origin: append(origin, len(s)),
	}
}

func (c searchable) offset(i int) int {
	if c.origin == nil {
		return i
	}

	return c.origin[i]
}

// span maps [start, end) of c.text to a range of the original string. It
// fails when either end splits the fold of a single original rune.
func (c searchable) span(start, end int) (ranges.Range, bool) {
	s, e := c.offset(start), c.offset(end)
	if s < 0 || e < 0 {
		return ranges.Range{}, false
	}

	r, err := ranges.New(s, e)
	if err != nil {
		return ranges.Range{}, false
	}

	return r, true
}

func (c searchable) prefix(pattern string) (ranges.Range, bool) {
	if !strings.HasPrefix(c.text, pattern) {
		return ranges.Range{}, false
	}

	return c.span(0, len(pattern))
}

func (c searchable) suffix(pattern string) (ranges.Range, bool) {
	if !strings.HasSuffix(c.text, pattern) {
		return ranges.Range{}, false
	}

	return c.span(len(c.text)-len(pattern), len(c.text))
}

// index finds the leftmost occurrence of pattern that maps back onto whole
// runes of the original string.
func (c searchable) index(pattern string) (ranges.Range, bool) {
	for from := 0; from+len(pattern) <= len(c.text); {
		i := strings.Index(c.text[from:], pattern)
		if i < 0 {
			break
		}

		start := from + i
		if r, ok := c.span(start, start+len(pattern)); ok {
			return r, true
		}

		from = start + 1
	}

	return ranges.Range{}, false
}
