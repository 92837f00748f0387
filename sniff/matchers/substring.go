package matchers

import (
	"golang.org/x/text/cases"

	"github.com/pivotal-cf/fuss/matches"
	"github.com/pivotal-cf/fuss/ranges"
)

// DefaultScore is the score given to every substring match. Ranking is
// left to callers.
const DefaultScore = 0

// SubstringConfig is the zero-value-ready configuration of a substring
// matcher: by default the pattern may occur anywhere and case is ignored.
type SubstringConfig struct {
	Occurrence    Occurrence
	CaseSensitive bool
}

type substringMatcher struct {
	config SubstringConfig
}

func Substring(config SubstringConfig) Matcher {
	return &substringMatcher{
		config: config,
	}
}

// Match looks for pattern in candidate. The returned match carries the
// candidate as its item and a single range, in the candidate's own byte
// offsets, covering the matched text. An empty pattern never matches.
func (m *substringMatcher) Match(candidate, pattern string) (matches.RangedMatch[string], bool) {
	if pattern == "" {
		return matches.RangedMatch[string]{}, false
	}

	c, p := m.searchables(candidate, pattern)

	var (
		r     ranges.Range
		found bool
	)

	switch m.config.Occurrence {
	case Any:
		r, found = c.index(p)
	case Prefix:
		r, found = c.prefix(p)
	case Suffix:
		r, found = c.suffix(p)
	}

	if !found {
		return matches.RangedMatch[string]{}, false
	}

	return matches.ItemWithRanges(candidate, DefaultScore, r), true
}

func (m *substringMatcher) searchables(candidate, pattern string) (searchable, string) {
	if m.config.CaseSensitive {
		return verbatim(candidate), pattern
	}

	// casers are stateful and must not be shared between goroutines
	caser := cases.Fold()

	return fold(caser, candidate), fold(caser, pattern).text
}
