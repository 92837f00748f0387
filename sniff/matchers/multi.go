package matchers

import "github.com/pivotal-cf/fuss/matches"

// First tries each matcher in turn and returns the first match found.
func First(matchers ...Matcher) Matcher {
	return &first{
		matchers: matchers,
	}
}

type first struct {
	matchers []Matcher
}

func (f *first) Match(candidate, pattern string) (matches.RangedMatch[string], bool) {
	for _, matcher := range f.matchers {
		if match, ok := matcher.Match(candidate, pattern); ok {
			return match, true
		}
	}

	return matches.RangedMatch[string]{}, false
}
