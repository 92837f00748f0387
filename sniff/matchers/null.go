package matchers

import "github.com/pivotal-cf/fuss/matches"

type nullMatcher struct{}

func NewNullMatcher() Matcher {
	return &nullMatcher{}
}

func (n *nullMatcher) Match(string, string) (matches.RangedMatch[string], bool) {
	return matches.RangedMatch[string]{}, false
}
