package matchers

import "github.com/pivotal-cf/fuss/matches"

//go:generate counterfeiter . Matcher

type Matcher interface {
	Match(candidate, pattern string) (matches.RangedMatch[string], bool)
}
