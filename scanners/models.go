package scanners

import (
	"github.com/pivotal-cf/fuss/matches"
)

type Line struct {
	Path       string
	LineNumber int
	Content    string
}

// Hit is a line that matched the pattern being searched for.
type Hit struct {
	Line  Line
	Match matches.RangedMatch[string]
}

// Matched returns the text of the line under each merged range.
func (h Hit) Matched() []string {
	merged, ok := h.Match.MergedRanges()
	if !ok {
		return nil
	}

	matched := make([]string, 0, len(merged))
	for _, r := range merged {
		s, err := r.Slice(h.Line.Content)
		if err != nil {
			continue
		}
		matched = append(matched, s)
	}

	return matched
}
