package commands

import (
	"strings"

	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/fuss/ranges"
)

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")

// highlight colours the parts of text covered by rs, which must be sorted
// and must not overlap.
func highlight(text string, rs []ranges.Range) string {
	var b strings.Builder

	cursor := 0
	for _, r := range rs {
		if r.Start() < cursor || r.End() > len(text) {
			continue
		}

		b.WriteString(text[cursor:r.Start()])
		b.WriteString(red(text[r.Start():r.End()]))
		cursor = r.End()
	}
	b.WriteString(text[cursor:])

	return b.String()
}
