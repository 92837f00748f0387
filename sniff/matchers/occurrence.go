package matchers

import (
	"errors"
	"fmt"
)

var ErrUnknownOccurrence = errors.New("unknown occurrence")

// Occurrence constrains where in a candidate the pattern has to appear.
type Occurrence int

const (
	Any Occurrence = iota
	Prefix
	Suffix
)

var occurrenceNames = map[Occurrence]string{
	Any:    "any",
	Prefix: "prefix",
	Suffix: "suffix",
}

func ParseOccurrence(name string) (Occurrence, error) {
	for o, n := range occurrenceNames {
		if n == name {
			return o, nil
		}
	}

	return Any, fmt.Errorf("%w: %q", ErrUnknownOccurrence, name)
}

func (o Occurrence) String() string {
	if name, ok := occurrenceNames[o]; ok {
		return name
	}

	return fmt.Sprintf("occurrence(%d)", int(o))
}
