package sniff

import (
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/fuss/scanners"
	"github.com/pivotal-cf/fuss/sniff/matchers"
)

//go:generate counterfeiter . Scanner

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *scanners.Line
	Err() error
}

//go:generate counterfeiter . Sniffer

type Sniffer interface {
	Sniff(lager.Logger, Scanner, HitHandlerFunc) error
}

type sniffer struct {
	matcher matchers.Matcher
	pattern string
}

func NewSniffer(matcher matchers.Matcher, pattern string) Sniffer {
	return &sniffer{
		matcher: matcher,
		pattern: pattern,
	}
}

// Sniff matches every line of the scanner against the pattern and hands
// each hit to handleHit. A failing handler does not stop the scan; all
// handler errors and any scanner error are returned together.
func (s *sniffer) Sniff(
	logger lager.Logger,
	scanner Scanner,
	handleHit HitHandlerFunc,
) error {
	logger = logger.Session("sniff", lager.Data{"pattern": s.pattern})
	logger.Debug("starting")

	var result error
	hits := 0

	for scanner.Scan(logger) {
		line := scanner.Line(logger)

		match, ok := s.matcher.Match(line.Content, s.pattern)
		if !ok {
			continue
		}

		hits++
		hit := scanners.Hit{
			Line:  *line,
			Match: match,
		}

		err := handleHit(logger, hit)
		if err != nil {
			logger.Error("failed", err, lager.Data{"path": line.Path, "line-number": line.LineNumber})
			result = multierror.Append(result, err)
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("scanning-failed", err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done", lager.Data{"hits": hits})
	return result
}
