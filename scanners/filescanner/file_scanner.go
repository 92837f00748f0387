package filescanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/fuss/scanners"
)

const MaxLineSize = 1024 * 1024

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
}

func New(r io.Reader, path string) *fileScanner {
	bufioScanner := bufio.NewScanner(r)
	bufioScanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	return &fileScanner{
		path:         path,
		bufioScanner: bufioScanner,
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("file-scanner", lager.Data{"path": s.path})

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err, lager.Data{"line-number": s.lineNumber + 1})
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

func (s *fileScanner) Line(logger lager.Logger) *scanners.Line {
	return &scanners.Line{
		Content:    s.bufioScanner.Text(),
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.bufioScanner.Err()
}
