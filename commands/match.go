package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/fuss/scanners"
	"github.com/pivotal-cf/fuss/scanners/filescanner"
	"github.com/pivotal-cf/fuss/sniff"
	"github.com/pivotal-cf/fuss/sniff/matchers"
)

const (
	exitMatched   = 0
	exitNoMatches = 1
	exitFailed    = 2
)

type MatchCommand struct {
	File          string `short:"f" long:"file" description:"the file to search, defaults to STDIN" value-name:"FILE"`
	Occurrence    string `long:"occurrence" description:"where in a line the pattern must occur" choice:"any" choice:"prefix" choice:"suffix" default:"any"`
	CaseSensitive bool   `long:"case-sensitive" description:"compare without folding case"`
	ShowRanges    bool   `long:"show-ranges" description:"print the matched ranges of each line"`
	Debug         bool   `long:"debug" description:"enables debug logging" env:"FUSS_DEBUG"`

	Args struct {
		Pattern string `positional-arg-name:"PATTERN" description:"the text to look for"`
	} `positional-args:"yes" required:"yes"`
}

func (command *MatchCommand) Execute(args []string) error {
	logger := lager.NewLogger("match")

	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))
	}

	matcher, err := command.buildMatcher()
	if err != nil {
		return err
	}

	if command.Args.Pattern == "" {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "An empty pattern never matches")
	}

	printer := newHitPrinter(os.Stdout, command.ShowRanges)
	sniffer := sniff.NewSniffer(matcher, command.Args.Pattern)

	err = command.search(logger, sniffer, printer.HandleHit)
	if err != nil {
		fmt.Printf("%s searching failed: %s\n", red("[FAILED]"), err)
		os.Exit(exitFailed)
	}

	if printer.count == 0 {
		os.Exit(exitNoMatches)
	}

	os.Exit(exitMatched)
	return nil
}

func (command *MatchCommand) buildMatcher() (matchers.Matcher, error) {
	occurrence, err := matchers.ParseOccurrence(command.Occurrence)
	if err != nil {
		return nil, err
	}

	return matchers.Substring(matchers.SubstringConfig{
		Occurrence:    occurrence,
		CaseSensitive: command.CaseSensitive,
	}), nil
}

func (command *MatchCommand) search(logger lager.Logger, sniffer sniff.Sniffer, handleFunc sniff.HitHandlerFunc) error {
	if command.File == "" {
		return sniffer.Sniff(logger, filescanner.New(os.Stdin, "STDIN"), handleFunc)
	}

	logger = logger.Session("search-file", lager.Data{"file": command.File})
	logger.Debug("starting")
	defer logger.Debug("done")

	file, err := os.Open(command.File)
	if err != nil {
		logger.Error("failed-to-open", err)
		return err
	}
	defer file.Close()

	return sniffer.Sniff(logger, filescanner.New(file, command.File), handleFunc)
}

func newHitPrinter(out io.Writer, showRanges bool) *hitPrinter {
	return &hitPrinter{
		out:        out,
		showRanges: showRanges,
	}
}

type hitPrinter struct {
	out        io.Writer
	count      int
	showRanges bool
}

func (p *hitPrinter) HandleHit(logger lager.Logger, hit scanners.Hit) error {
	line := hit.Line
	p.count++

	merged, _ := hit.Match.MergedRanges()
	output := fmt.Sprintf("%s:%d: %s", line.Path, line.LineNumber, highlight(line.Content, merged))

	if p.showRanges {
		rs, _ := hit.Match.Ranges()

		formatted := make([]string, len(rs))
		for i, r := range rs {
			formatted[i] = r.String()
		}
		output = output + fmt.Sprintf(" %s", strings.Join(formatted, " "))
	}

	_, err := fmt.Fprintln(p.out, output)
	if err != nil {
		return err
	}

	logger.Debug("hit-found", lager.Data{"path": line.Path, "line-number": line.LineNumber, "count": p.count})

	return nil
}
