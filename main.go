package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/fuss/commands"
)

func main() {
	parser := flags.NewParser(&commands.Fuss, flags.HelpFlag|flags.PrintErrors|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
}
