// Command rex is a reference demo for the rex engine: given a pattern
// and a text, it prints the result of all three matching operations.
// This binary is not part of the library's contract.
package main

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/rex"
)

type options struct {
	pattern string
	text    string
	silent  bool
	verbose bool
}

func parseFlags() *options {
	opts := &options{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("rex is a linear-time regex engine: check, has-match, and search against a compiled pattern.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.pattern, "pattern", "p", "", "pattern to compile"),
		flagSet.StringVarP(&opts.text, "text", "t", "", "text to match against"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.silent, "silent", "s", false, "show only results, no banner"),
		flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "show verbose output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not parse flags: %s", err)
	}

	if opts.silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

func main() {
	opts := parseFlags()

	if opts.pattern == "" {
		gologger.Fatal().Msg("a pattern is required (-p)")
	}

	re, err := rex.Compile(opts.pattern)
	if err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
	gologger.Info().Msgf("compiled pattern: %s", re.String())

	check := re.Check(opts.text)
	hasMatch := re.HasMatch(opts.text)
	start, end, ok := re.Search(opts.text)

	gologger.Print().Msgf("check:     %v", check)
	gologger.Print().Msgf("has_match: %v", hasMatch)
	if ok {
		runes := []rune(opts.text)
		gologger.Print().Msgf("search:    [%d, %d) = %q", start, end, string(runes[start:end]))
	} else {
		gologger.Print().Msgf("search:    no match")
	}

	if !check {
		os.Exit(1)
	}
}
