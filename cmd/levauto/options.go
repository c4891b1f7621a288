package main

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the parsed command-line flags for the levauto CLI,
// following the Options/ParseFlags shape of
// projectdiscovery/alterx's internal/runner.Options.
type Options struct {
	Pattern string // single-check pattern
	K       int    // single-check edit-distance budget
	Input   string // file to read queries from, "-" for stdin

	Config string // batch config file (internal/config.Batch YAML)

	Verbose bool
	Silent  bool
}

// ParseFlags builds the levauto flag set and parses os.Args into an
// Options value, exactly mirroring alterx's CreateGroup-based layout.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Checks whether input lines are within a Levenshtein edit-distance budget of a pattern.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "pattern to match queries against"),
		flagSet.IntVarP(&opts.K, "distance", "d", 0, "maximum edit distance to accept"),
		flagSet.StringVarP(&opts.Input, "input", "i", "-", "file to read query lines from ('-' for stdin)"),
	)

	flagSet.CreateGroup("batch", "Batch",
		flagSet.StringVar(&opts.Config, "config", "", "batch config file describing multiple pattern/distance checks"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display matches only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Config == "" && opts.Pattern == "" {
		gologger.Fatal().Msgf("either -pattern or -config must be given")
	}

	return opts
}
