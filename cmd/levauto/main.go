// Command levauto checks input lines against one or more Levenshtein
// automata, printing the ones within the configured edit-distance
// budget. It supports a single pattern/budget pair on the command
// line, or a batch of checks described by a YAML config file (see
// internal/config).
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"

	"levauto"
	"levauto/internal/config"
)

func main() {
	opts := ParseFlags()

	var checks []config.Check
	if opts.Config != "" {
		batch, err := config.Load(opts.Config)
		if err != nil {
			gologger.Fatal().Msgf("%s", err)
		}
		checks = batch.Checks
	} else {
		checks = []config.Check{{Pattern: opts.Pattern, K: opts.K, Input: opts.Input}}
	}

	total := 0
	for _, c := range checks {
		matched, err := runCheck(c)
		if err != nil {
			gologger.Error().Msgf("pattern %q: %s", c.Pattern, err)
			continue
		}
		total += matched
	}
	gologger.Info().Msgf("%d matching lines", total)
}

// runCheck builds an automaton for c and prints every matching line of
// its input, returning the number of matches.
func runCheck(c config.Check) (int, error) {
	gologger.Verbose().Msgf("building automaton for pattern %q, distance %d", c.Pattern, c.K)
	a := levauto.New(c.Pattern, c.K)

	in, err := openInput(c.Input)
	if err != nil {
		return 0, err
	}
	if closer, ok := in.(io.Closer); ok && in != os.Stdin {
		defer closer.Close()
	}

	matched := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if a.Check(line) {
			os.Stdout.WriteString(line + "\n")
			matched++
		}
	}
	if err := scanner.Err(); err != nil {
		return matched, err
	}
	return matched, nil
}

func openInput(path string) (io.Reader, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}
