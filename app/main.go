package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lysyi3m/lead-comb/app/cfg"
)

func main() {
	if err := cfg.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	var opts cfg.Options
	parser := newParser(&opts)

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

func newParser(opts *cfg.Options) *flags.Parser {
	parser := flags.NewParser(opts, flags.Default)

	mustAddCommand(parser, "serve", "Run the HTTP service",
		"Serves the feed registry and the normalization endpoints.",
		&serveCommand{opts: opts})
	mustAddCommand(parser, "feeds", "List the feed registry",
		"Prints the registry grouped for reading, or as enveloped JSON with --json.",
		&feedsCommand{opts: opts})
	mustAddCommand(parser, "rss", "Normalize an RSS item batch",
		"Reads a JSON item array or a feed document from FILE (- for stdin) and prints enveloped leads.",
		&rssCommand{opts: opts})
	mustAddCommand(parser, "ai", "Normalize an AI completion response",
		"Reads a completion response from FILE (- for stdin) and prints enveloped leads.",
		&aiCommand{opts: opts})

	return parser
}

func mustAddCommand(parser *flags.Parser, name, short, long string, data any) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(fmt.Sprintf("failed to register command %s: %v", name, err))
	}
}
