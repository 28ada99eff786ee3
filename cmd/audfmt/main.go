// Command audfmt prints the container layout and sample format of audio files.
//
// Usage:
//
//	audfmt [options] <file>...
//
// Options:
//
//	-format      Force a format (wav, aiff, mp3, ogg) instead of sniffing
//	-json        Print one JSON object per file
//	-env         Environment file to load (default .env)
//	-log-level   Log level (default $AUDFMT_LOG_LEVEL or warning)
//	-log-format  Log format, text or json (default $AUDFMT_LOG_FORMAT or text)
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	log, err := cfg.logger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	p := newPrinter(cfg, log, stdout)
	status := 0
	for _, path := range cfg.files {
		if err := p.describe(path); err != nil {
			log.WithError(err).WithField("file", path).Error("audfmt: cannot describe file")
			status = 1
		}
	}
	return status
}
