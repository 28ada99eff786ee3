// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfmt"
)

const (
	envLogLevel  = "AUDFMT_LOG_LEVEL"
	envLogFormat = "AUDFMT_LOG_FORMAT"

	defaultLogLevel = "warning"
)

type config struct {
	format    string
	json      bool
	envFile   string
	logLevel  string
	logFormat string
	files     []string
}

// parseConfig reads flags from args, then fills unset logging options from
// the environment after loading the .env file.
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	flags := flag.NewFlagSet("audfmt", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.format, "format", "", "Force a format (wav, aiff, mp3, ogg) instead of sniffing")
	flags.BoolVar(&cfg.json, "json", false, "Print one JSON object per file")
	flags.StringVar(&cfg.envFile, "env", ".env", "Environment file to load")
	flags.StringVar(&cfg.logLevel, "log-level", "", "Log level (default $"+envLogLevel+" or "+defaultLogLevel+")")
	flags.StringVar(&cfg.logFormat, "log-format", "", "Log format, text or json (default $"+envLogFormat+" or text)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: audfmt [options] <file>...\n\n")
		fmt.Fprintf(stderr, "Prints the chunk layout and sample format of audio files.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	cfg.files = flags.Args()
	if len(cfg.files) == 0 {
		flags.Usage()
		return nil, errors.New("no input files")
	}

	if cfg.format != "" {
		if _, ok := audfmt.NewRegistry().Get(cfg.format); !ok {
			return nil, fmt.Errorf("unknown format %q", cfg.format)
		}
	}

	if cfg.envFile != "" {
		if err := godotenv.Load(cfg.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", cfg.envFile, err)
		}
	}
	if cfg.logLevel == "" {
		cfg.logLevel = envDefault(envLogLevel, defaultLogLevel)
	}
	if cfg.logFormat == "" {
		cfg.logFormat = envDefault(envLogFormat, "text")
	}

	return cfg, nil
}

func envDefault(key, value string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return value
}

func (c *config) logger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.logLevel)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)

	switch c.logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.logFormat)
	}
	return log, nil
}
