package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/teknopark/matchmaking-contract-tests/config"
	"github.com/teknopark/matchmaking-contract-tests/framework"
)

type commandParams struct {
	envFile  string
	baseURL  string
	prefix   string
	timeout  time.Duration
	delay    time.Duration
	fixtures string
	filters  framework.RegexFilters
	extended bool
	debug    bool
	debugAll bool
	noColor  bool
	report   string
	explicit map[string]bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(filepath.Base(args[0]), flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.envFile, "env-file", ".env", "dotenv file to read settings from, if it exists")
	fs.StringVar(&c.baseURL, "url", "", "base URL of the matchmaking service (default from MATCHMAKING_BASE_URL)")
	fs.StringVar(&c.prefix, "api-prefix", "", "path prefix of the API (default from MATCHMAKING_API_PREFIX)")
	fs.DurationVar(&c.timeout, "timeout", 0, "timeout for each request (default from MATCHMAKING_TIMEOUT)")
	fs.DurationVar(&c.delay, "delay", 0, "pause between steps (default from MATCHMAKING_STEP_DELAY)")
	fs.StringVar(&c.fixtures, "fixtures", "", "YAML file with the event and participant payloads")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select steps to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select steps not to run")
	fs.BoolVar(&c.extended, "extended", false, "also read the match back and record the partner's handshake")
	fs.BoolVar(&c.debug, "debug", true, "show request traces for failed steps")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show request traces for all steps, and harness debug logging")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	fs.StringVar(&c.report, "report", "", "write a JSON report of the run to this file")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	c.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.explicit[f.Name] = true })
	return true
}

// Config resolves the run configuration: the dotenv file, then the environment, then any
// flags that were given explicitly.
func (c *commandParams) Config() (*config.App, error) {
	cfg, err := config.FromEnvironment(c.envFile)
	if err != nil {
		return nil, err
	}
	if c.explicit["url"] {
		cfg.BaseURL = c.baseURL
	}
	if c.explicit["api-prefix"] {
		cfg.APIPrefix = c.prefix
	}
	if c.explicit["timeout"] {
		cfg.Timeout = c.timeout
	}
	if c.explicit["delay"] {
		cfg.StepDelay = c.delay
	}
	if c.explicit["fixtures"] {
		cfg.FixturesPath = c.fixtures
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// rerunCommand is a copy-pasteable command line that repeats this run against the same service
// with full debug output.
func (c *commandParams) rerunCommand(program string, cfg *config.App) string {
	var b commandBuilder
	b.add(program, "-url", cfg.BaseURL, "-api-prefix", cfg.APIPrefix, "-timeout", cfg.Timeout.String(),
		"-delay", cfg.StepDelay.String())
	if cfg.FixturesPath != "" {
		b.add("-fixtures", cfg.FixturesPath)
	}
	for _, p := range c.filters.MustMatch.Patterns() {
		b.add("-run", p)
	}
	for _, p := range c.filters.MustNotMatch.Patterns() {
		b.add("-skip", p)
	}
	if c.extended {
		b.add("-extended")
	}
	b.add("-debug-all")
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
