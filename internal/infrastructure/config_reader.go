package infrastructure

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"disk-scheduling/internal/domain"
	"disk-scheduling/pkg/scheduling"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const DefaultMaxRequests = 1000

// CommandLine holds the parsed flags and remembers which ones were given.
type CommandLine struct {
	ConfigPath  string
	InputFile   string
	MaxRequests int
	Algorithms  string
	LogLevel    string
	LogFile     string
	ShowStats   bool
	Quiet       bool

	set map[string]bool
}

// ParseCommandLine parses args (without the program name).
func ParseCommandLine(name string, args []string) (*CommandLine, error) {
	cl := &CommandLine{set: make(map[string]bool)}

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.StringVar(&cl.ConfigPath, "config", "config.yaml", "Path to config file")
	fset.StringVar(&cl.InputFile, "input", "", "Read the workload from this file instead of stdin")
	fset.IntVar(&cl.MaxRequests, "max-requests", 0, "Maximum number of requests accepted")
	fset.StringVar(&cl.Algorithms, "algorithms", "", "Comma separated planners to run (fcfs,scan,cscan)")
	fset.StringVar(&cl.LogLevel, "log-level", "", "Log level")
	fset.StringVar(&cl.LogFile, "log-file", "", "Log file")
	fset.BoolVar(&cl.ShowStats, "stats", false, "Print seek statistics")
	fset.BoolVar(&cl.Quiet, "quiet", false, "Do not print input prompts")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	fset.Visit(func(f *flag.Flag) {
		cl.set[f.Name] = true
	})
	return cl, nil
}

func (cl *CommandLine) isSet(name string) bool {
	return cl != nil && cl.set[name]
}

var _ domain.ConfigReader = (*YAMLConfigReader)(nil)

type YAMLConfigReader struct {
	logger *zap.Logger
	flags  *CommandLine
}

func NewYAMLConfigReader(logger *zap.Logger, flags *CommandLine) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger, flags: flags}
}

// ReadConfig loads path, applies flag overrides and fills in defaults.
// A missing file is not an error.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	var config domain.Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.logger.Warn("Config file not found, using defaults", zap.String("path", path))
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	r.applyCommandLineFlags(&config)
	r.setDefaults(&config)

	if config.MaxRequests < 0 {
		return nil, fmt.Errorf("max_requests must not be negative, got %d", config.MaxRequests)
	}
	if _, err := scheduling.Resolve(r.logger, config.Algorithms); err != nil {
		return nil, err
	}

	return &config, nil
}

func (r *YAMLConfigReader) applyCommandLineFlags(config *domain.Config) {
	cl := r.flags
	if cl.isSet("input") {
		config.InputFile = cl.InputFile
	}
	if cl.isSet("max-requests") {
		config.MaxRequests = cl.MaxRequests
	}
	if cl.isSet("algorithms") {
		config.Algorithms = splitList(cl.Algorithms)
	}
	if cl.isSet("log-level") {
		config.LogLevel = cl.LogLevel
	}
	if cl.isSet("log-file") {
		config.LogFile = cl.LogFile
	}
	if cl.isSet("stats") {
		config.ShowStats = cl.ShowStats
	}
	if cl.isSet("quiet") {
		prompt := !cl.Quiet
		config.Prompt = &prompt
	}
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.MaxRequests == 0 {
		config.MaxRequests = DefaultMaxRequests
	}
	if len(config.Algorithms) == 0 {
		config.Algorithms = append([]string(nil), scheduling.DefaultAlgorithms...)
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
