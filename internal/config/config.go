package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/errcollect/internal/linescan"
	"github.com/vvka-141/errcollect/internal/report"
	"github.com/vvka-141/errcollect/pkg/errcollect"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type OutputConfig struct {
	Dir        string `yaml:"dir"`
	ByFile     string `yaml:"by_file"`
	ByCategory string `yaml:"by_category"`
	Delimiter  string `yaml:"delimiter"`
}

// Config is the on-disk shape of errcollect.yaml.
//
// ExcludeFolders entries that are relative paths are joined onto the scan
// root; absolute entries are used as plain substrings. An empty StripPattern
// strips the scan root from displayed paths.
type Config struct {
	Extension      string                `yaml:"extension"`
	Markers        []string              `yaml:"markers"`
	ExcludeFiles   []string              `yaml:"exclude_files"`
	ExcludeFolders []string              `yaml:"exclude_folders"`
	StripPattern   string                `yaml:"strip_pattern,omitempty"`
	SkipRules      []errcollect.SkipRule `yaml:"skip_rules"`
	BlockFinder    string                `yaml:"block_finder"`
	Output         OutputConfig          `yaml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Extension:      errcollect.DefaultExtension,
		Markers:        errcollect.DefaultMarkers(),
		ExcludeFiles:   errcollect.DefaultExcludedFiles(),
		ExcludeFolders: errcollect.DefaultExcludedFolders(),
		SkipRules:      errcollect.DefaultSkipRules(),
		BlockFinder:    errcollect.BlockFinderFlat,
		Output: OutputConfig{
			Dir:        ".",
			ByFile:     errcollect.DefaultByFileReport,
			ByCategory: errcollect.DefaultByCategoryReport,
			Delimiter:  ",",
		},
	}
}

// Load reads the config file at path on top of the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errcollect.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// LoadFromDir reads errcollect.yaml from dir.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, errcollect.ConfigFileName))
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ApplyEnv overrides cfg with ERRCOLLECT_* variables found by lookup.
// List variables are comma-separated.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(errcollect.EnvPrefix + "EXTENSION"); ok && v != "" {
		cfg.Extension = v
	}
	if v, ok := lookup(errcollect.EnvPrefix + "MARKERS"); ok && v != "" {
		cfg.Markers = splitList(v)
	}
	if v, ok := lookup(errcollect.EnvPrefix + "EXCLUDE_FILES"); ok {
		cfg.ExcludeFiles = splitList(v)
	}
	if v, ok := lookup(errcollect.EnvPrefix + "EXCLUDE_FOLDERS"); ok {
		cfg.ExcludeFolders = splitList(v)
	}
	if v, ok := lookup(errcollect.EnvPrefix + "STRIP_PATTERN"); ok {
		cfg.StripPattern = v
	}
	if v, ok := lookup(errcollect.EnvPrefix + "BLOCK_FINDER"); ok && v != "" {
		cfg.BlockFinder = v
	}
	if v, ok := lookup(errcollect.EnvPrefix + "OUT_DIR"); ok && v != "" {
		cfg.Output.Dir = v
	}
	if v, ok := lookup(errcollect.EnvPrefix + "DELIMITER"); ok && v != "" {
		cfg.Output.Delimiter = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Resolved is a validated configuration bound to one scan root.
type Resolved struct {
	Root      string
	Extension string
	Markers   errcollect.MarkerSet
	SkipRules []errcollect.SkipRule
	Finder    errcollect.BlockBoundaryFinder
	Rules     errcollect.ExclusionRules
	Report    report.Options
}

// Resolve validates cfg and binds it to root.
// Every validation failure wraps errcollect.ErrInvalidConfig.
func Resolve(cfg *Config, root string) (*Resolved, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	markers := errcollect.MarkerSet(nonEmpty(cfg.Markers))
	if len(markers) == 0 {
		return nil, fmt.Errorf("%w: at least one marker is required", errcollect.ErrInvalidConfig)
	}

	if cfg.Extension == "" {
		return nil, fmt.Errorf("%w: extension must not be empty", errcollect.ErrInvalidConfig)
	}

	for i, rule := range cfg.SkipRules {
		if rule.Keyword == "" || rule.Fragment == "" {
			return nil, fmt.Errorf("%w: skip rule %d (%q) needs both keyword and fragment",
				errcollect.ErrInvalidConfig, i, rule.Name)
		}
	}

	finder, err := linescan.NewBlockFinder(cfg.BlockFinder)
	if err != nil {
		return nil, err
	}

	pattern := cfg.StripPattern
	if pattern == "" {
		pattern = regexp.QuoteMeta(absRoot)
	}
	strip, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: strip pattern %q: %v", errcollect.ErrInvalidConfig, pattern, err)
	}

	delimiter, err := parseDelimiter(cfg.Output.Delimiter)
	if err != nil {
		return nil, err
	}

	folders := make([]string, 0, len(cfg.ExcludeFolders))
	for _, folder := range nonEmpty(cfg.ExcludeFolders) {
		if !filepath.IsAbs(folder) {
			folder = filepath.Join(absRoot, folder)
		}
		folders = append(folders, folder)
	}

	out := cfg.Output
	if out.ByFile == "" {
		out.ByFile = errcollect.DefaultByFileReport
	}
	if out.ByCategory == "" {
		out.ByCategory = errcollect.DefaultByCategoryReport
	}
	if out.ByFile == out.ByCategory {
		return nil, fmt.Errorf("%w: both reports are named %q", errcollect.ErrInvalidConfig, out.ByFile)
	}

	return &Resolved{
		Root:      absRoot,
		Extension: cfg.Extension,
		Markers:   markers,
		SkipRules: cfg.SkipRules,
		Finder:    finder,
		Rules: errcollect.ExclusionRules{
			ExcludedFileSuffixes:     nonEmpty(cfg.ExcludeFiles),
			ExcludedFolderSubstrings: folders,
			PathStrip:                strip,
		},
		Report: report.Options{
			Dir:        out.Dir,
			ByFile:     out.ByFile,
			ByCategory: out.ByCategory,
			Delimiter:  delimiter,
		},
	}, nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("%w: delimiter %q must be a single character other than quote or newline",
			errcollect.ErrInvalidConfig, s)
	}
	return r, nil
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
