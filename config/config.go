package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the lexstat tool.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus" toml:"corpus"`
	Analysis AnalysisConfig `yaml:"analysis" toml:"analysis"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Cache    CacheConfig    `yaml:"cache" toml:"cache"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// CorpusConfig describes where documents come from and how they are decoded.
type CorpusConfig struct {
	Folder    string   `yaml:"folder" toml:"folder"`
	Extension string   `yaml:"extension" toml:"extension"`
	Includes  []string `yaml:"includes" toml:"includes"`
	Excludes  []string `yaml:"excludes" toml:"excludes"`
	Encoding  string   `yaml:"encoding" toml:"encoding"` // "utf-8", "windows-1251", "koi8-r"
}

// AnalysisConfig holds frequency ranking and cleaning options.
type AnalysisConfig struct {
	TopN             int    `yaml:"top_n" toml:"top_n"`
	Cleaned          bool   `yaml:"cleaned" toml:"cleaned"`
	StripPunctuation bool   `yaml:"strip_punctuation" toml:"strip_punctuation"`
	StripStopwords   bool   `yaml:"strip_stopwords" toml:"strip_stopwords"`
	EmptyDocuments   string `yaml:"empty_documents" toml:"empty_documents"` // "zero" or "skip"
}

// OutputConfig holds result file locations.
type OutputConfig struct {
	ResultsDir     string `yaml:"results_dir" toml:"results_dir"`
	StatisticsFile string `yaml:"statistics_file" toml:"statistics_file"`
	ReportFile     string `yaml:"report_file" toml:"report_file"`
	TopWordsFile   string `yaml:"top_words_file" toml:"top_words_file"` // empty disables the export
	MetadataFile   string `yaml:"metadata_file" toml:"metadata_file"`
}

// CacheConfig holds run history configuration.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

const (
	EmptyZero = "zero"
	EmptySkip = "skip"
)

var supportedEncodings = map[string]bool{
	"utf-8":        true,
	"windows-1251": true,
	"koi8-r":       true,
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Folder:    "corpus",
			Extension: ".txt",
			Includes:  []string{"*"},
			Excludes:  []string{".*"},
			Encoding:  "utf-8",
		},
		Analysis: AnalysisConfig{
			TopN:             5,
			Cleaned:          true,
			StripPunctuation: true,
			StripStopwords:   true,
			EmptyDocuments:   EmptyZero,
		},
		Output: OutputConfig{
			ResultsDir:     "results",
			StatisticsFile: "statistics.csv",
			ReportFile:     "report.txt",
			MetadataFile:   filepath.Join("data", "metadata.csv"),
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    filepath.Join(".lexstat", "history.db"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML or TOML file, chosen by extension.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for lexstat.yaml,
// then lexstat.toml, then .lexstat/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	candidates := []string{
		filepath.Join(dir, "lexstat.yaml"),
		filepath.Join(dir, "lexstat.toml"),
		filepath.Join(dir, ".lexstat", "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Validate rejects settings the analysis cannot run with.
func (c *Config) Validate() error {
	if c.Analysis.TopN < 1 {
		return fmt.Errorf("analysis.top_n must be positive, got %d", c.Analysis.TopN)
	}
	if !supportedEncodings[strings.ToLower(c.Corpus.Encoding)] {
		return fmt.Errorf("unsupported corpus.encoding: %q", c.Corpus.Encoding)
	}
	switch c.Analysis.EmptyDocuments {
	case EmptyZero, EmptySkip:
	default:
		return fmt.Errorf("unknown analysis.empty_documents policy: %q", c.Analysis.EmptyDocuments)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// YAML encodes the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// StatisticsPath returns the path of the per-document statistics table.
func (c *Config) StatisticsPath(dir string) string {
	return filepath.Join(dir, c.Output.ResultsDir, c.Output.StatisticsFile)
}

// ReportPath returns the path of the rendered report.
func (c *Config) ReportPath(dir string) string {
	return filepath.Join(dir, c.Output.ResultsDir, c.Output.ReportFile)
}

// TopWordsPath returns the top-words export path, or "" when disabled.
func (c *Config) TopWordsPath(dir string) string {
	if c.Output.TopWordsFile == "" {
		return ""
	}
	return filepath.Join(dir, c.Output.ResultsDir, c.Output.TopWordsFile)
}

// MetadataPath returns the metadata table path.
func (c *Config) MetadataPath(dir string) string {
	return resolve(dir, c.Output.MetadataFile)
}

// CorpusPath returns the corpus folder path.
func (c *Config) CorpusPath(dir string) string {
	return resolve(dir, c.Corpus.Folder)
}

// HistoryDBPath returns the path to the run history database.
func (c *Config) HistoryDBPath(dir string) string {
	return resolve(dir, c.Cache.Path)
}

// EnsureDirFor ensures the parent directory of path exists.
func EnsureDirFor(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
