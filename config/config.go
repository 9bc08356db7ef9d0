package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/planpath/core/metrics"
)

// Config is the root configuration of the scheduler.
type Config struct {
	Input   InputConfig    `json:"input"`
	Report  ReportConfig   `json:"report"`
	Logging LoggingConfig  `json:"logging"`
	Metrics metrics.Config `json:"metrics"`
	API     APIConfig      `json:"api"`
}

// InputConfig locates the activity records to schedule.
type InputConfig struct {
	// Path points to a .yaml, .json or .csv activity file.
	Path string `json:"path"`
}

// ReportConfig controls how a computed plan is rendered.
type ReportConfig struct {
	// Format selects the output renderer: "text", "json" or "csv".
	Format string `json:"format"`
	// Output is the destination file; "-" or empty writes to stdout.
	Output string `json:"output"`
	// SubsetActivities lists activity names for the ad-hoc dispersion
	// analysis. Empty disables the subset section.
	SubsetActivities []string `json:"subset_activities"`
}

// APIConfig holds the HTTP server settings for serve mode.
type APIConfig struct {
	Addr string `json:"addr"`
}

func (c *InputConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	return nil
}

func (c *ReportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Output == "" {
		c.Output = "-"
	}
}

func (c ReportConfig) Validate() error {
	switch c.Format {
	case "text", "json", "csv":
		return nil
	default:
		return fmt.Errorf("unknown report format %s", c.Format)
	}
}

func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// Load reads the configuration file at path. YAML and JSON are supported,
// selected by extension. Environment variables prefixed with PLANPATH_
// override file values, with "__" separating nesting levels.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("PLANPATH_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "planpath_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Report.SetDefaults()
	cfg.API.SetDefaults()
	cfg.Logging.SetDefaults()
	if cfg.Metrics.PrometheusEnabled && cfg.Metrics.PrometheusPort == "" {
		cfg.Metrics.PrometheusPort = "2112"
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
