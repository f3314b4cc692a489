package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/railway/pkg/rop/logging"
)

// FileOptions is the YAML form of Options:
//
//	enable_logging: true
//	logging:
//	  level: info
//	  format: json
//	  output: stderr
type FileOptions struct {
	EnableLogging *bool              `yaml:"enable_logging"`
	Logging       FileLoggingOptions `yaml:"logging"`
}

type FileLoggingOptions struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*FileOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration.
func Parse(data []byte) (*FileOptions, error) {
	var fo FileOptions
	if err := yaml.Unmarshal(data, &fo); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &fo, nil
}

// Apply copies the file settings into o, building a slog adapter when
// logging is enabled. A nil w selects the writer named by Output.
func (fo *FileOptions) Apply(o *Options, w io.Writer) error {
	if fo.EnableLogging != nil {
		o.EnableLogging = *fo.EnableLogging
	}
	if !o.EnableLogging {
		return nil
	}

	adapter, err := fo.Logging.adapter(w)
	if err != nil {
		return err
	}
	return o.Logging.Configure(func(lo *LoggingOptions) error {
		return lo.SetAdapter(adapter)
	})
}

func (lo FileLoggingOptions) adapter(w io.Writer) (logging.Adapter, error) {
	level := logging.LevelInformation
	if lo.Level != "" {
		parsed, err := logging.ParseLevel(lo.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if w == nil {
		switch strings.ToLower(lo.Output) {
		case "", "stderr":
			w = os.Stderr
		case "stdout":
			w = os.Stdout
		default:
			return nil, fmt.Errorf("unknown log output %q", lo.Output)
		}
	}

	switch strings.ToLower(lo.Format) {
	case "", "text":
		return logging.NewTextAdapter(w, level), nil
	case "json":
		return logging.NewJSONAdapter(w, level), nil
	}
	return nil, fmt.Errorf("unknown log format %q", lo.Format)
}

// ConfigureFromFile loads path and applies it to c.
func ConfigureFromFile(c *Config, path string) error {
	fo, err := LoadFile(path)
	if err != nil {
		return err
	}
	return c.Configure(func(o *Options) error {
		return fo.Apply(o, nil)
	})
}
