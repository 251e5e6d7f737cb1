package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

// appName identifies this program in log names, temp-file prefixes and
// report archives.
const appName = "flexml"

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// LimitsConfig carries the parser's node-count and nesting-depth guards.
	LimitsConfig struct {
		MaxNodes int `yaml:"max_nodes" validate:"min=1"`
		MaxDepth int `yaml:"max_depth" validate:"min=1"`
	}

	// PageConfig carries the fallback solver's page geometry. Dpi is read
	// and validated but not passed on: physical units resolve against the
	// document's own root dpi.
	PageConfig struct {
		Width  float64 `yaml:"width" validate:"gt=0"`
		Height float64 `yaml:"height" validate:"gt=0"`
		Dpi    float64 `yaml:"dpi" validate:"gt=0"`
	}

	// Config is the root of a flexmldump configuration file.
	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		BasePath  string         `yaml:"base_path,omitempty" sanitize:"assure_file_access"`
		Limits    LimitsConfig   `yaml:"limits"`
		Page      PageConfig     `yaml:"page"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at path,
// superimposing its values on top of the expanded configuration template to
// provide sane defaults, then validates the result. An empty path returns
// the template's defaults, sanitized and validated the same way.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates the configuration file from the embedded template and
// returns it as a byte slice, for `flexmldump dumpconfig --default`.
func Prepare(options ...func(*gencfg.ProcessingOptions)) ([]byte, error) {
	return gencfg.Process(ConfigTmpl, options...)
}

// Dump marshals an active configuration back to YAML, for
// `flexmldump dumpconfig`.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
