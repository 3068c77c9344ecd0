package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file configuration schema. Field names
// mirror the command-line flags.
type FileConfig struct {
	Docs          string  `yaml:"docs" json:"docs"`
	Follow        float64 `yaml:"f" json:"f"`
	MaxIterations int     `yaml:"maxIterations" json:"maxIterations"`
	PDF           string  `yaml:"pdf" json:"pdf"`
	Debug         bool    `yaml:"debug" json:"debug"`
}

// LoadConfigFile reads YAML or JSON into FileConfig, picking the codec by
// extension and trying YAML then JSON when the extension is unknown.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields that are still
// unset. Flags (and their environment defaults) should already have been
// parsed; the file supplies defaults without overriding explicit settings.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.DocsDir == "" && fc.Docs != "" {
		cfg.DocsDir = fc.Docs
	}
	if cfg.Follow == 0 && fc.Follow != 0 {
		cfg.Follow = fc.Follow
	}
	if cfg.MaxIterations == 0 && fc.MaxIterations > 0 {
		cfg.MaxIterations = fc.MaxIterations
	}
	if cfg.PDFPath == "" && fc.PDF != "" {
		cfg.PDFPath = fc.PDF
	}
	if !cfg.Debug && fc.Debug {
		cfg.Debug = true
	}
}

// ValidateConfig checks the required settings before the pipeline runs.
func ValidateConfig(cfg Config) error {
	if cfg.DocsDir == "" {
		return errors.New("config: docs directory is required")
	}
	if cfg.Follow <= 0 || cfg.Follow >= 1 {
		return errors.New("config: f must be strictly between 0 and 1")
	}
	if cfg.MaxIterations < 0 {
		return errors.New("config: negative iteration cap is not allowed")
	}
	return nil
}
