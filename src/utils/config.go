package utils

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

// LoadScanConfig reads a yaml scan config, applies defaults and validates it.
// An empty path returns the defaults.
func LoadScanConfig(path string) (*eventmodels.ScanConfigYAML, error) {
	cfg := &eventmodels.ScanConfigYAML{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadScanConfig: failed to read %s: %w", path, err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("LoadScanConfig: failed to decode %s: %w", path, err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("LoadScanConfig: %w", err)
	}

	return cfg, nil
}
