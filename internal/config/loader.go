package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const blockfallFile = "blockfall.yaml"

// LoadBlockfall loads the blockfall configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml ->
// ./configs/blockfall.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the fallback locations are skipped when broken.
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockfallConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BlockfallConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BlockfallConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/" + blockfallFile}
	if p := userConfigPath(blockfallFile); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultBlockfallYAML)
	if err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration. Unknown keys are an
// error.
func Parse(data []byte) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return BlockfallConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg BlockfallConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}
