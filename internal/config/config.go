package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file koinvert looks for in the working directory.
const FileName = "koinvert.yaml"

// Config represents the top-level koinvert.yaml configuration.
type Config struct {
	Converter ConverterConfig `yaml:"converter"`
	Log       LogConfig       `yaml:"log"`
}

// ConverterConfig controls row classification and value handling.
type ConverterConfig struct {
	// FiatCurrency is the code treated as the domestic currency when
	// deciding whether a compra/venda moves money in or out.
	FiatCurrency string `yaml:"fiat_currency"`
	// Strict fails the run when an extracted amount is not a valid
	// decimal instead of passing it through.
	Strict       bool   `yaml:"strict"`
}

// LogConfig controls run-summary logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a koinvert.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the defaults for NovaDAX exports.
func Default() *Config {
	return &Config{
		Converter: ConverterConfig{
			FiatCurrency: "BRL",
			Strict:       false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
