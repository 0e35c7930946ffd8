// Package config loads tool configuration from a yaml file with environment
// variable overrides for the secrets.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	ConfigFileEnvVar = "MEGAPDF_CONFIG"
	APIURLEnvVar     = "MEGAPDF_API_URL"
	TokenEnvVar      = "MEGAPDF_TOKEN"

	defaultConfigFile = ".megapdf.yaml"
	defaultAPIURL     = "https://megapdf.com"
)

// Ink tunes the freehand stroke renderer.
type Ink struct {
	MinWidth             float64 `yaml:"min_width"`
	MaxWidth             float64 `yaml:"max_width"`
	VelocityFilterWeight float64 `yaml:"velocity_filter_weight"`
}

// Config is the tool configuration.
type Config struct {
	APIURL      string `yaml:"api_url"`
	Token       string `yaml:"token"`
	OutputDir   string `yaml:"output_dir"`
	RenderWidth float64 `yaml:"render_width"`
	PerformOCR  bool    `yaml:"perform_ocr"`
	OCRLanguage string  `yaml:"ocr_language"`
	BatchSize   int64   `yaml:"batch_size"`
	Ink         Ink     `yaml:"ink"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		APIURL:      defaultAPIURL,
		OutputDir:   ".",
		RenderWidth: 900,
		OCRLanguage: "eng",
		BatchSize:   4,
	}
}

// Path returns the config file location, honoring MEGAPDF_CONFIG.
func Path() string {
	if path := os.Getenv(ConfigFileEnvVar); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultConfigFile
	}
	return filepath.Join(home, defaultConfigFile)
}

// Load reads the config file at path, applying defaults for missing fields
// and environment overrides on top. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env overrides
	case err != nil:
		return cfg, errors.Wrap(err, "failed to read config file")
	default:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, errors.Wrap(err, "failed to parse config file")
		}
	}

	if url := os.Getenv(APIURLEnvVar); url != "" {
		cfg.APIURL = url
	}
	if token := os.Getenv(TokenEnvVar); token != "" {
		cfg.Token = token
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}

	return cfg, nil
}

// Save writes the config back to path.
func Save(path string, cfg Config) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}
