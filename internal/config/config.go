package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fungone76-ux/luna-chat-v1/internal/gate"
)

// Config is the application configuration. Zero-value fields fall back to
// the defaults, so a partial YAML file is fine.
type Config struct {
	DefaultCharacter string `yaml:"default_character"`

	// Path to the characters YAML file
	CharactersPath string `yaml:"characters_path"`

	// Path to a catalog YAML file; empty means the built-in catalog
	CatalogPath string `yaml:"catalog_path,omitempty"`

	// Whether prompts target an SDXL-family checkpoint
	SDXL bool `yaml:"sdxl"`

	Gate GateConfig `yaml:"gate"`

	LogLevel string `yaml:"log_level"`
}

// GateConfig mirrors gate.Config in YAML-friendly form.
type GateConfig struct {
	Mode           string   `yaml:"mode"` // "any" or "quorum"
	Quorum         int      `yaml:"quorum"`
	RequestPhrases []string `yaml:"request_phrases,omitempty"`
	PromisePhrases []string `yaml:"promise_phrases,omitempty"`
	ControlToken   string   `yaml:"control_token,omitempty"`
	MinTags        int      `yaml:"min_tags"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	g := gate.DefaultConfig()
	return &Config{
		DefaultCharacter: "Luna",
		CharactersPath:   "config/characters.yaml",
		SDXL:             true,
		Gate: GateConfig{
			Mode:           "quorum",
			Quorum:         g.Quorum,
			RequestPhrases: g.RequestPhrases,
			PromisePhrases: g.PromisePhrases,
			ControlToken:   g.ControlToken,
			MinTags:        g.MinTags,
		},
		LogLevel: "info",
	}
}

// ConfigDir returns the directory holding the user's config file.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lunachat"), nil
}

// ConfigPath returns the default config file location.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file yields the defaults, not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the default location.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) validate() error {
	switch c.Gate.Mode {
	case "any", "quorum":
	default:
		return fmt.Errorf("gate mode must be \"any\" or \"quorum\", got %q", c.Gate.Mode)
	}
	if c.Gate.Mode == "quorum" && c.Gate.Quorum < 1 {
		return fmt.Errorf("quorum must be at least 1, got %d", c.Gate.Quorum)
	}
	if c.DefaultCharacter == "" {
		return errors.New("default_character is required")
	}
	return nil
}

// GateConfig translates the YAML form into the gate's runtime config.
func (c *Config) GateConfig() gate.Config {
	mode := gate.ModeAny
	if c.Gate.Mode == "quorum" {
		mode = gate.ModeQuorum
	}
	return gate.Config{
		Mode:           mode,
		Quorum:         c.Gate.Quorum,
		RequestPhrases: c.Gate.RequestPhrases,
		PromisePhrases: c.Gate.PromisePhrases,
		ControlToken:   c.Gate.ControlToken,
		MinTags:        c.Gate.MinTags,
	}
}
