package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcao2/deckcheck/internal/pitchdeck"
	"gopkg.in/yaml.v3"
)

// APIURLEnv overrides the api_url setting
const APIURLEnv = "DECKCHECK_API_URL"

// Config holds application configuration
type Config struct {
	APIURL    string `yaml:"api_url"`
	Theme     string `yaml:"theme"`
	UseAgents bool   `yaml:"use_agents"`

	path string
}

func defaults() *Config {
	return &Config{
		APIURL: pitchdeck.DefaultBaseURL,
		Theme:  "default",
	}
}

// Load loads configuration from the file at path (or the default location
// when path is empty) and the environment. Environment variables take
// precedence over config file values. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := defaults()
	cfg.path = path

	if err := cfg.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg.loadFromEnv()

	return cfg, nil
}

func (c *Config) loadFromFile() error {
	if c.path == "" {
		return os.ErrNotExist
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}

	if c.APIURL == "" {
		c.APIURL = pitchdeck.DefaultBaseURL
	}
	if c.Theme == "" {
		c.Theme = "default"
	}
	return nil
}

func (c *Config) loadFromEnv() {
	if apiURL := os.Getenv(APIURLEnv); apiURL != "" {
		c.APIURL = apiURL
	}
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// Mode returns the default analysis mode
func (c *Config) Mode() pitchdeck.Mode {
	if c.UseAgents {
		return pitchdeck.ModeMultiAgent
	}
	return pitchdeck.ModeSimple
}

// DefaultPath returns ~/.config/deckcheck/config.yaml, or "" when the home
// directory is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "deckcheck", "config.yaml")
}

// Save writes the UI preferences back to the config file. The api_url value
// already in the file is preserved; one that came from the environment or a
// flag is never written.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("cannot determine config path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	existing := &Config{}
	if data, err := os.ReadFile(c.path); err == nil {
		_ = yaml.Unmarshal(data, existing)
	}

	existing.Theme = c.Theme
	existing.UseAgents = c.UseAgents

	data, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# deckcheck configuration\n# api_url can also be set with " + APIURLEnv + " or --api-url\n\n")
	return os.WriteFile(c.path, append(header, data...), 0600)
}

// WriteExample creates a documented config file at path unless one exists
func WriteExample(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Already exists, don't overwrite
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	example := `# deckcheck configuration

# Base URL of the pitch-deck analysis service (env: ` + APIURLEnv + `)
api_url: "` + pitchdeck.DefaultBaseURL + `"

# Color theme (default, catppuccin, dracula, nord, gruvbox)
theme: "default"

# Start with multi-agent analysis selected (slower, uses web search)
use_agents: false
`

	return os.WriteFile(path, []byte(example), 0600)
}
