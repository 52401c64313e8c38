package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"shelf/internal/classify"
)

//go:embed sample_config.toml
var sampleConfig string

// Organize contains defaults for the organize command.
type Organize struct {
	DefaultMode string   `toml:"default_mode"`
	Recursive   bool     `toml:"recursive"`
	IgnoreNames []string `toml:"ignore_names"`
}

// Categories contains extension-table overrides. Keys are extensions
// (with or without a leading dot), values are category names. Names outside
// the built-in set introduce user-defined categories.
type Categories struct {
	Overrides map[string]string `toml:"overrides"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for shelf.
type Config struct {
	Organize   Organize   `toml:"organize"`
	Categories Categories `toml:"categories"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/shelf/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; defaults apply. Returns the config, the resolved path,
// and whether a file was found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shelf.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Organize.DefaultMode = strings.ToLower(strings.TrimSpace(c.Organize.DefaultMode))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	names := c.Organize.IgnoreNames[:0]
	for _, name := range c.Organize.IgnoreNames {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	c.Organize.IgnoreNames = names

	if len(c.Categories.Overrides) > 0 {
		normalized := make(map[string]string, len(c.Categories.Overrides))
		for ext, category := range c.Categories.Overrides {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			category = strings.TrimSpace(category)
			if ext == "" || category == "" {
				continue
			}
			normalized[ext] = category
		}
		c.Categories.Overrides = normalized
	}
}

// CategoryOverrides resolves the configured extension overrides into
// classifier categories. Built-in names map onto the closed category set;
// anything else becomes a user-defined category.
func (c *Config) CategoryOverrides() map[string]classify.Category {
	if len(c.Categories.Overrides) == 0 {
		return nil
	}
	overrides := make(map[string]classify.Category, len(c.Categories.Overrides))
	for ext, name := range c.Categories.Overrides {
		if category, ok := classify.CategoryByName(name); ok {
			overrides[ext] = category
			continue
		}
		overrides[ext] = classify.Category(strings.ToLower(name))
	}
	return overrides
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
