// Package configfile loads and writes the loom project configuration.
//
// Configuration lives in .loom/config.yaml and covers CLI defaults only
// (file paths, output mode). Engine behavior constants are deliberately not
// configurable: regenerated backlogs must be reproducible across machines.
package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DirName is the loom project directory.
	DirName = ".loom"

	// ConfigFileName is the config file inside DirName.
	ConfigFileName = "config.yaml"
)

// Config holds CLI defaults. Flags override these; these override the
// built-in defaults.
type Config struct {
	Issues  string `yaml:"issues" mapstructure:"issues"`   // issue collection path
	Backlog string `yaml:"backlog" mapstructure:"backlog"` // backlog document path
	JSON    bool   `yaml:"json" mapstructure:"json"`       // default to JSON output
	Quiet   bool   `yaml:"quiet" mapstructure:"quiet"`     // suppress non-essential output
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Issues:  "issues.json",
		Backlog: filepath.Join(DirName, "backlog.json"),
	}
}

// Path returns the config file path under the given project root.
func Path(root string) string {
	return filepath.Join(root, DirName, ConfigFileName)
}

// Load reads the config file under root, falling back to defaults when the
// file does not exist. Unknown keys are ignored.
func Load(root string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(Path(root))
	if err := v.ReadInConfig(); err != nil {
		if isNotFound(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", Path(root), err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", Path(root), err)
	}
	return cfg, nil
}

// Init creates the .loom directory and writes the default config. It is an
// error if the config file already exists.
func Init(root string) (string, error) {
	dir := filepath.Join(root, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := Path(root)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// isNotFound covers both the filesystem error and viper's own not-found
// type, which does not unwrap to fs.ErrNotExist.
func isNotFound(err error) bool {
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}
