// Package yaml loads diffmark configuration from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	yamllib "gopkg.in/yaml.v3"

	"github.com/fwojciec/diffmark"
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "DIFFMARK_CONFIG"

// DefaultPath returns the config file location: $DIFFMARK_CONFIG if set,
// otherwise ~/.config/diffmark/config.yaml. It returns "" when neither is
// available.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "diffmark", "config.yaml")
}

// Load reads the config at path over diffmark.DefaultConfig. A missing file
// (or an empty path) yields the defaults.
func Load(path string) (diffmark.Config, error) {
	cfg := diffmark.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yamllib.Unmarshal(data, &cfg); err != nil {
		return diffmark.DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Theme != "dark" && cfg.Theme != "light" {
		return diffmark.DefaultConfig(), fmt.Errorf("%s: unknown theme %q", path, cfg.Theme)
	}
	return cfg, nil
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg diffmark.Config) error {
	enc := yamllib.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Save writes cfg to path, creating parent directories if needed.
func Save(path string, cfg diffmark.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, cfg); err != nil {
		return err
	}
	return f.Close()
}
