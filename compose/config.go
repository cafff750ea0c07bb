// config.go loads a session configuration from a descriptor file.
//
// Two formats are supported, selected by file extension:
//   - YAML (.yaml, .yml), the native compose ecosystem format
//   - JSON with comments and trailing commas (.json, .jsonc), convenient
//     for annotated fixtures checked into test suites
//
// Library callers can always construct a Config directly; the loader
// exists for the CLI's --config flag and for test suites that keep the
// session descriptor next to their compose files.
package compose

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a session Config from the descriptor file at path.
// Relative compose file paths and a relative project directory in the
// descriptor are resolved against the descriptor's own directory, so a
// suite can be invoked from anywhere.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read session config %q: %w", path, err)
	}

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse session config %q: %w", path, err)
		}
	case ".json", ".jsonc":
		// jsonc.ToJSON strips comments and trailing commas, turning the
		// relaxed input into strict JSON for the standard decoder.
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse session config %q: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported session config format %q (valid: .yaml, .yml, .json, .jsonc)", ext)
	}

	// Anchor relative paths at the descriptor's directory.
	base := filepath.Dir(path)
	for i, f := range cfg.Files {
		if f != "" && !filepath.IsAbs(f) {
			cfg.Files[i] = filepath.Join(base, f)
		}
	}
	if cfg.ProjectDirectory != "" && !filepath.IsAbs(cfg.ProjectDirectory) {
		cfg.ProjectDirectory = filepath.Join(base, cfg.ProjectDirectory)
	}

	return cfg, nil
}
