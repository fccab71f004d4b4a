package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/catalyst/elements-build/internal/errors"
	"github.com/catalyst/elements-build/internal/schema"
)

// ConfigFileNames lists the recognized configuration file names at the
// project root, in lookup order.
var ConfigFileNames = []string{"catalyst.json", "catalyst.yaml", "catalyst.yml"}

// Discover returns the path of the configuration file at the project
// root, or the empty string when the project has none (an all-defaults
// run is valid).
func Discover(projectDir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(projectDir, name)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads, schema-validates, and decodes a configuration file. Both
// JSON and YAML documents are accepted, chosen by file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("read config file %s", path))
	}

	yml := isYAML(path)

	raw, err := decodeRaw(data, yml)
	if err != nil {
		return nil, errors.Configf("parse config file %s: %v", path, err)
	}
	if err := schema.ValidateConfig(raw); err != nil {
		return nil, err
	}

	var cfg Config
	if yml {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, errors.Configf("parse config file %s: %v", path, err)
	}
	return &cfg, nil
}

// Resolve merges user overrides onto the defaults for the given
// environment. A nil overrides tree resolves to the plain defaults.
func Resolve(env Env, overrides *Config) *Config {
	return Merge(Defaults(env), overrides)
}

func isYAML(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// decodeRaw produces the generic document the schema validator runs
// against. YAML documents are decoded to the same map-of-interface shape
// JSON decoding produces.
func decodeRaw(data []byte, yml bool) (interface{}, error) {
	var raw interface{}
	if yml {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
