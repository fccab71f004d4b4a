package config

import (
	"encoding/json"
	"strings"

	"github.com/catalyst/elements-build/internal/errors"
)

// FieldPath addresses a leaf in the configuration tree, e.g.
// {"src", "path"} for src.path.
type FieldPath []string

// Dotted returns the path in dotted notation.
func (p FieldPath) Dotted() string {
	return strings.Join(p, ".")
}

// Require checks that every listed field is populated in the resolved
// configuration. It fails fast: the first missing field produces a
// config error naming its dotted path, remaining paths are not checked.
func Require(cfg *Config, paths ...FieldPath) error {
	tree, err := asTree(cfg)
	if err != nil {
		return errors.Wrap(err, "inspect configuration")
	}
	for _, p := range paths {
		if !isSet(tree, p) {
			return errors.Configf("%s not set", p.Dotted())
		}
	}
	return nil
}

// asTree converts the typed configuration into a generic tree so field
// paths can be walked uniformly.
func asTree(cfg *Config) (map[string]interface{}, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// isSet walks the tree along path and reports whether a populated leaf
// is present. Missing keys, nil values, and empty strings all count as
// unset.
func isSet(tree map[string]interface{}, path FieldPath) bool {
	var cur interface{} = tree
	for _, key := range path {
		node, ok := cur.(map[string]interface{})
		if !ok {
			return false
		}
		cur, ok = node[key]
		if !ok {
			return false
		}
	}
	switch v := cur.(type) {
	case nil:
		return false
	case string:
		return v != ""
	default:
		return true
	}
}
