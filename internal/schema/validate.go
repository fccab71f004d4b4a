// Package schema validates raw configuration documents against the
// embedded JSON schema.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/catalyst/elements-build/internal/errors"
	schemafs "github.com/catalyst/elements-build/schema"
)

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchema compiles the embedded config schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read config schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		configSchema, compileErr = compiler.Compile("config.schema.json")
	})

	return compileErr
}

// ValidateConfig validates a decoded configuration document against the
// config schema. The document is the generic tree produced by JSON or
// YAML decoding, not the typed configuration.
func ValidateConfig(doc interface{}) error {
	if err := compileSchema(); err != nil {
		return err
	}

	if err := configSchema.Validate(doc); err != nil {
		return errors.Validation(fmt.Sprintf("config validation failed: %v", err))
	}

	return nil
}
