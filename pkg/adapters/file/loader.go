package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a schema document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Definition is the long form of a schema entry.
type Definition struct {
	Form   string `mapstructure:"form" yaml:"form" json:"form"`
	Parent string `mapstructure:"parent" yaml:"parent,omitempty" json:"parent,omitempty"`
}

// Document is the top-level structure of a schema file.
// Each entry is either form text or a Definition.
type Document struct {
	Schemas map[string]any `yaml:"schemas" json:"schemas"`
}

// Load reads a schema file into a registry. Files ending in ".json" are
// decoded as JSON, everything else as YAML.
func Load(path string) (*schema.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	return Parse(data, format)
}

// Parse decodes a schema document into a registry.
// Malformed entries are reported together as a *schema.AggregateError.
func Parse(data []byte, format Format) (*schema.Registry, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema yaml: %w", err)
		}
	}

	keys := make([]string, 0, len(doc.Schemas))
	for k := range doc.Schemas {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	reg := schema.NewRegistry()
	var errs []error
	for _, key := range keys {
		if err := define(reg, key, doc.Schemas[key]); err != nil {
			errs = append(errs, &schema.DefinitionError{ID: key, Err: err})
		}
	}
	if len(errs) > 0 {
		return nil, &schema.AggregateError{Errors: errs}
	}
	return reg, nil
}

func define(reg *schema.Registry, key string, raw any) error {
	id, err := ident.ParseKeyword(key)
	if err != nil {
		return err
	}

	var def Definition
	switch v := raw.(type) {
	case string:
		def.Form = v
	case map[string]any:
		if err := mapstructure.Decode(v, &def); err != nil {
			return fmt.Errorf("invalid definition: %w", err)
		}
	default:
		return fmt.Errorf("expected form text or definition, got %T", raw)
	}

	form, err := schema.ParseForm(def.Form)
	if err != nil {
		return err
	}
	if err := reg.Define(id, form); err != nil {
		return err
	}

	if def.Parent != "" {
		parent, err := ident.ParseKeyword(def.Parent)
		if err != nil {
			return fmt.Errorf("invalid parent: %w", err)
		}
		reg.DefineParent(id, parent)
	}
	return nil
}

// Encode renders the registry as a YAML schema document.
// Entries with a declared parent use the long form.
func Encode(reg *schema.Registry) ([]byte, error) {
	parents := reg.Parents()
	forms := reg.Schema()

	doc := Document{Schemas: make(map[string]any, len(forms))}
	for id, form := range forms {
		if parent, ok := parents[id]; ok {
			doc.Schemas[id.String()] = Definition{Form: form.String(), Parent: parent.String()}
			continue
		}
		doc.Schemas[id.String()] = form.String()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode schemas: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
