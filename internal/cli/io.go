package cli

import (
	"encoding/json"
	"fmt"
	"io"

	coercehttp "github.com/aretw0/coerce/pkg/adapters/http"
	"gopkg.in/yaml.v3"
)

// ReadDocument decodes a YAML or JSON document.
func ReadDocument(r io.Reader) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("error parsing input: %w", err)
	}
	return doc, nil
}

// WriteJSON prints v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(coercehttp.Plain(v))
}
