package schema

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/coerce/pkg/ident"
)

// Schema maps identifiers to their declared forms.
type Schema map[ident.Keyword]Form

// MarshalJSON serializes the schema as a map of identifiers to form text.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	raw := make(map[string]string, len(s))
	for id, form := range s {
		if form == nil {
			return nil, fmt.Errorf("schema %s: form is nil", id)
		}
		raw[id.String()] = form.String()
	}

	return json.Marshal(raw)
}

// UnmarshalJSON deserializes the schema from a map of identifiers to form text.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	if string(data) == "null" {
		*s = nil
		return nil
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseFormMap(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
