package coerce

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/coerce/pkg/domain"
	"github.com/aretw0/coerce/pkg/ident"
)

var (
	keywordType    = reflect.TypeOf(ident.Keyword{})
	keywordMapType = reflect.TypeOf(map[ident.Keyword]any{})
	recordType     = reflect.TypeOf(&domain.Record{})
)

// Decode coerces x with CoerceStructure and decodes the result into out,
// which must be a pointer. Struct fields are matched by their mapstructure tag,
// so a field tagged `mapstructure:"user/age"` receives the coerced "user/age".
func (c *Coercer) Decode(x any, out any) error {
	coerced, err := c.CoerceStructure(x)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(flattenHook, keywordStringHook),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(coerced); err != nil {
		return fmt.Errorf("failed to decode coerced values: %w", err)
	}
	return nil
}

// flattenHook turns keyword-keyed maps and records into plain string-keyed maps.
func flattenHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch from {
	case keywordMapType:
		in := data.(map[ident.Keyword]any)
		out := make(map[string]any, len(in))
		for k, v := range in {
			out[k.String()] = v
		}
		return out, nil
	case recordType:
		if rec := data.(*domain.Record); rec != nil {
			return rec.Values, nil
		}
	}
	return data, nil
}

// keywordStringHook lets coerced keywords land in string fields.
func keywordStringHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from == keywordType && to.Kind() == reflect.String {
		return data.(ident.Keyword).String(), nil
	}
	return data, nil
}

// Decode coerces x and decodes it into out with the default Coercer.
func Decode(x any, out any) error {
	return Default().Decode(x, out)
}
