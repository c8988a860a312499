package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iancoleman/strcase"
)

// Codec reads and writes records as JSON.
//
// The zero Codec is strict: keys must match the current kebab-case schema.
// A Legacy codec also accepts snake_case keys from older schemas on the
// way in and writes snake_case on the way out. Legacy mode renames every
// object key, including those inside free-form maps.
type Codec struct {
	Legacy bool
}

// Unmarshal decodes data into v.
func (c Codec) Unmarshal(data []byte, v interface{}) error {
	if !c.Legacy {
		return json.Unmarshal(data, v)
	}
	normalized, err := rekey(data, strcase.ToKebab)
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, v)
}

// Marshal encodes v.
func (c Codec) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || !c.Legacy {
		return data, err
	}
	return rekey(data, strcase.ToSnake)
}

// rekey rewrites every object key in a JSON document with fn. Numbers are
// carried through unchanged.
func rekey(data []byte, fn func(string) string) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return json.Marshal(rekeyValue(doc, fn))
}

func rekeyValue(v interface{}, fn func(string) string) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fn(k)] = rekeyValue(val, fn)
		}
		return out
	case []interface{}:
		for i, val := range t {
			t[i] = rekeyValue(val, fn)
		}
		return t
	default:
		return v
	}
}
