package entity

import (
	"encoding/json"
	"fmt"
)

// BrowseResult is one page of a browse response. The web service names
// its keys after the browsed kind, e.g. "release-count",
// "release-offset" and "releases".
type BrowseResult[T Record] struct {
	Count    int
	Offset   int
	Entities []T
}

// UnmarshalJSON reads the kind-specific keys for T.
func (r *BrowseResult[T]) UnmarshalJSON(data []byte) error {
	var zero T
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	prefix := zero.ResourcePath()
	if err := requireKey(raw, prefix+"-count", &r.Count); err != nil {
		return err
	}
	if err := requireKey(raw, prefix+"-offset", &r.Offset); err != nil {
		return err
	}
	return requireKey(raw, zero.ListKey(), &r.Entities)
}

// MarshalJSON writes the same keys UnmarshalJSON reads.
func (r BrowseResult[T]) MarshalJSON() ([]byte, error) {
	var zero T
	prefix := zero.ResourcePath()
	return json.Marshal(map[string]interface{}{
		prefix + "-count":  r.Count,
		prefix + "-offset": r.Offset,
		zero.ListKey():     r.Entities,
	})
}

// SearchResult is one page of a search response. Each entity carries its
// relevance in its Score field.
type SearchResult[T Record] struct {
	Created  string
	Count    int
	Offset   int
	Entities []T
}

// UnmarshalJSON reads the search envelope and the list keyed by T.
func (r *SearchResult[T]) UnmarshalJSON(data []byte) error {
	var zero T
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := decodeKey(raw, "created", &r.Created); err != nil {
		return err
	}
	if err := requireKey(raw, "count", &r.Count); err != nil {
		return err
	}
	if err := requireKey(raw, "offset", &r.Offset); err != nil {
		return err
	}
	return requireKey(raw, zero.ListKey(), &r.Entities)
}

// MarshalJSON writes the same keys UnmarshalJSON reads.
func (r SearchResult[T]) MarshalJSON() ([]byte, error) {
	var zero T
	out := map[string]interface{}{
		"count":        r.Count,
		"offset":       r.Offset,
		zero.ListKey(): r.Entities,
	}
	if r.Created != "" {
		out["created"] = r.Created
	}
	return json.Marshal(out)
}

// decodeKey decodes raw[key] into v, leaving v untouched when the key is
// missing.
func decodeKey(raw map[string]json.RawMessage, key string, v interface{}) error {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(msg, v); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

// requireKey is decodeKey for keys every page carries.
func requireKey(raw map[string]json.RawMessage, key string, v interface{}) error {
	if _, ok := raw[key]; !ok {
		return fmt.Errorf("missing %q", key)
	}
	return decodeKey(raw, key, v)
}
