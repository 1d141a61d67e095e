// Package progress owns the record-key → read/unread mapping and its
// portable JSON form. The map grows lazily (a key is registered unread
// the first time it is displayed), never shrinks automatically, and
// survives re-ingestion of a new table.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedPayload marks an import whose top-level JSON value is not
// an object. Invalid JSON surfaces as a distinct parse error instead.
var ErrMalformedPayload = errors.New("progress payload is not a JSON object")

// Store maps record keys to read-state. Not safe for concurrent use;
// the session applies one user action at a time.
type Store struct {
	read map[string]bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{read: make(map[string]bool)}
}

// FromMap seeds a store from an existing mapping, copying it.
func FromMap(m map[string]bool) *Store {
	s := NewStore()
	for k, v := range m {
		s.read[k] = v
	}
	return s
}

// GetOrInsert returns the read flag for a key, registering the key as
// unread if it was never seen. The insert-on-read is deliberate: every
// displayed record must exist in exports even before its first toggle.
func (s *Store) GetOrInsert(key string) bool {
	v, ok := s.read[key]
	if !ok {
		s.read[key] = false
	}
	return v
}

// Set overwrites the read flag for a key.
func (s *Store) Set(key string, read bool) {
	s.read[key] = read
}

// Len returns the number of registered keys.
func (s *Store) Len() int {
	return len(s.read)
}

// Snapshot returns a copy of the current mapping.
func (s *Store) Snapshot() map[string]bool {
	m := make(map[string]bool, len(s.read))
	for k, v := range s.read {
		m[k] = v
	}
	return m
}

// Export serializes the mapping as pretty-printed UTF-8 JSON, the
// portable progress-file format.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.read, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	return data, nil
}

// ImportMerge parses a progress blob and merges it into the store:
// incoming keys overwrite matching ones, existing-only keys stay,
// incoming-only keys are added (last import wins). Values are coerced
// truthy/falsy rather than type-checked, matching the file format's
// lenient history. On any error the store is untouched. Returns the
// number of keys imported.
func (s *Store) ImportMerge(blob []byte) (int, error) {
	var payload any
	if err := json.Unmarshal(blob, &payload); err != nil {
		return 0, fmt.Errorf("parse progress file: %w", err)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0, ErrMalformedPayload
	}
	for k, v := range obj {
		s.read[k] = truthy(v)
	}
	return len(obj), nil
}

// truthy applies JSON falsy rules: null, false, 0 and "" are false,
// everything else (including arrays and objects) is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// ExportFilename names a progress export after its moment of creation.
// The name is cosmetic; import never parses it.
func ExportFilename(t time.Time) string {
	return "progresso_leitura_" + t.Format("02_01_2006-15_04") + ".json"
}
