// Package store implements the file-backed key-value store.
//
// The store is a flat JSON object at a single path. Operations hold no state
// between invocations: every operation re-reads the whole file, and every
// mutation rewrites it in full.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Store is a handle on the JSON store file.
type Store struct {
	Path string
}

// Entry is a single key-value pair.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Info describes the store file for diagnostics.
type Info struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Entries int    `json:"entries"`
	Size    int64  `json:"size"`
	Error   string `json:"error,omitempty"`
}

// Open returns a handle on the store file at path. The file is not touched
// until an operation runs.
func Open(path string) *Store {
	return &Store{Path: path}
}

// load reads and parses the store file. Values stay raw JSON so type
// checking happens when a value is extracted, not here.
func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errNotObject()
		}
		return nil, fmt.Errorf("parsing store: %w", err)
	}
	if m == nil {
		// "null" unmarshals into a nil map without error.
		return nil, errNotObject()
	}

	return m, nil
}

// loadOrEmpty substitutes an empty mapping for any load failure. Set and
// List use this deliberately: a corrupt or missing file behaves like an
// empty store on those paths, while Get, Delete, and Entries propagate the
// failure. Kept asymmetric on purpose.
func (s *Store) loadOrEmpty() map[string]json.RawMessage {
	m, err := s.load()
	if err != nil {
		return map[string]json.RawMessage{}
	}
	return m
}

// save rewrites the whole store file in one write. Not atomic: there is no
// temp-file-and-rename, so a crash mid-write can corrupt the file.
func (s *Store) save(m map[string]json.RawMessage) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return nil
}

// asString extracts a stored value as a string.
func asString(key string, raw json.RawMessage) (string, error) {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", errNotString(key)
	}
	return v, nil
}

// Get returns the value for key.
func (s *Store) Get(key string) (string, error) {
	m, err := s.load()
	if err != nil {
		return "", err
	}

	raw, ok := m[key]
	if !ok {
		return "", &NotFoundError{Key: key}
	}
	return asString(key, raw)
}

// Set inserts or overwrites key. Without force, an existing key is an
// AlreadyExistsError. A corrupt or missing file is treated as an empty
// store, so setting over corruption silently replaces the file.
func (s *Store) Set(key, value string, force bool) error {
	m := s.loadOrEmpty()

	if _, ok := m[key]; ok && !force {
		return &AlreadyExistsError{Key: key}
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}
	m[key] = raw

	return s.save(m)
}

// Delete removes key, propagating load failures.
func (s *Store) Delete(key string) error {
	m, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := m[key]; !ok {
		return &NotFoundError{Key: key}
	}
	delete(m, key)

	return s.save(m)
}

// List returns all entries, treating an unreadable or corrupt file as an
// empty store. Iteration order is map order.
func (s *Store) List() ([]Entry, error) {
	return collectEntries(s.loadOrEmpty())
}

// Entries returns all entries, propagating load failures. The key
// completion helper uses this.
func (s *Store) Entries() ([]Entry, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}
	return collectEntries(m)
}

// Count returns the number of entries, propagating load failures.
func (s *Store) Count() (int, error) {
	m, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(m), nil
}

// Info reports the store file's path, size, and entry count. Corruption is
// reported in the Error field rather than failing, since this is a
// diagnostic surface.
func (s *Store) Info() Info {
	info := Info{Path: s.Path}

	stat, err := os.Stat(s.Path)
	if err != nil {
		return info
	}
	info.Exists = true
	info.Size = stat.Size()

	n, err := s.Count()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Entries = n

	return info
}

func collectEntries(m map[string]json.RawMessage) ([]Entry, error) {
	entries := make([]Entry, 0, len(m))
	for k, raw := range m {
		v, err := asString(k, raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries, nil
}
