// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registry is the persisted mapping of command names to their
// command templates and path specs. The store is a sectioned key/value text
// file with one section per registered name, holding exactly the keys
// "command" and "paths". The whole store is read at load time, mutated in
// memory and rewritten in full on save.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	ini "gopkg.in/ini.v1"
)

var (
	// ErrUnknownCommand is returned when a name has never been registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrStoreCorrupt is returned when the store file exists but cannot be
	// parsed as a sectioned key/value file.
	ErrStoreCorrupt = errors.New("store file is not in the expected format")
	// ErrStoreWrite is returned when the store file cannot be written.
	ErrStoreWrite = errors.New("failed to write store file")
)

const (
	keyCommand = "command"
	keyPaths   = "paths"

	// StoreFileName is the file name used for the registry store.
	StoreFileName = ".adhocconfig"

	storeFileMode = 0o644
)

// Entry is a single registered ad-hoc command.
type Entry struct {
	Name    string // unique, case-sensitive key
	Command string // shell command template, run verbatim at dispatch time
	Paths   string // raw path spec, expanded only at dispatch time
}

// Registry owns all entries for one store file. Insertion order is
// preserved so completion scripts list names in registration order.
type Registry struct {
	fs      afero.Fs
	path    string
	names   []string
	entries map[string]Entry
}

// DefaultStorePath returns the store location relative to the installed
// executable, falling back to the current directory.
func DefaultStorePath() string {
	exec, err := os.Executable()
	if err != nil {
		return StoreFileName
	}

	return filepath.Join(filepath.Dir(exec), StoreFileName)
}

// Load reads the store at path into a new Registry. A missing store yields
// an empty registry and creates the file immediately, so the store always
// exists after the first run. An existing but unparseable store is an
// ErrStoreCorrupt failure and is never silently overwritten.
func Load(fs afero.Fs, path string) (*Registry, error) {
	r := &Registry{
		fs:      fs,
		path:    path,
		entries: make(map[string]Entry),
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat store file %s: %w", path, err)
	}

	if !exists {
		if err := r.Save(); err != nil {
			return nil, err
		}

		return r, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}

	if err := r.merge(data); err != nil {
		return nil, err
	}

	return r, nil
}

// Get returns the entry stored under name.
func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return e, nil
}

// Set inserts or overwrites the entry under its name. Overwriting keeps the
// name's original position; new names append.
func (r *Registry) Set(e Entry) {
	if _, ok := r.entries[e.Name]; !ok {
		r.names = append(r.names, e.Name)
	}

	r.entries[e.Name] = e
}

// Names returns all registered names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)

	return names
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Save rewrites the store file in full from the in-memory entries.
func (r *Registry) Save() error {
	return r.writeTo(r.path)
}

// Export writes the current registry verbatim to an arbitrary destination.
func (r *Registry) Export(dest string) error {
	return r.writeTo(dest)
}

// Import merges entries from a serialized store into the registry. Imported
// entries overwrite existing ones with the same name. The caller decides
// when to persist the merged result.
func (r *Registry) Import(data []byte) error {
	return r.merge(data)
}

func (r *Registry) merge(data []byte) error {
	f, err := ini.Load(data)
	if err != nil {
		return errors.Join(ErrStoreCorrupt, err)
	}

	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}

		r.Set(Entry{
			Name:    sec.Name(),
			Command: sec.Key(keyCommand).String(),
			Paths:   sec.Key(keyPaths).String(),
		})
	}

	return nil
}

func (r *Registry) writeTo(path string) error {
	f := ini.Empty()

	for _, name := range r.names {
		e := r.entries[name]

		sec, err := f.NewSection(name)
		if err != nil {
			return errors.Join(ErrStoreWrite, err)
		}

		if _, err := sec.NewKey(keyCommand, e.Command); err != nil {
			return errors.Join(ErrStoreWrite, err)
		}

		if _, err := sec.NewKey(keyPaths, e.Paths); err != nil {
			return errors.Join(ErrStoreWrite, err)
		}
	}

	buf := &bytes.Buffer{}
	if _, err := f.WriteTo(buf); err != nil {
		return errors.Join(ErrStoreWrite, err)
	}

	if err := afero.WriteFile(r.fs, path, buf.Bytes(), storeFileMode); err != nil {
		return errors.Join(ErrStoreWrite, err)
	}

	return nil
}
