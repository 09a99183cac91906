// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePath = "/store/.adhocconfig"

func TestLoadMissingStoreCreatesEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Load(fs, storePath)
	require.NoError(t, err)
	assert.Zero(t, r.Len())

	exists, err := afero.Exists(fs, storePath)
	require.NoError(t, err)
	assert.True(t, exists, "store file should exist after first load")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Load(fs, storePath)
	require.NoError(t, err)

	r.Set(Entry{Name: "build", Command: "make all", Paths: "[/a,/b]"})
	r.Set(Entry{Name: "lint", Command: "eslint .", Paths: ""})
	require.NoError(t, r.Save())

	r2, err := Load(fs, storePath)
	require.NoError(t, err)
	require.Equal(t, 2, r2.Len())
	assert.Equal(t, []string{"build", "lint"}, r2.Names())

	e, err := r2.Get("build")
	require.NoError(t, err)
	assert.Equal(t, "make all", e.Command)
	assert.Equal(t, "[/a,/b]", e.Paths)

	e, err = r2.Get("lint")
	require.NoError(t, err)
	assert.Equal(t, "eslint .", e.Command)
	assert.Empty(t, e.Paths)
}

func TestStoreFormatIsSectioned(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Load(fs, storePath)
	require.NoError(t, err)

	r.Set(Entry{Name: "build", Command: "make all", Paths: "[/a,/b]"})
	require.NoError(t, r.Save())

	data, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)

	assert.Contains(t, string(data), "[build]")
	assert.Contains(t, string(data), "command")
	assert.Contains(t, string(data), "make all")
	assert.Contains(t, string(data), "[/a,/b]")
}

func TestGetUnknownName(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Load(fs, storePath)
	require.NoError(t, err)

	_, err = r.Get("missing")
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.ErrorContains(t, err, "missing")
}

func TestSetOverwritesWholeEntry(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Load(fs, storePath)
	require.NoError(t, err)

	r.Set(Entry{Name: "build", Command: "make all", Paths: "/a"})
	r.Set(Entry{Name: "build", Command: "go build ./...", Paths: ""})

	e, err := r.Get("build")
	require.NoError(t, err)
	assert.Equal(t, "go build ./...", e.Command)
	assert.Empty(t, e.Paths, "old paths must not survive an overwrite")
	assert.Equal(t, 1, r.Len())
}

func TestSetPreservesInsertionOrder(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Load(fs, storePath)
	require.NoError(t, err)

	r.Set(Entry{Name: "c"})
	r.Set(Entry{Name: "a"})
	r.Set(Entry{Name: "b"})
	r.Set(Entry{Name: "a", Command: "again"})

	assert.Equal(t, []string{"c", "a", "b"}, r.Names())
}

func TestLoadCorruptStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, storePath, []byte("not a sectioned store\n"), 0o644))

	_, err := Load(fs, storePath)
	require.ErrorIs(t, err, ErrStoreCorrupt)
}

func TestExportImportRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Load(fs, storePath)
	require.NoError(t, err)

	r.Set(Entry{Name: "build", Command: "make all", Paths: "[/a,/b]"})
	r.Set(Entry{Name: "deploy", Command: "make deploy", Paths: "/srv"})
	require.NoError(t, r.Export("/tmp/exported"))

	data, err := afero.ReadFile(fs, "/tmp/exported")
	require.NoError(t, err)

	other, err := Load(fs, "/other/.adhocconfig")
	require.NoError(t, err)
	require.NoError(t, other.Import(data))

	require.Equal(t, r.Len(), other.Len())

	for _, name := range r.Names() {
		want, err := r.Get(name)
		require.NoError(t, err)

		got, err := other.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestImportOverwritesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Load(fs, storePath)
	require.NoError(t, err)
	r.Set(Entry{Name: "build", Command: "old", Paths: "/old"})

	require.NoError(t, r.Import([]byte("[build]\ncommand = new\npaths = /new\n")))

	e, err := r.Get("build")
	require.NoError(t, err)
	assert.Equal(t, "new", e.Command)
	assert.Equal(t, "/new", e.Paths)
}
