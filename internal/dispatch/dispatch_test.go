// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/adhoc/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeLauncher struct {
	requests []Request
	failDirs map[string]error
}

// Launch implements the Launcher interface for fakeLauncher.
func (f *fakeLauncher) Launch(_ context.Context, req Request) error {
	f.requests = append(f.requests, req)

	if err, ok := f.failDirs[req.Dir]; ok {
		return err
	}

	return nil
}

func TestExpandMultiPathEntry(t *testing.T) {
	e := registry.Entry{Name: "build", Command: "make all", Paths: "[/a,/b]"}

	reqs := Expand(e)
	require.Len(t, reqs, 2)
	assert.Equal(t, Request{Dir: filepath.FromSlash("/a"), Template: "make all"}, reqs[0])
	assert.Equal(t, Request{Dir: filepath.FromSlash("/b"), Template: "make all"}, reqs[1])
}

func TestExpandEmptyPathSpec(t *testing.T) {
	e := registry.Entry{Name: "lint", Command: "eslint ."}

	reqs := Expand(e)
	require.Len(t, reqs, 1)
	assert.Empty(t, reqs[0].Dir, "empty spec should mean current directory")
	assert.Equal(t, "eslint .", reqs[0].Template)
}

func TestInstructionWithDirectory(t *testing.T) {
	req := Request{Dir: "/a", Template: "make all"}
	assert.Equal(t, "cd /a && make all", req.Instruction())
}

func TestInstructionWithoutDirectory(t *testing.T) {
	req := Request{Template: "eslint ."}
	assert.Equal(t, "eslint .", req.Instruction())
}

func TestInstructionStripsSingleQuotes(t *testing.T) {
	req := Request{Dir: "/a", Template: "echo 'hello'"}
	assert.Equal(t, "cd /a && echo hello", req.Instruction())
}

func TestDispatchLaunchesOnePerDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := &fakeLauncher{}
	e := registry.Entry{Name: "build", Command: "make all", Paths: "[/a,/b,/c]"}

	require.NoError(t, Dispatch(context.Background(), l, e))
	require.Len(t, l.requests, 3)

	for i, dir := range []string{"/a", "/b", "/c"} {
		assert.Equal(t, filepath.FromSlash(dir), l.requests[i].Dir)
		assert.Equal(t, "make all", l.requests[i].Template)
	}
}

func TestDispatchOneFailureDoesNotStopOthers(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := &fakeLauncher{failDirs: map[string]error{
		filepath.FromSlash("/b"): os.ErrNotExist,
	}}
	e := registry.Entry{Name: "build", Command: "make all", Paths: "[/a,/b,/c]"}

	err := Dispatch(context.Background(), l, e)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Len(t, l.requests, 3, "all directories must be attempted")
}

func TestShellLauncherStartsDetachedProcess(t *testing.T) {
	// A nonexistent directory fails inside the launched shell, not at
	// launch time, so Start succeeds either way.
	l := ShellLauncher{}
	err := l.Launch(context.Background(), Request{Dir: t.TempDir(), Template: "true"})
	require.NoError(t, err)
}
