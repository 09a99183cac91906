// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch expands a registry entry into per-directory launch
// requests and starts each one as an independent detached shell process.
// The parent never waits on, cancels or reads from a launched process;
// lifecycle is fully decoupled once the process has started.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/adhoc/internal/ctxlog"
	"github.com/matt-FFFFFF/adhoc/internal/pathspec"
	"github.com/matt-FFFFFF/adhoc/internal/registry"
)

// ErrCouldNotStartProcess is returned when the shell for one directory
// could not be started. One directory failing never stops the rest of the
// fan-out from being attempted.
var ErrCouldNotStartProcess = errors.New("could not start process")

// Request is a structured subprocess launch: where to run and what to run.
// An empty Dir means the current process directory.
type Request struct {
	Dir      string
	Template string
}

// Instruction composes the shell line for a request. Directories get their
// own "cd DIR && ..." prefix so every launch is an independent shell
// invocation of the literal stored command. Stray single quotes are
// stripped from the composed line; no other quoting is applied, which is an
// accepted injection tradeoff for a tool that runs the user's own commands.
func (r Request) Instruction() string {
	instr := r.Template
	if r.Dir != "" {
		instr = fmt.Sprintf("cd %s && %s", r.Dir, r.Template)
	}

	return strings.ReplaceAll(instr, "'", "")
}

// Expand resolves an entry's path spec into one launch request per bound
// directory, in path-spec order. There is always at least one request.
func Expand(e registry.Entry) []Request {
	dirs := pathspec.Parse(e.Paths)
	reqs := make([]Request, 0, len(dirs))

	for _, dir := range dirs {
		reqs = append(reqs, Request{Dir: dir, Template: e.Command})
	}

	return reqs
}

// Launcher starts a detached subprocess for a single request.
type Launcher interface {
	Launch(ctx context.Context, req Request) error
}

var _ Launcher = (*ShellLauncher)(nil)

// ShellLauncher launches requests through the platform shell, inheriting
// the parent's standard streams.
type ShellLauncher struct{}

// Launch implements the Launcher interface for ShellLauncher. The started
// process is released immediately and runs concurrently with the parent's
// own exit.
func (ShellLauncher) Launch(ctx context.Context, req Request) error {
	instr := req.Instruction()

	shell, flag := shellCommand()
	cmd := exec.Command(shell, flag, instr)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	ctxlog.Info(ctx, "running", "instruction", instr)

	if err := cmd.Start(); err != nil {
		return errors.Join(ErrCouldNotStartProcess, err)
	}

	ctxlog.Debug(ctx, "process started", "pid", cmd.Process.Pid)

	return cmd.Process.Release()
}

// Dispatch fans an entry out across its bound directories. Every request is
// attempted even when earlier ones fail to start; launch failures are
// aggregated into the returned error.
func Dispatch(ctx context.Context, l Launcher, e registry.Entry) error {
	logger := ctxlog.Logger(ctx).With("name", e.Name)

	var errs *multierror.Error

	for _, req := range Expand(e) {
		logger.Debug("dispatching", "dir", req.Dir, "template", req.Template)

		if err := l.Launch(ctx, req); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("dir %q: %w", req.Dir, err))
		}
	}

	return errs.ErrorOrNil()
}

func shellCommand() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}

	return "/bin/sh", "-c"
}
