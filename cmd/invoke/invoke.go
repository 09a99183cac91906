// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package invoke dispatches a registered command across its bound
// directories. It backs the root-level "adhoc <name>" invocation.
package invoke

import (
	"context"

	"github.com/matt-FFFFFF/adhoc/internal/ctxlog"
	"github.com/matt-FFFFFF/adhoc/internal/dispatch"
	"github.com/matt-FFFFFF/adhoc/internal/pathspec"
	"github.com/matt-FFFFFF/adhoc/internal/registration"
	"github.com/matt-FFFFFF/adhoc/internal/registry"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	nameArg   = "name"
	cmdArg    = "command"
	pathsArg  = "paths"
	storeFlag = "store"
)

// Flags returns the root-level flags for invocation.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      storeFlag,
			Usage:     "Path to the registry store file",
			Value:     registry.DefaultStorePath(),
			TakesFile: true,
			OnlyOnce:  true,
		},
	}
}

// Arguments returns the positional arguments for invocation.
func Arguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{Name: nameArg},
		&cli.StringArg{Name: cmdArg},
		&cli.StringArg{Name: pathsArg},
	}
}

// ActionFunc looks up the named entry and fans its command out across the
// bound directories. Optional command and paths arguments override the
// stored values for this dispatch only; "." keeps the stored template.
func ActionFunc(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg(nameArg)
	if name == "" {
		return cli.Exit("no command name given, see 'adhoc --help'", 1)
	}

	reg, err := registry.Load(afero.NewOsFs(), cmd.String(storeFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	entry, err := reg.Get(name)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if override := cmd.StringArg(cmdArg); override != "" && override != registration.ReuseMarker {
		entry.Command = override
	}

	if override := cmd.StringArg(pathsArg); override != "" {
		entry.Paths = pathspec.Normalize(override)
	}

	if err := dispatch.Dispatch(ctx, dispatch.ShellLauncher{}, entry); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctxlog.Debug(ctx, "dispatched", "name", name)

	return nil
}
