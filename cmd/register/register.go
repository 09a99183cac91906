// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package register adds or replaces a named command in the registry.
package register

import (
	"context"
	"fmt"

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

// RegisterCmd registers a named command bound to zero or more directories.
var RegisterCmd = &cli.Command{
	Name:  "register",
	Usage: "register <name> [<command>] [<paths>]",
	Description: `Register a named ad-hoc command. The command is stored verbatim and run
through the shell at dispatch time. Paths may be a single directory or a
comma-separated list; a "." command keeps the template already registered
under the name. Registering an existing name overwrites it.`,
	Arguments: []cli.Argument{
		&cli.StringArg{Name: nameArg},
		&cli.StringArg{Name: cmdArg},
		&cli.StringArg{Name: pathsArg},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      storeFlag,
			Usage:     "Path to the registry store file",
			Value:     registry.DefaultStorePath(),
			TakesFile: true,
			OnlyOnce:  true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg(nameArg)
	if name == "" {
		return cli.Exit("register requires a command name", 1)
	}

	fs := afero.NewOsFs()

	reg, err := registry.Load(fs, cmd.String(storeFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	svc := registration.NewService(fs)

	src := registration.ParseSource(cmd.StringArg(cmdArg))
	if err := svc.Register(ctx, reg, name, src, cmd.StringArg(pathsArg)); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "registered %s\n", name)

	return nil
}
