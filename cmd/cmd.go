// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/adhoc/cmd/config"
	"github.com/matt-FFFFFF/adhoc/cmd/docs"
	"github.com/matt-FFFFFF/adhoc/cmd/invoke"
	"github.com/matt-FFFFFF/adhoc/cmd/register"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI. A bare "adhoc <name>" dispatches
// the registered command of that name.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		register.RegisterCmd,
		config.ConfigCmd,
		docs.DocsCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "adhoc",
	Description: `Adhoc lets you register named shell commands bound to one or more
working directories and dispatch them later by name. Each bound directory gets its
own independent shell invocation of the stored command.`,
	Usage:     "adhoc <name> [<command>] [<paths>]",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	Flags:                 invoke.Flags(),
	Arguments:             invoke.Arguments(),
	Action:                invoke.ActionFunc,
	EnableShellCompletion: true,
}
