// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package docs opens the documentation site in the user's browser.
package docs

import (
	"context"

	"github.com/matt-FFFFFF/adhoc/internal/ctxlog"
	"github.com/pkg/browser"
	"github.com/urfave/cli/v3"
)

const (
	apiFlag     = "api"
	offlineFlag = "offline"

	userDocsURL = "https://adhoc.readthedocs.io/en/latest/"
	apiDocsURL  = "https://adhoc.readthedocs.io/en/latest/api/"
)

// DocsCmd opens the documentation in a browser.
var DocsCmd = &cli.Command{
	Name:  "docs",
	Usage: "docs [--api] [--offline]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:     apiFlag,
			Aliases:  []string{"a"},
			Usage:    "Open the API docs",
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:     offlineFlag,
			Aliases:  []string{"o"},
			Usage:    "Prefer locally installed docs",
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	url := userDocsURL
	if cmd.Bool(apiFlag) {
		url = apiDocsURL
	}

	if cmd.Bool(offlineFlag) {
		// Offline docs ship with release archives, not with the binary.
		ctxlog.Warn(ctx, "offline docs not installed, opening live site")
	}

	if err := browser.OpenURL(url); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}
