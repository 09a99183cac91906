// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config exports and imports the registry store file.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/adhoc/internal/registry"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	exportFlag = "export"
	importFlag = "import"
	storeFlag  = "store"
)

// ErrGetStoreFile is returned when an import source cannot be fetched.
var ErrGetStoreFile = errors.New("failed to get store file")

// ConfigCmd exports the registry to the current directory or imports
// entries from an arbitrary source.
var ConfigCmd = &cli.Command{
	Name:  "config",
	Usage: "config [--export] [--import <src>]",
	Description: `Export writes the registry store to the current directory for backup or
sharing. Import merges entries from another store file into the registry;
entries with the same name are overwritten.

Import sources use Hashicorp's go-getter syntax, so a store can be pulled
from a local path, git repository or HTTP URL.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:     exportFlag,
			Aliases:  []string{"e"},
			Usage:    "Export the registry store to the current directory",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:      importFlag,
			Aliases:   []string{"i"},
			Usage:     "Import entries from a store file at the given path or URL",
			TakesFile: true,
			OnlyOnce:  true,
		},
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
	if !cmd.Bool(exportFlag) && cmd.String(importFlag) == "" {
		return cli.Exit("config requires --export or --import", 1)
	}

	reg, err := registry.Load(afero.NewOsFs(), cmd.String(storeFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if cmd.Bool(exportFlag) {
		dest := filepath.Join(".", registry.StoreFileName)
		if err := reg.Export(dest); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		fmt.Fprintln(cmd.Writer, dest)
	}

	if src := cmd.String(importFlag); src != "" {
		data, err := fetch(ctx, src)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		if err := reg.Import(data); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		if err := reg.Save(); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		fmt.Fprintf(cmd.Writer, "imported %s\n", src)
	}

	return nil
}

// fetch reads an import source. Plain local paths are read directly;
// anything else goes through go-getter.
func fetch(ctx context.Context, src string) ([]byte, error) {
	if data, err := os.ReadFile(src); err == nil {
		return data, nil
	}

	tmpDir, err := os.MkdirTemp("", "adhoc-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetStoreFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetStoreFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     src,
		Dst:     filepath.Join(tmpDir, "store"),
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrGetStoreFile, err)
	}

	data, err := os.ReadFile(res.Dst)
	if err != nil {
		return nil, errors.Join(ErrGetStoreFile, err)
	}

	return data, nil
}
