// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registration validates new or updated command entries and writes
// them into the registry. The "." shorthand on the command argument is
// resolved here, before the registry is touched, so the store only ever
// sees concrete templates.
package registration

import (
	"context"
	"errors"
	"runtime"

	"github.com/matt-FFFFFF/adhoc/internal/completion"
	"github.com/matt-FFFFFF/adhoc/internal/ctxlog"
	"github.com/matt-FFFFFF/adhoc/internal/pathspec"
	"github.com/matt-FFFFFF/adhoc/internal/registry"
	"github.com/spf13/afero"
)

// ErrEmptyName is returned when a registration has no name.
var ErrEmptyName = errors.New("command name must not be empty")

// ReuseMarker is the literal command argument meaning "keep the template
// already stored under this name".
const ReuseMarker = "."

// completionEnabled gates the completion-script side effect; there is no
// system-wide bash completion directory on Windows.
var completionEnabled = runtime.GOOS != "windows"

// TemplateSource says where the command template for a registration comes
// from: a literal template, or reuse of the stored one.
type TemplateSource interface {
	resolve(r *registry.Registry, name string) (string, error)
}

// Literal is a new or replacement command template. An empty template is
// valid and dispatches to nothing.
type Literal string

func (l Literal) resolve(_ *registry.Registry, _ string) (string, error) {
	return string(l), nil
}

// ReuseStored keeps the template already registered under the name. It
// cannot bootstrap a new entry.
type ReuseStored struct{}

func (ReuseStored) resolve(r *registry.Registry, name string) (string, error) {
	e, err := r.Get(name)
	if err != nil {
		return "", err
	}

	return e.Command, nil
}

// ParseSource maps the raw command argument onto its template source.
func ParseSource(raw string) TemplateSource {
	if raw == ReuseMarker {
		return ReuseStored{}
	}

	return Literal(raw)
}

// Service performs registrations and the follow-up completion refresh.
type Service struct {
	FS             afero.Fs
	Tool           string
	CompletionPath string
	Builtins       []completion.Builtin
}

// NewService returns a Service writing completion scripts to the
// system-wide bash completion directory.
func NewService(fs afero.Fs) *Service {
	return &Service{
		FS:             fs,
		Tool:           "adhoc",
		CompletionPath: completion.DefaultPath,
		Builtins: []completion.Builtin{
			{Name: "docs", Flags: []string{"-a", "--api", "-o", "--offline"}},
			{Name: "config", Flags: []string{"-e", "--export", "-i", "--import"}},
			{Name: "register"},
		},
	}
}

// Register resolves the template source, normalizes the path input into its
// canonical stored form, overwrites the entry under name and saves the
// registry. On hosts with a completion directory the script is regenerated
// afterwards; a failed write is logged and never rolls back the
// registration.
func (s *Service) Register(ctx context.Context, r *registry.Registry, name string, src TemplateSource, pathsInput string) error {
	if name == "" {
		return ErrEmptyName
	}

	template, err := src.resolve(r, name)
	if err != nil {
		return err
	}

	r.Set(registry.Entry{
		Name:    name,
		Command: template,
		Paths:   pathspec.Normalize(pathsInput),
	})

	if err := r.Save(); err != nil {
		return err
	}

	if completionEnabled {
		s.refreshCompletion(ctx, r)
	}

	return nil
}

func (s *Service) refreshCompletion(ctx context.Context, r *registry.Registry) {
	script := completion.Script(s.Tool, s.Builtins, r.Names())

	if err := completion.Write(s.FS, s.CompletionPath, script); err != nil {
		ctxlog.Warn(ctx, "completion script not updated", "path", s.CompletionPath, "error", err)
		return
	}

	ctxlog.Debug(ctx, "completion script updated", "path", s.CompletionPath)
}
