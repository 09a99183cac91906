// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pathspec encodes and decodes the textual path lists attached to
// registered commands. A spec is either a bare path or a bracketed,
// comma-separated list such as "[/a,/b]". Specs are stored with forward
// slashes and expanded to the native separator only when parsed.
package pathspec

import (
	"path/filepath"
	"strings"
)

const (
	listOpen  = "["
	listClose = "]"
	separator = ","
)

// Parse expands a stored path spec into the list of directories to run in.
// A bracketed spec yields one directory per comma-separated element, with
// surrounding whitespace and quote characters trimmed. Anything else is a
// single directory; an empty spec yields a single empty string, which
// callers treat as the current directory. Paths are never checked for
// existence here.
func Parse(raw string) []string {
	if !strings.HasPrefix(raw, listOpen) {
		return []string{filepath.FromSlash(raw)}
	}

	raw = strings.TrimPrefix(raw, listOpen)
	raw = strings.TrimSuffix(raw, listClose)

	elems := strings.Split(raw, separator)
	dirs := make([]string, 0, len(elems))

	for _, e := range elems {
		e = strings.TrimSpace(e)
		e = strings.Trim(e, `'"`)
		dirs = append(dirs, filepath.FromSlash(e))
	}

	return dirs
}

// Normalize converts raw comma-separated user input into the canonical
// stored form: each element trimmed and with backslashes mapped to forward
// slashes. Two or more elements serialize bracketed, a single element stays
// bare and an empty input stays empty.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	elems := strings.Split(raw, separator)
	for i, e := range elems {
		elems[i] = strings.TrimSpace(strings.ReplaceAll(e, `\`, "/"))
	}

	if len(elems) == 1 {
		return elems[0]
	}

	return listOpen + strings.Join(elems, separator) + listClose
}
