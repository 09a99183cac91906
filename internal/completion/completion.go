// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package completion generates the bash completion script covering the
// built-in subcommands and every registered command name. Script is a pure
// function; callers decide whether and where the result is written.
package completion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ErrCompletionWrite is returned when the completion script cannot be
// written. Callers treat it as non-fatal.
var ErrCompletionWrite = errors.New("failed to write completion script")

// DefaultPath is the system-wide bash completion destination.
const DefaultPath = "/etc/bash_completion.d/adhoc.sh"

const scriptFileMode = 0o644

// Builtin is a fixed subcommand with its completable option flags.
type Builtin struct {
	Name  string
	Flags []string
}

// Script builds a bash completion body for tool. Builtins complete with
// their flags as second-level words; registered names complete with none.
func Script(tool string, builtins []Builtin, names []string) string {
	words := make([]string, 0, len(builtins)+len(names))
	for _, b := range builtins {
		words = append(words, b.Name)
	}

	words = append(words, names...)

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "_%s()\n{\n", tool)
	sb.WriteString("    local cur prev\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	sb.WriteString("    case \"${prev}\" in\n")

	for _, b := range builtins {
		if len(b.Flags) == 0 {
			continue
		}

		fmt.Fprintf(sb, "        %s)\n", b.Name)
		fmt.Fprintf(sb, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n",
			strings.Join(b.Flags, " "))
		sb.WriteString("            return 0\n")
		sb.WriteString("            ;;\n")
	}

	sb.WriteString("        *)\n")
	sb.WriteString("            ;;\n")
	sb.WriteString("    esac\n\n")
	fmt.Fprintf(sb, "    COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n",
		strings.Join(words, " "))
	sb.WriteString("    return 0\n")
	sb.WriteString("}\n\n")
	fmt.Fprintf(sb, "complete -F _%s %s\n", tool, tool)

	return sb.String()
}

// Write stores a generated script at path, wrapping any failure in
// ErrCompletionWrite so callers can report it without aborting.
func Write(fs afero.Fs, path, script string) error {
	if err := afero.WriteFile(fs, path, []byte(script), scriptFileMode); err != nil {
		return errors.Join(ErrCompletionWrite, err)
	}

	return nil
}
