// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package script assembles the batch scripts for one backend: one script per
// source, named after the source's flattened relative path, and one "all"
// script concatenating them in processing order.
package script

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/efscriptgen/internal/backend"
	"github.com/vk/efscriptgen/internal/ctxlog"
	"github.com/vk/efscriptgen/internal/discovery"
	"github.com/vk/efscriptgen/internal/variants"
)

const (
	// Newline terminates every script line.
	Newline = "\r\n"
	// AllID names the aggregate script.
	AllID = "all"
	// binDir is the directory under a backend folder receiving compiled artifacts.
	binDir = "bin"
)

// Writer creates directories and files on behalf of the assembler.
type Writer interface {
	EnsureDir(dir string) error
	WriteFile(path, content string) error
}

// Unit is one source with its expanded define sets.
type Unit struct {
	Pair     discovery.Pair
	Variants []variants.DefineSet
}

// Script is the content of one generated script.
type Script struct {
	ID      string
	Content string
}

// FileName returns the script's file name.
func (s Script) FileName() string {
	return "compile_" + s.ID + ".bat"
}

// Output is everything generated for one backend.
type Output struct {
	Backend backend.Backend
	// Dir is the backend folder under the scan root that holds the scripts.
	Dir string
	// ArtifactDirs are the directories the compiled artifacts will be written to.
	ArtifactDirs []string
	// Scripts holds the per-source scripts in processing order, then the "all" script.
	Scripts []Script
}

// Assembler builds Outputs for sources under Root.
type Assembler struct {
	// Root is the absolute scan root.
	Root string
	// Extension is the compiled artifact extension.
	Extension string
}

// Assemble synthesizes every variant of every unit for b.
func (a *Assembler) Assemble(ctx context.Context, b backend.Backend, units []Unit) (*Output, error) {
	logger := ctxlog.FromContext(ctx).With("backend", b.Name)

	backendDir := filepath.Join(a.Root, b.Subfolder)
	out := &Output{Backend: b, Dir: backendDir}

	index := make(map[string]int)
	for _, u := range units {
		rel, err := a.relativeDir(u.Pair.Source)
		if err != nil {
			return nil, err
		}

		artifactDir := filepath.Join(backendDir, binDir, rel)
		out.ArtifactDirs = append(out.ArtifactDirs, artifactDir)

		src, err := filepath.Abs(u.Pair.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", u.Pair.Source, err)
		}

		var sb strings.Builder
		for _, ds := range u.Variants {
			inv := b.Synthesize(src, artifactDir, ds, a.Extension)
			for _, line := range inv.Lines {
				sb.WriteString(line)
				sb.WriteString(Newline)
			}
			logger.Debug("Variant synthesized.", "source", src, "defines", ds.String(), "output", inv.OutputFile)
		}

		s := Script{ID: FlattenID(rel, u.Pair.ID()), Content: sb.String()}
		if i, ok := index[s.ID]; ok {
			out.Scripts[i] = s
			continue
		}
		index[s.ID] = len(out.Scripts)
		out.Scripts = append(out.Scripts, s)
	}

	// A source whose id is "all" still contributes to the aggregate, but only
	// the aggregate is written under that name.
	contents := make([]string, len(out.Scripts))
	perFile := out.Scripts[:0]
	for i, s := range out.Scripts {
		contents[i] = s.Content
		if s.ID != AllID {
			perFile = append(perFile, s)
		}
	}
	out.Scripts = append(perFile, Script{ID: AllID, Content: strings.Join(contents, Newline)})

	return out, nil
}

// relativeDir returns the source's directory relative to Root, or "" for Root itself.
func (a *Assembler) relativeDir(source string) (string, error) {
	abs, err := filepath.Abs(filepath.Dir(source))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", source, err)
	}
	rel, err := filepath.Rel(a.Root, abs)
	if err != nil {
		return "", fmt.Errorf("source %s is outside %s: %w", source, a.Root, err)
	}
	if rel == "." {
		return "", nil
	}
	return rel, nil
}

// FlattenID joins a relative directory and a name into a single script
// identifier, replacing both kinds of path separator with "_".
func FlattenID(relDir, name string) string {
	id := name
	if relDir != "" {
		id = relDir + "/" + name
	}
	return strings.NewReplacer(`\`, "_", "/", "_").Replace(id)
}

// Write creates the artifact directories and writes every script into the
// backend folder.
func Write(ctx context.Context, w Writer, out *Output) error {
	logger := ctxlog.FromContext(ctx).With("backend", out.Backend.Name)

	for _, dir := range out.ArtifactDirs {
		if err := w.EnsureDir(dir); err != nil {
			return err
		}
	}
	for _, s := range out.Scripts {
		path := filepath.Join(out.Dir, s.FileName())
		if err := w.WriteFile(path, s.Content); err != nil {
			return err
		}
		logger.Debug("Script written.", "path", path)
	}
	return nil
}
