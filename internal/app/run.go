package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/efscriptgen/internal/backend"
	"github.com/vk/efscriptgen/internal/ctxlog"
	"github.com/vk/efscriptgen/internal/discovery"
	"github.com/vk/efscriptgen/internal/fsutil"
	"github.com/vk/efscriptgen/internal/script"
	"github.com/vk/efscriptgen/internal/variants"
)

// Result summarizes a run.
type Result struct {
	// NothingToDo is set when the input folder is missing or holds no sources.
	NothingToDo bool
	Sources     int
	Variants    int
	// Scripts counts written scripts across all backends.
	Scripts int
}

// Run discovers the sources under the input folder and writes the scripts of
// every backend. Any error aborts the run; scripts written before the error
// are left in place.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info(fmt.Sprintf("Effect compilation script generator %s.", Version))

	folder := a.config.InputFolder
	if !fsutil.DirExists(folder) {
		a.logger.Info(fmt.Sprintf("Could not find '%s'.", folder))
		return &Result{NothingToDo: true}, nil
	}

	root, err := filepath.Abs(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", folder, err)
	}

	pairs, err := discovery.Discover(ctx, root)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		a.logger.Info(fmt.Sprintf("No '%s' found at folder '%s'.", discovery.SourceExt, folder))
		return &Result{NothingToDo: true}, nil
	}

	units, err := a.expand(ctx, pairs)
	if err != nil {
		return nil, err
	}

	result := &Result{Sources: len(units)}
	for _, u := range units {
		result.Variants += len(u.Variants)
	}

	asm := &script.Assembler{Root: root, Extension: a.config.Extension}
	for _, b := range backend.All() {
		out, err := asm.Assemble(ctx, b, units)
		if err != nil {
			return nil, fmt.Errorf("failed to assemble %s scripts: %w", b.Name, err)
		}
		if err := script.Write(ctx, a.writer, out); err != nil {
			return nil, fmt.Errorf("failed to write %s scripts: %w", b.Name, err)
		}
		result.Scripts += len(out.Scripts)
		a.logger.Debug("Backend scripts generated.", "backend", b.Name, "dir", out.Dir, "scripts", len(out.Scripts))
	}

	a.logger.Info("The scripts generation was a success.", "sources", result.Sources, "variants", result.Variants, "scripts", result.Scripts)
	return result, nil
}

// expand parses each pair's descriptor and expands its levels. A pair without
// a descriptor has the single empty variant.
func (a *App) expand(ctx context.Context, pairs []discovery.Pair) ([]script.Unit, error) {
	units := make([]script.Unit, 0, len(pairs))
	for _, p := range pairs {
		desc, err := descriptorFor(p)
		if err != nil {
			return nil, err
		}

		sets := variants.Expand(desc.Levels)
		a.logger.Debug("Variants expanded.", "source", p.Source, "levels", len(desc.Levels), "variants", len(sets))
		if a.config.PrintTree {
			fmt.Fprintln(a.outW, variants.Tree(filepath.Base(p.Source), desc.Levels))
		}

		units = append(units, script.Unit{Pair: p, Variants: sets})
	}
	return units, nil
}

func descriptorFor(p discovery.Pair) (*variants.Descriptor, error) {
	switch {
	case p.Parsed != nil:
		return p.Parsed, nil
	case p.Descriptor == "":
		return &variants.Descriptor{}, nil
	default:
		return variants.ParseFile(p.Descriptor)
	}
}
