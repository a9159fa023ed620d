// Package discovery finds the shader sources under a scan root and pairs each
// one with its variant descriptor.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/efscriptgen/internal/ctxlog"
	"github.com/vk/efscriptgen/internal/fsutil"
	"github.com/vk/efscriptgen/internal/variants"
)

// SourceExt is the extension of shader sources.
const SourceExt = ".fx"

// ErrDescriptorReferencesMissingFile is returned for a standalone descriptor
// whose source cannot be resolved.
var ErrDescriptorReferencesMissingFile = errors.New("descriptor references missing file")

// Pair is one source to generate scripts for.
type Pair struct {
	Source string
	// Descriptor is the descriptor path, empty when the source has none.
	Descriptor string
	// Standalone is set when the descriptor does not share the source's base name.
	Standalone bool
	// Parsed is filled for standalone descriptors, which are parsed during
	// discovery to find their source.
	Parsed *variants.Descriptor
}

func (p Pair) String() string {
	return fmt.Sprintf("Source = %s, Descriptor = %s", p.Source, p.Descriptor)
}

// ID returns the base name the pair's scripts are named after: the
// descriptor's when there is one, the source's otherwise.
func (p Pair) ID() string {
	name := p.Source
	if p.Descriptor != "" {
		name = p.Descriptor
	}
	name = filepath.Base(name)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Discover returns every source under root followed by every standalone
// descriptor, in walk order.
func Discover(ctx context.Context, root string) ([]Pair, error) {
	logger := ctxlog.FromContext(ctx)

	sources, err := fsutil.FindFilesByExtension(root, SourceExt)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s for sources: %w", root, err)
	}
	logger.Debug("Discovered sources.", "count", len(sources))

	// Extensions are matched without regard to case, so stems are compared
	// the same way.
	descriptors := make([][]string, len(variants.Extensions))
	byStem := make([]map[string]string, len(variants.Extensions))
	for i, ext := range variants.Extensions {
		found, err := fsutil.FindFilesByExtension(root, ext)
		if err != nil {
			return nil, fmt.Errorf("failed to search %s for descriptors: %w", root, err)
		}
		descriptors[i] = found
		byStem[i] = make(map[string]string, len(found))
		for _, desc := range found {
			if _, ok := byStem[i][stem(desc)]; !ok {
				byStem[i][stem(desc)] = desc
			}
		}
	}

	var pairs []Pair
	sourceStems := make(map[string]struct{}, len(sources))
	for _, src := range sources {
		sourceStems[stem(src)] = struct{}{}
		pair := Pair{Source: src, Descriptor: matchingDescriptor(byStem, src)}
		pairs = append(pairs, pair)
		logger.Info("Added " + pair.String())
	}

	for _, found := range descriptors {
		for _, desc := range found {
			if _, ok := sourceStems[stem(desc)]; ok {
				// Paired with its source above.
				continue
			}
			pair, err := standalone(desc)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair)
			logger.Info("Added " + pair.String())
		}
	}

	return pairs, nil
}

// matchingDescriptor returns the first descriptor, in extension preference
// order, sharing src's stem.
func matchingDescriptor(byStem []map[string]string, src string) string {
	key := stem(src)
	for _, m := range byStem {
		if desc, ok := m[key]; ok {
			return desc
		}
	}
	return ""
}

// stem returns path without its extension, lower-cased.
func stem(path string) string {
	return strings.ToLower(strings.TrimSuffix(path, filepath.Ext(path)))
}

func standalone(descPath string) (Pair, error) {
	desc, err := variants.ParseFile(descPath)
	if err != nil {
		return Pair{}, err
	}
	if desc.SourceFile == "" {
		return Pair{}, fmt.Errorf("%w: standalone descriptor %s does not name a source file", ErrDescriptorReferencesMissingFile, descPath)
	}

	src := filepath.Join(filepath.Dir(descPath), desc.SourceFile)
	if !fsutil.FileExists(src) {
		return Pair{}, fmt.Errorf("%w: could not find %s referenced by %s", ErrDescriptorReferencesMissingFile, src, descPath)
	}

	return Pair{Source: src, Descriptor: descPath, Standalone: true, Parsed: desc}, nil
}
