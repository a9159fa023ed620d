// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the descriptor model: options, levels and the DefineSet
// materialized at every leaf of the expansion.
//
// A DefineSet behaves like a map from define name to value, but it remembers the
// order in which names were first seen. Output file names are built from that
// order, so a plain Go map cannot be used here.
package variants

import "strings"

const (
	// Placeholder is the option name that contributes nothing to a combination.
	Placeholder = "_"
	// DefaultValue is the value of an option written without "=".
	DefaultValue = "1"
)

// DefineOption is one selectable define on a level.
type DefineOption struct {
	Name  string
	Value string
}

// IsPlaceholder reports whether the option is the no-op "_" option.
func (o DefineOption) IsPlaceholder() bool {
	return o.Name == Placeholder
}

// Token returns the option as it is passed to a compiler: NAME when the value
// is the default, NAME=VALUE otherwise.
func (o DefineOption) Token() string {
	if o.Value == DefaultValue {
		return o.Name
	}
	return o.Name + "=" + o.Value
}

func (o DefineOption) String() string {
	if o.IsPlaceholder() {
		return Placeholder
	}
	return o.Token()
}

// Level is one axis of variation. Option order drives enumeration order.
type Level []DefineOption

// Descriptor is the parsed form of a variant descriptor file.
type Descriptor struct {
	// SourceFile is the source named by a standalone descriptor, relative to the
	// descriptor's directory. Empty when the descriptor does not name one.
	SourceFile string
	Levels     []Level
}

// DefineSet is one concrete combination of defines.
type DefineSet struct {
	entries []DefineOption
}

// newDefineSet materializes a path. A name seen twice keeps its first position
// and takes the later value.
func newDefineSet(path []DefineOption) DefineSet {
	var ds DefineSet
	for _, opt := range path {
		ds.set(opt.Name, opt.Value)
	}
	return ds
}

// NewDefineSet builds a DefineSet from options in materialization order.
// Placeholder options are skipped.
func NewDefineSet(opts ...DefineOption) DefineSet {
	path := make([]DefineOption, 0, len(opts))
	for _, opt := range opts {
		if !opt.IsPlaceholder() {
			path = append(path, opt)
		}
	}
	return newDefineSet(path)
}

func (ds *DefineSet) set(name, value string) {
	for i := range ds.entries {
		if ds.entries[i].Name == name {
			ds.entries[i].Value = value
			return
		}
	}
	ds.entries = append(ds.entries, DefineOption{Name: name, Value: value})
}

// Len returns the number of defines in the set.
func (ds DefineSet) Len() int {
	return len(ds.entries)
}

// Entries returns the defines in materialization order.
func (ds DefineSet) Entries() []DefineOption {
	out := make([]DefineOption, len(ds.entries))
	copy(out, ds.entries)
	return out
}

// Get returns the value of the named define.
func (ds DefineSet) Get(name string) (string, bool) {
	for _, e := range ds.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

func (ds DefineSet) String() string {
	tokens := make([]string, len(ds.entries))
	for i, e := range ds.entries {
		tokens[i] = e.Token()
	}
	return "{" + strings.Join(tokens, ", ") + "}"
}
