package variants

// Expand returns every combination of the given levels, one DefineSet per
// leaf, in level-major order (the last level varies fastest).
//
// The number of results is the product of the option counts of the non-empty
// levels. Zero levels yield a single empty DefineSet.
func Expand(levels []Level) []DefineSet {
	return expandFrom(levels, nil)
}

// expandFrom never mutates path; each branch extends its own copy.
func expandFrom(levels []Level, path []DefineOption) []DefineSet {
	if len(levels) == 0 {
		return []DefineSet{newDefineSet(path)}
	}

	level, rest := levels[0], levels[1:]
	if len(level) == 0 {
		return expandFrom(rest, path)
	}

	var out []DefineSet
	for _, opt := range level {
		branch := path
		if !opt.IsPlaceholder() {
			branch = append(path[:len(path):len(path)], opt)
		}
		out = append(out, expandFrom(rest, branch)...)
	}
	return out
}

// Count returns how many DefineSets Expand would produce for levels.
func Count(levels []Level) int {
	n := 1
	for _, level := range levels {
		if len(level) > 0 {
			n *= len(level)
		}
	}
	return n
}
