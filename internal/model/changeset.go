package model

import "sort"

// Changeset maps an absolute source path to the sorted line numbers that
// changed since the comparison point.
type Changeset map[Path][]int

// Add records changed lines for path, keeping the list sorted and unique.
func (c Changeset) Add(path Path, lines ...int) {
	if len(lines) == 0 {
		return
	}

	seen := make(map[int]struct{}, len(c[path])+len(lines))
	merged := make([]int, 0, len(c[path])+len(lines))

	for _, l := range append(append([]int{}, c[path]...), lines...) {
		if _, ok := seen[l]; ok {
			continue
		}

		seen[l] = struct{}{}
		merged = append(merged, l)
	}

	sort.Ints(merged)
	c[path] = merged
}

// Files returns the changed paths in lexical order.
func (c Changeset) Files() []Path {
	paths := make([]Path, 0, len(c))
	for p := range c {
		paths = append(paths, p)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}
