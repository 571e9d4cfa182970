package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// CompareShape returns the key paths under prefix that exist in only one
// of the two catalogs, each prefixed with "-" (only in a) or "+" (only in b),
// along with paths whose node kind differs ("~").
// A prefix missing from one catalog is reported as that one difference;
// missing from both it yields "!prefix", so an absent subtree never
// compares as identical.
// An empty result means the subtrees are structurally identical.
func CompareShape(a, b *Catalog, prefix string) []string {
	left, okA := shape(a, prefix)
	right, okB := shape(b, prefix)
	switch {
	case !okA && !okB:
		return []string{"!" + prefix + " (missing in both)"}
	case !okA:
		return []string{"+" + prefix}
	case !okB:
		return []string{"-" + prefix}
	}

	var diff []string
	for path, kind := range left {
		other, ok := right[path]
		switch {
		case !ok:
			diff = append(diff, "-"+path)
		case other != kind:
			diff = append(diff, fmt.Sprintf("~%s (%s != %s)", path, kind, other))
		}
	}
	for path := range right {
		if _, ok := left[path]; !ok {
			diff = append(diff, "+"+path)
		}
	}

	slices.SortFunc(diff, func(x, y string) int { return strings.Compare(x[1:], y[1:]) })
	return diff
}

// CompareText returns the leaf paths under prefix present in both catalogs
// whose texts differ in any locale.
func CompareText(a, b *Catalog, prefix string) []string {
	var diff []string
	for _, rec := range a.Records() {
		if !underPrefix(rec.Path, prefix) {
			continue
		}
		other, err := b.Entry(rec.Path)
		if err != nil {
			continue
		}
		if other != rec.Text {
			diff = append(diff, rec.Path)
		}
	}
	return diff
}

// shape reports false when prefix does not resolve in c.
func shape(c *Catalog, prefix string) (map[string]Kind, bool) {
	out := make(map[string]Kind)
	err := c.WalkFrom(prefix, func(path string, n *Node) error {
		out[path] = n.kind
		return nil
	})
	return out, err == nil
}

func underPrefix(path, prefix string) bool {
	if prefix == "" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+PathSeparator)
}
