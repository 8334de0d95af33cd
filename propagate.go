package prism

import "github.com/prismengine/prism/transform"

// HierarchyEntry is one node of a flattened transform hierarchy: its local
// transform and the index of its parent entry, or a negative index for a
// root node.
type HierarchyEntry struct {
	Local  transform.Transform
	Parent int
}

// PropagateTransforms resolves the world transform of every entry into out,
// which must be at least as long as entries. Entries must be in topological
// order, parents before children; each child is composed with the world
// transform already written for its parent. Independent subtrees may be
// propagated concurrently by the caller as long as that ordering holds per
// subtree and no entry is written twice.
func PropagateTransforms(entries []HierarchyEntry, out []transform.GlobalTransform) {
	for i, entry := range entries {
		if entry.Parent < 0 {
			out[i] = transform.GlobalFromTransform(entry.Local)
		} else {
			out[i] = out[entry.Parent].MulTransform(entry.Local)
		}
	}
}
