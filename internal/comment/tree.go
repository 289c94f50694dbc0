package comment

import (
	"sort"
)

// BuildTree assembles a flat list of hydrated comments into a hierarchy of
// root comments with nested replies.
//
// Replies attach to their direct parent and are kept oldest-first. A comment
// whose parent id resolves to no comment in the input (an orphan, e.g. its
// parent was deleted) is excluded from the result entirely. Root ordering is
// applied after construction according to the sort mode.
func BuildTree(views []*View, mode SortMode) []*View {
	index := make(map[string]*View, len(views))
	for _, v := range views {
		v.Replies = []*View{}
		index[v.ID.String()] = v
	}

	roots := make([]*View, 0, len(views))
	for _, v := range views {
		if v.ParentID == nil {
			roots = append(roots, v)
			continue
		}
		parent, ok := index[v.ParentID.String()]
		if !ok {
			// Orphan: neither a root nor attached anywhere.
			continue
		}
		parent.Replies = append(parent.Replies, v)
	}

	for _, v := range views {
		if len(v.Replies) > 1 {
			sort.SliceStable(v.Replies, func(i, j int) bool {
				return v.Replies[i].CreatedAt.Before(v.Replies[j].CreatedAt)
			})
		}
	}

	sortRoots(roots, mode)
	return roots
}

// sortRoots orders root comments per the requested presentation mode.
func sortRoots(roots []*View, mode SortMode) {
	switch mode {
	case SortTop:
		sort.SliceStable(roots, func(i, j int) bool {
			return roots[i].Likes > roots[j].Likes
		})
	default:
		sort.SliceStable(roots, func(i, j int) bool {
			return roots[i].CreatedAt.After(roots[j].CreatedAt)
		})
	}
}
