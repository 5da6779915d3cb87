// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "slices"

// MaxTreeDepth is the number of levels [BuildTree] will materialize.
// Nodes on the last level are returned without children.
const MaxTreeDepth = 100

// # Projection

// NewTreeNode copies the display fields of record into a childless node.
func NewTreeNode(record *Category) *TreeNode {
	return &TreeNode{
		ID:       record.ID,
		ParentID: record.ParentID,
		Name:     record.Name,
		IsActive: record.IsActive,
	}
}

// # Tree Assembly

/*
BuildTree nests a flat snapshot of active categories into a forest.

Description: Records are grouped by parent id in a single pass, preserving
input order inside each group, and then attached recursively from the roots.
A root is any record without a parent or whose parent is not in records;
orphans are therefore surfaced rather than dropped. The caller is expected to
pass active records only; nothing is filtered here.

Parameters:
  - records: []*Category (Active snapshot, any order)

Returns:
  - []*TreeNode: Roots in input order, each with its subtree attached
*/
func BuildTree(records []*Category) []*TreeNode {
	present := make(map[int]struct{}, len(records))
	for _, record := range records {
		present[record.ID] = struct{}{}
	}

	// Group once; each record lands either under its parent or among the roots.
	children := make(map[int][]*Category, len(records))
	roots := make([]*Category, 0)
	for _, record := range records {
		if record.ParentID != nil {
			if _, ok := present[*record.ParentID]; ok {
				children[*record.ParentID] = append(children[*record.ParentID], record)
				continue
			}
		}
		roots = append(roots, record)
	}

	forest := make([]*TreeNode, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, attach(root, children, 0))
	}

	return forest
}

// attach builds the node for record and recurses into its grouped children.
// depth is zero-based; the cap keeps duplicated ids from recursing forever.
func attach(record *Category, children map[int][]*Category, depth int) *TreeNode {
	node := NewTreeNode(record)
	if depth >= MaxTreeDepth-1 {
		return node
	}

	for _, child := range children[record.ID] {
		node.Children = append(node.Children, attach(child, children, depth+1))
	}

	return node
}

// # Descendant Expansion

// IndexParents builds the id → parent id index used by [ExpandDescendantIDs].
func IndexParents(records []*Category) ParentIndex {
	index := make(ParentIndex, len(records))
	for _, record := range records {
		index[record.ID] = record.ParentID
	}
	return index
}

/*
ExpandDescendantIDs returns target followed by every transitive descendant.

Description: Starting at target, children are discovered depth-first; each
id appears once. Siblings are visited in ascending id order since the index
carries no ordering of its own. A target absent from the index (for example a
soft-deleted category requested explicitly) yields only itself.

Parameters:
  - target: int (Category id to expand)
  - parents: ParentIndex (Active categories only)

Returns:
  - []int: target first, then descendants in discovery order
*/
func ExpandDescendantIDs(target int, parents ParentIndex) []int {
	result := []int{target}
	if _, ok := parents[target]; !ok {
		return result
	}

	children := make(map[int][]int, len(parents))
	for id, parentID := range parents {
		if parentID != nil {
			children[*parentID] = append(children[*parentID], id)
		}
	}
	for _, ids := range children {
		slices.Sort(ids)
	}

	visited := map[int]struct{}{target: {}}
	var walk func(id int)
	walk = func(id int) {
		for _, child := range children[id] {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			result = append(result, child)
			walk(child)
		}
	}
	walk(target)

	return result
}
