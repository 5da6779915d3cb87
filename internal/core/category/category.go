// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category defines the hierarchical product categories of the catalog.

Categories form a forest through a nullable parent reference. Records are
never physically removed; deleting a category clears its active flag, which
hides it (and detaches its subtree) from every read path.

Core Responsibility:

  - Storage: Flat [Category] rows in PostgreSQL.
  - Projection: Nested [TreeNode] forests assembled per request (see tree.go).
  - Scoping: Descendant-id expansion consumed by the product listing.
*/
package category

// # Field Identifiers

const (
	FieldID       = "id"
	FieldParentID = "parentId"
	FieldName     = "name"
)

// nameMaxLen mirrors the VARCHAR(255) column.
const nameMaxLen = 255

// # Domain Entities

// Category is a flat category record as stored.
type Category struct {
	ID       int    `json:"id"`
	ParentID *int   `json:"parentId"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// TreeNode is the nested, display-ready projection of a [Category].
//
// It is rebuilt on every request and never persisted. Children is nil for
// leaves so the field is omitted from JSON.
type TreeNode struct {
	ID       int         `json:"id"`
	ParentID *int        `json:"parentId"`
	Name     string      `json:"name"`
	IsActive bool        `json:"isActive"`
	Children []*TreeNode `json:"children,omitempty"`
}

// ParentIndex maps an active category id to its optional parent id.
type ParentIndex map[int]*int
