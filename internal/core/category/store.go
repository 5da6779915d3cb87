// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

// # Category Data Access

// Repository defines the data access contract for the category domain.
type Repository interface {

	// ListActive returns every active category ordered by id.
	ListActive(context context.Context) ([]*Category, error)

	/*
		Create inserts an active category and stores the generated id on c.

		Parameters:
		  - context: context.Context
		  - c: *Category (Name and ParentID are persisted)

		Returns:
		  - error: Database failures
	*/
	Create(context context.Context, c *Category) error

	/*
		Rename changes the name of an active category.

		Returns:
		  - *Category: The record after the update
		  - error: dberr.ErrNotFound if no active category has the id
	*/
	Rename(context context.Context, id int, name string) (*Category, error)

	// SoftDelete clears the active flag on every listed category and reports
	// how many rows changed.
	SoftDelete(context context.Context, ids []int) (int64, error)
}
