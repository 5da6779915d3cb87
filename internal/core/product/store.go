// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// # Product Data Access

// Repository defines the data access contract for the product domain.
type Repository interface {

	/*
		List returns one window of active products matching filter, plus the
		total number of matches.

		Parameters:
		  - context: context.Context
		  - filter: Filter (CategoryIDs already resolved by the caller)

		Returns:
		  - *Result: Page and unpaged count
		  - error: Database failures
	*/
	List(context context.Context, filter Filter) (*Result, error)

	// Create inserts an active product and stores the generated id on p.
	Create(context context.Context, p *Product) error

	/*
		Update overwrites every editable field of an active product.

		Returns:
		  - error: dberr.ErrNotFound if no active product has p.ID
	*/
	Update(context context.Context, p *Product) error

	// SoftDelete clears the active flag on every listed product and reports
	// how many rows changed.
	SoftDelete(context context.Context, ids []int) (int64, error)
}
