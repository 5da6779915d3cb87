// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import "context"

// # Country Data Access

// Repository defines the data access contract for the country domain.
type Repository interface {

	// ListActive returns active countries ordered by name.
	ListActive(context context.Context) ([]*Country, error)

	// Create inserts an active country and stores the generated id on c.
	Create(context context.Context, c *Country) error

	/*
		Rename changes the name of an active country.

		Returns:
		  - error: dberr.ErrNotFound if no active country has the id
	*/
	Rename(context context.Context, id int, name string) error

	/*
		SoftDelete clears the active flag of one country.

		Returns:
		  - error: dberr.ErrNotFound if no active country has the id
	*/
	SoftDelete(context context.Context, id int) error
}

// ListCache holds a copy of the active country list.
//
// Every invalidation advances a generation counter. A list read from the
// database is stored only if the generation observed before the read is
// still current, so a write that lands during the read cannot be masked.
type ListCache interface {

	// Load returns the cached list and whether it was present.
	Load(context context.Context) ([]*Country, bool, error)

	// Generation returns the current invalidation counter.
	Generation(context context.Context) (int64, error)

	// Store replaces the cached list unless the generation has moved past
	// generation. It reports whether the list was written.
	Store(context context.Context, generation int64, countries []*Country) (bool, error)

	// Invalidate drops the cached list and advances the generation.
	Invalidate(context context.Context) error
}
