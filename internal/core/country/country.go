// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package country manages the country-of-origin dictionary.

The active list is read on nearly every admin page, so it is served through
a Redis-backed cache (see store_redis.go) that is dropped on every write.
*/
package country

// # Field Identifiers

const (
	FieldID   = "id"
	FieldName = "name"
)

const nameMaxLen = 255

// Country is a dictionary entry.
type Country struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// SaveInput is the create and update payload.
type SaveInput struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}
