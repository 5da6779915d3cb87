// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// List endpoints are windowed with `skip`/`take` offsets rather than page
// numbers, matching what the admin grid sends.
package pagination

import "github.com/taibuivan/catalog/pkg/query"

const (
	// DefaultTake is the number of items returned if not specified.
	DefaultTake = 30
	// MaxTake is the upper bound for items per request to prevent system abuse.
	MaxTake = 500
)

// Window holds the parsed skip and take values from a request's query string.
type Window struct {
	Skip int
	Take int
}

// FromQuery parses "skip" and "take" query parameters.
//
// # Clamping
//
// Negative skips become 0. A missing, non-positive, or excessive take falls
// back to [DefaultTake] or is clamped to [MaxTake].
func FromQuery(values query.Values) Window {
	window := Window{Skip: 0, Take: DefaultTake}

	if skip := values.Int("skip"); skip != nil && *skip > 0 {
		window.Skip = *skip
	}

	if take := values.Int("take"); take != nil && *take > 0 {
		window.Take = min(*take, MaxTake)
	}

	return window
}
