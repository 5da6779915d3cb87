// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses loosely-typed URL query parameters.
//
// Parameter names are matched case-insensitively (the admin UI sends
// `Take`, `SortBy`, `CategoryIds`), and list parameters accept both repeated
// keys and comma-separated values.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the calendar-date form accepted alongside RFC 3339.
const dateLayout = "2006-01-02"

// Values is a case-insensitive view over [url.Values].
type Values map[string][]string

// Fold lowercases every key of raw, merging values of keys that differ only by case.
func Fold(raw url.Values) Values {
	folded := make(Values, len(raw))
	for key, values := range raw {
		lower := strings.ToLower(key)
		folded[lower] = append(folded[lower], values...)
	}
	return folded
}

// Get returns the first non-empty value for key, trimmed.
func (v Values) Get(key string) string {
	for _, value := range v[strings.ToLower(key)] {
		if clean := strings.TrimSpace(value); clean != "" {
			return clean
		}
	}
	return ""
}

// Ints collects every integer under key. Invalid entries are ignored.
func (v Values) Ints(key string) []int {
	var res []int
	for _, raw := range v[strings.ToLower(key)] {
		res = append(res, IntSlice(StringSlice(raw))...)
	}
	return res
}

// Int parses key as an integer, returning nil when absent or malformed.
func (v Values) Int(key string) *int {
	n, err := strconv.Atoi(v.Get(key))
	if err != nil {
		return nil
	}
	return &n
}

// Float parses key as a float, returning nil when absent or malformed.
func (v Values) Float(key string) *float64 {
	f, err := strconv.ParseFloat(v.Get(key), 64)
	if err != nil {
		return nil
	}
	return &f
}

// Bool parses key as a boolean, returning fallback when absent or malformed.
func (v Values) Bool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(v.Get(key))
	if err != nil {
		return fallback
	}
	return b
}

// Time parses key as RFC 3339 or a bare YYYY-MM-DD date (UTC midnight).
func (v Values) Time(key string) *time.Time {
	raw := v.Get(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t
	}
	return nil
}

// IntSlice parses a slice of string values into a slice of integers.
// Invalid entries are ignored safely.
func IntSlice(vals []string) []int {
	var res []int
	for _, v := range vals {
		if i, err := strconv.Atoi(v); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
