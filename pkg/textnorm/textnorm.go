// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalizes user-entered display text.
//
// # Usage
//
// Category, product and country names arrive from browsers in whatever
// Unicode form the keyboard produced (Georgian and Latin text with combining
// marks is common). Normalizing before persistence keeps equality and
// substring filters stable.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean returns s in Unicode NFC with whitespace runs collapsed to a single
// space and leading/trailing whitespace removed.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (composes "e" + combining acute into "é").
// 2. Collapses internal whitespace (tabs, newlines, NBSP) to one space.
// 3. Trims the result.
func Clean(s string) string {
	composed := norm.NFC.String(s)
	return strings.Join(strings.FieldsFunc(composed, unicode.IsSpace), " ")
}

// Fold returns the lowercase NFC form of s, used for case-insensitive matching.
func Fold(s string) string {
	return strings.ToLower(Clean(s))
}
