// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small generic LRU cache.
//
// The font package keeps one per face to remember glyph advances, which are
// looked up once per character every time a fragment is laid out.
//
//	c := cache.New[rune, float64](512)
//	adv := c.GetOrCreate('a', func() float64 { return measure('a') })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
