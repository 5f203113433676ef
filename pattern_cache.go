// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt

import "sync"

// PatternCache caches CompilePattern results keyed by pattern string.
//
// The cache must be safe for concurrent reads, and races on insert are
// acceptable since the compile result is deterministic: last-writer-wins
// loses no information. sync.Map gives exactly that contract for this kind
// of read-mostly, keyed-by-string lookup. A zero-value PatternCache is
// ready to use.
type PatternCache struct {
	entries sync.Map // pattern string -> cacheEntry
}

type cacheEntry struct {
	meta PatternMetadata
	err  error
}

// Compile returns the PatternMetadata for pattern, compiling and caching it
// on first use. A negative (error) result is cached too, so a malformed
// pattern string doesn't get re-parsed on every call.
func (c *PatternCache) Compile(pattern string) (PatternMetadata, error) {
	if v, ok := c.entries.Load(pattern); ok {
		entry := v.(cacheEntry)
		return entry.meta, entry.err
	}

	meta, err := CompilePattern(pattern)
	// Last-writer-wins on a race is fine: CompilePattern is a pure function
	// of its input, so any racing writer computes the identical result.
	c.entries.Store(pattern, cacheEntry{meta: meta, err: err})

	return meta, err
}

// defaultPatternCache is the process-wide cache Format uses for every
// pattern it compiles.
var defaultPatternCache = &PatternCache{}
