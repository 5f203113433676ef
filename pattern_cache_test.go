// Copyright (c) 2020 Bojan Zivanovic and contributors
// SPDX-License-Identifier: MIT

package numfmt_test

import (
	"sync"
	"testing"

	"github.com/bojanz/numfmt"
)

func TestPatternCache_Compile(t *testing.T) {
	var cache numfmt.PatternCache

	meta, err := cache.Compile("#,##0.00")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if meta.Positive.MinFractionDigits != 2 {
		t.Errorf("MinFractionDigits = %d, want 2", meta.Positive.MinFractionDigits)
	}

	// A second Compile of the same pattern must return the cached result
	// rather than erroring or recomputing something different.
	again, err := cache.Compile("#,##0.00")
	if err != nil {
		t.Fatalf("Compile returned error on cache hit: %v", err)
	}
	if again.Positive.MinFractionDigits != meta.Positive.MinFractionDigits {
		t.Errorf("cached Compile disagreed with the original: got %d, want %d", again.Positive.MinFractionDigits, meta.Positive.MinFractionDigits)
	}
}

func TestPatternCache_CompileError(t *testing.T) {
	var cache numfmt.PatternCache

	_, err := cache.Compile("0@")
	if err == nil {
		t.Fatal("Compile(\"0@\") = nil error, want a FormatCompileError")
	}
	if _, ok := err.(numfmt.FormatCompileError); !ok {
		t.Errorf("got error %T, want numfmt.FormatCompileError", err)
	}

	// The negative result must be served from cache on a second call too.
	_, err2 := cache.Compile("0@")
	if err2 == nil {
		t.Fatal("second Compile(\"0@\") = nil error, want a FormatCompileError")
	}
}

// TestPatternCache_ConcurrentCompile exercises the concurrent-read,
// race-on-insert-is-fine contract from spec.md §5: many goroutines compiling
// the same small set of patterns must never panic or disagree on the result.
func TestPatternCache_ConcurrentCompile(t *testing.T) {
	var cache numfmt.PatternCache
	patterns := []string{"#,##0.00", "¤#,##0.00;(¤#,##0.00)", "#,##0%", "#E0"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		pattern := patterns[i%len(patterns)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Compile(pattern); err != nil {
				t.Errorf("Compile(%q) returned error: %v", pattern, err)
			}
		}()
	}
	wg.Wait()
}
