// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

// Cursor is the mutable matching state of a single request path. A route table walker creates one Cursor per
// request and chains match attempts against it while descending mount points: each successful attempt
// advances the cursor past the consumed part of the path and commits the captured parameters, while a failed
// attempt leaves both position and parameters untouched, so the next candidate pattern can be tried.
//
// A Cursor is not safe for concurrent use and must not be shared between requests.
type Cursor interface {
	// StaticPartialMatch matches literal at the current position, allowing the path to continue past it.
	StaticPartialMatch(literal string) Result
	// StaticFullMatch matches literal at the current position, requiring it to consume the rest of the path.
	StaticFullMatch(literal string) Result
	// DynamicPartialMatch matches pattern at the current position, allowing the path to continue past it.
	// Static patterns are delegated to StaticPartialMatch.
	DynamicPartialMatch(pattern Pattern) Result
	// DynamicFullMatch matches pattern at the current position, requiring it to consume the rest of the path.
	// Static patterns are delegated to StaticFullMatch.
	DynamicFullMatch(pattern Pattern) Result
	// Done reports whether the whole path has been consumed.
	Done() bool
	// Params returns the parameters committed so far. When the cursor owns its parameters (nil params
	// given to Reset or to the constructor), the returned slice shares their backing array: it is only
	// valid until the next Reset, and must be cloned to outlive it.
	Params() Params
	// Reset rewinds the cursor to the start of path, committing future captures to params. If params
	// is nil, the cursor reuses its own parameters.
	Reset(path string, params *Params)
}

var (
	_ Cursor = (*IndexCursor)(nil)
	_ Cursor = (*TokenCursor)(nil)
)
