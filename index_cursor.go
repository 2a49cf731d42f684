// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"log/slog"
)

// IndexCursor is a [Cursor] that tracks an offset into the raw path. The path is never sliced into segments
// nor copied: captured values are substrings of it. Once fully consumed, an IndexCursor only matches the
// empty literal.
type IndexCursor struct {
	path    string
	params  *Params
	owned   Params
	scratch Params
	log     *slog.Logger
	pos     int
}

// Reset rewinds the cursor to the start of path. See [Cursor.Reset].
func (c *IndexCursor) Reset(path string, params *Params) {
	c.path = path
	c.pos = 0
	c.scratch = c.scratch[:0]
	if params == nil {
		c.owned = c.owned[:0]
		params = &c.owned
	}
	c.params = params
}

// StaticPartialMatch implements [Cursor.StaticPartialMatch] using [MatchStatic].
func (c *IndexCursor) StaticPartialMatch(literal string) Result {
	r := MatchStatic(c.path, c.pos, literal)
	if c.log != nil {
		trace(c.log, IndexStrategy, opStaticPartial, c.path, literal, c.pos, r)
	}
	c.advance(r)
	return r
}

// StaticFullMatch implements [Cursor.StaticFullMatch] using [MatchStaticExact].
func (c *IndexCursor) StaticFullMatch(literal string) Result {
	r := MatchStaticExact(c.path, c.pos, literal)
	if c.log != nil {
		trace(c.log, IndexStrategy, opStaticFull, c.path, literal, c.pos, r)
	}
	c.advance(r)
	return r
}

// DynamicPartialMatch implements [Cursor.DynamicPartialMatch]. See [MatchDynamic] for the matching rules.
func (c *IndexCursor) DynamicPartialMatch(pattern Pattern) Result {
	if pattern.IsStatic() {
		return c.StaticPartialMatch(pattern.tokens[0].value)
	}
	return c.matchDynamic(pattern, true, opDynamicPartial)
}

// DynamicFullMatch implements [Cursor.DynamicFullMatch]. See [MatchDynamic] for the matching rules.
func (c *IndexCursor) DynamicFullMatch(pattern Pattern) Result {
	if pattern.IsStatic() {
		return c.StaticFullMatch(pattern.tokens[0].value)
	}
	return c.matchDynamic(pattern, false, opDynamicFull)
}

func (c *IndexCursor) matchDynamic(pattern Pattern, allowPartial bool, op string) Result {
	var r Result
	if c.pos < len(c.path) {
		c.scratch = c.scratch[:0]
		r = matchTokens(c.path, c.pos, pattern.tokens, allowPartial, &c.scratch)
	}

	if c.log != nil {
		trace(c.log, IndexStrategy, op, c.path, pattern.String(), c.pos, r)
	}

	if r.kind != NoMatch {
		c.params.merge(c.scratch)
		c.advance(r)
	}
	return r
}

func (c *IndexCursor) advance(r Result) {
	switch r.kind {
	case FullMatch:
		c.pos = len(c.path)
	case PartialMatch:
		c.pos = r.pos
	}
}

// Done implements [Cursor.Done].
func (c *IndexCursor) Done() bool {
	return c.pos >= len(c.path)
}

// Params implements [Cursor.Params].
func (c *IndexCursor) Params() Params {
	return *c.params
}

// Path returns the path being matched.
func (c *IndexCursor) Path() string {
	return c.path
}

// Pos returns the current offset into the path.
func (c *IndexCursor) Pos() int {
	return c.pos
}

// Remaining returns the part of the path yet to be matched.
func (c *IndexCursor) Remaining() string {
	return c.path[c.pos:]
}
