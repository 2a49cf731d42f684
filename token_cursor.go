// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"log/slog"
	"strings"

	"github.com/fox-toolkit/pathmatch/internal/iterutil"
)

// TokenCursor is a [Cursor] that splits the path into '/' delimited segments once, and matches by comparing
// patterns against the leading remaining segments. Matching narrows the remaining segments and never does
// offset arithmetic on the path.
//
// Patterns must be segment aligned (see [Pattern.SegmentAligned]) and a partial match must end on a segment
// boundary, e.g. "/api" partially matches "/api/users" but not "/apiv2/users". Within a segment, literals
// and parameters may be mixed freely, as in "/v{version}/users". A path that does not start with '/' matches nothing.
type TokenCursor struct {
	segments []string
	params   *Params
	owned    Params
	scratch  Params
	log      *slog.Logger
	start    int
	// unrooted is set when the path does not start with '/'. Such a path has no segment and matches nothing.
	unrooted bool
}

// SplitPath splits path on '/', discarding the leading empty segment produced by the leading '/'.
// An empty path has no segment, and "/" has a single empty segment. It returns nil if path is not
// empty and does not start with '/'.
func SplitPath(path string) []string {
	if !rooted(path) {
		return nil
	}
	return appendSegments(make([]string, 0, strings.Count(path, "/")), path)
}

func rooted(path string) bool {
	return path == "" || path[0] == slashDelim
}

// appendSegments expects a rooted path.
func appendSegments(dst []string, path string) []string {
	if path == "" {
		return dst
	}
	for seg := range iterutil.SplitStringSeq(path[1:], "/") {
		dst = append(dst, seg)
	}
	return dst
}

// NewTokenCursorFromSegments returns a new [TokenCursor] over already split segments, as returned by [SplitPath].
// The cursor takes ownership of segments.
func (m *Matcher) NewTokenCursorFromSegments(segments []string, params *Params) *TokenCursor {
	c := m.NewTokenCursor("", params)
	c.segments = segments
	return c
}

// Reset rewinds the cursor to the start of path. The segments buffer is reused. See [Cursor.Reset].
func (c *TokenCursor) Reset(path string, params *Params) {
	c.segments = c.segments[:0]
	c.unrooted = !rooted(path)
	if !c.unrooted {
		c.segments = appendSegments(c.segments, path)
	}
	c.start = 0
	c.scratch = c.scratch[:0]
	if params == nil {
		c.owned = c.owned[:0]
		params = &c.owned
	}
	c.params = params
}

// StaticPartialMatch implements [Cursor.StaticPartialMatch]. The literal is compared segment by segment
// against the remaining segments.
func (c *TokenCursor) StaticPartialMatch(literal string) Result {
	return c.matchStatic(literal, true, opStaticPartial)
}

// StaticFullMatch implements [Cursor.StaticFullMatch].
func (c *TokenCursor) StaticFullMatch(literal string) Result {
	return c.matchStatic(literal, false, opStaticFull)
}

// DynamicPartialMatch implements [Cursor.DynamicPartialMatch].
func (c *TokenCursor) DynamicPartialMatch(pattern Pattern) Result {
	if pattern.IsStatic() {
		return c.StaticPartialMatch(pattern.tokens[0].value)
	}
	return c.matchDynamic(pattern, true, opDynamicPartial)
}

// DynamicFullMatch implements [Cursor.DynamicFullMatch].
func (c *TokenCursor) DynamicFullMatch(pattern Pattern) Result {
	if pattern.IsStatic() {
		return c.StaticFullMatch(pattern.tokens[0].value)
	}
	return c.matchDynamic(pattern, false, opDynamicFull)
}

func (c *TokenCursor) matchStatic(literal string, allowPartial bool, op string) Result {
	r := c.staticResult(literal, allowPartial)
	if c.log != nil {
		trace(c.log, TokenStrategy, op, c.path(), literal, c.start, r)
	}
	c.advance(r)
	return r
}

func (c *TokenCursor) staticResult(literal string, allowPartial bool) Result {
	if c.unrooted {
		return noMatch()
	}
	remaining := c.segments[c.start:]

	// The empty literal only matches a fully consumed path.
	if literal == "" {
		if len(remaining) == 0 {
			return fullMatch()
		}
		return noMatch()
	}

	if literal[0] != slashDelim {
		return noMatch()
	}

	text := literal[1:]
	i := 0
	for {
		if i >= len(remaining) {
			return noMatch()
		}
		idx := strings.IndexByte(text, slashDelim)
		if idx < 0 {
			if remaining[i] != text {
				return noMatch()
			}
			i++
			break
		}
		if remaining[i] != text[:idx] {
			return noMatch()
		}
		i++
		text = text[idx+1:]
	}

	if i == len(remaining) {
		return fullMatch()
	}
	if !allowPartial {
		return noMatch()
	}
	return partialMatch(c.start + i)
}

func (c *TokenCursor) matchDynamic(pattern Pattern, allowPartial bool, op string) Result {
	r := c.dynamicResult(pattern, allowPartial)
	if c.log != nil {
		trace(c.log, TokenStrategy, op, c.path(), pattern.String(), c.start, r)
	}
	if r.kind != NoMatch {
		c.params.merge(c.scratch)
		c.advance(r)
	}
	return r
}

// dynamicResult matches the pattern segments against the remaining segments, staging captures into the
// scratch params. When the path runs out on a token boundary while the pattern still has tokens, the
// attempt is a partial match at the end of the path, as with offset based matching.
func (c *TokenCursor) dynamicResult(pattern Pattern, allowPartial bool) Result {
	remaining := c.segments[c.start:]
	if len(remaining) == 0 || pattern.segments == nil {
		return noMatch()
	}

	c.scratch = c.scratch[:0]
	last := len(remaining) - 1
	for i, seg := range pattern.segments {
		if i > last {
			if allowPartial && pattern.segments[last].close {
				return partialMatch(len(c.segments))
			}
			return noMatch()
		}

		if i < last {
			if !matchSegment(remaining[i], seg.tokens, &c.scratch) {
				return noMatch()
			}
			continue
		}

		r := matchTokens(remaining[i], 0, seg.tokens, true, &c.scratch)
		switch r.kind {
		case FullMatch:
		case PartialMatch:
			if r.pos < len(remaining[i]) {
				// Would end in the middle of a segment.
				return noMatch()
			}
			if !allowPartial || (remaining[i] == "" && !seg.open) {
				return noMatch()
			}
			return partialMatch(len(c.segments))
		default:
			return noMatch()
		}
	}

	if len(remaining) > len(pattern.segments) {
		if !allowPartial {
			return noMatch()
		}
		return partialMatch(c.start + len(pattern.segments))
	}

	return fullMatch()
}

// matchSegment matches a segment which is followed by other segments. A parameter captures the rest of
// the segment, possibly nothing.
func matchSegment(segment string, tokens []Token, staged *Params) bool {
	pos := 0
	for _, tk := range tokens {
		if tk.kind == kindLiteral {
			if !strings.HasPrefix(segment[pos:], tk.value) {
				return false
			}
			pos += len(tk.value)
			continue
		}
		*staged = append(*staged, Param{Key: tk.value, Value: segment[pos:]})
		pos = len(segment)
	}
	return pos == len(segment)
}

func (c *TokenCursor) advance(r Result) {
	switch r.kind {
	case FullMatch:
		c.start = len(c.segments)
	case PartialMatch:
		c.start = r.pos
	}
}

// path rebuilds the remaining path for tracing.
func (c *TokenCursor) path() string {
	if c.unrooted || c.start >= len(c.segments) {
		return ""
	}
	return "/" + strings.Join(c.segments[c.start:], "/")
}

// Done implements [Cursor.Done].
func (c *TokenCursor) Done() bool {
	return !c.unrooted && c.start >= len(c.segments)
}

// Params implements [Cursor.Params].
func (c *TokenCursor) Params() Params {
	return *c.params
}

// Pos returns the number of segments consumed so far.
func (c *TokenCursor) Pos() int {
	return c.start
}

// Remaining returns the segments yet to be matched.
func (c *TokenCursor) Remaining() []string {
	return c.segments[c.start:]
}
