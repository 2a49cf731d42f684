// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import "strconv"

// Kind is the outcome of a match attempt.
type Kind uint8

const (
	// NoMatch means the pattern rejects the path at the current position.
	NoMatch Kind = iota
	// FullMatch means the pattern consumed the entire remaining path.
	FullMatch
	// PartialMatch means the pattern consumed a prefix of the remaining path, leaving the rest
	// for a nested matcher.
	PartialMatch
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case FullMatch:
		return "full match"
	case PartialMatch:
		return "partial match"
	default:
		return "unknown"
	}
}

// Result is the outcome of a match attempt along with the position where matching should continue on a
// partial match. It is returned by value and never allocates. The zero value is a no match.
type Result struct {
	pos  int
	kind Kind
}

func noMatch() Result {
	return Result{}
}

func fullMatch() Result {
	return Result{kind: FullMatch}
}

func partialMatch(pos int) Result {
	return Result{kind: PartialMatch, pos: pos}
}

// Kind returns the match outcome.
func (r Result) Kind() Kind {
	return r.kind
}

// Matched reports whether the result is a full or partial match.
func (r Result) Matched() bool {
	return r.kind != NoMatch
}

// Full reports whether the result is a full match.
func (r Result) Full() bool {
	return r.kind == FullMatch
}

// Partial returns the position where the next matcher should continue and true on a partial match.
// For offset based matching, this is an index into the path. For a [TokenCursor], this is the number
// of segments consumed so far.
func (r Result) Partial() (int, bool) {
	if r.kind != PartialMatch {
		return 0, false
	}
	return r.pos, true
}

// Pos returns the partial match position, or -1 if the result is not a partial match.
func (r Result) Pos() int {
	if r.kind != PartialMatch {
		return -1
	}
	return r.pos
}

func (r Result) String() string {
	if r.kind == PartialMatch {
		return r.kind.String() + " at " + strconv.Itoa(r.pos)
	}
	return r.kind.String()
}
