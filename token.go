// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"fmt"
	"iter"
	"strings"

	"github.com/fox-toolkit/pathmatch/internal/iterutil"
)

const slashDelim = '/'

type tokenKind uint8

const (
	kindLiteral tokenKind = iota
	kindParam
)

// Token is one unit of a compiled route template: either a fixed literal text or a named parameter placeholder.
// The zero value is the empty literal.
type Token struct {
	value string
	kind  tokenKind
}

// Literal returns a literal [Token] matching text verbatim.
func Literal(text string) Token {
	return Token{value: text, kind: kindLiteral}
}

// Var returns a parameter [Token] capturing everything up to the next '/' (or the end of the path) under name.
func Var(name string) Token {
	return Token{value: name, kind: kindParam}
}

// IsParam reports whether the token is a parameter placeholder.
func (t Token) IsParam() bool {
	return t.kind == kindParam
}

// Value returns the literal text, or the parameter name for a parameter token.
func (t Token) Value() string {
	return t.value
}

func (t Token) String() string {
	if t.kind == kindParam {
		return "{" + t.value + "}"
	}
	return t.value
}

// Pattern is an immutable, non-empty sequence of tokens. A Pattern is read-only once built and may be shared
// and matched concurrently by any number of goroutines.
type Pattern struct {
	tokens []Token
	// Segment view used by the TokenCursor. Nil when the pattern is not segment aligned.
	segments []segment
	params   int
}

// NewPattern builds a [Pattern] from the provided tokens. Adjacent literals are merged and empty literals
// surrounding other tokens are dropped, so Literal("/users"), Literal("/"), Var("id") and
// Literal("/users/"), Var("id") yield the same pattern. It returns an error wrapping [ErrInvalidPattern]
// if tokens is empty or if a parameter has an empty name.
func NewPattern(tokens ...Token) (Pattern, error) {
	if len(tokens) == 0 {
		return Pattern{}, fmt.Errorf("%w: empty token sequence", ErrInvalidPattern)
	}

	merged := make([]Token, 0, len(tokens))
	var params int
	for i, tk := range tokens {
		if tk.kind == kindParam {
			if tk.value == "" {
				return Pattern{}, fmt.Errorf("%w: empty parameter name at token %d", ErrInvalidPattern, i)
			}
			params++
			merged = append(merged, tk)
			continue
		}

		if n := len(merged); n > 0 && merged[n-1].kind == kindLiteral {
			merged[n-1].value += tk.value
			continue
		}
		merged = append(merged, tk)
	}

	if len(merged) > 1 {
		compact := merged[:0]
		for _, tk := range merged {
			if tk.kind == kindLiteral && tk.value == "" {
				continue
			}
			compact = append(compact, tk)
		}
		merged = compact
	}

	return Pattern{
		tokens:   merged,
		segments: segmentsOf(merged),
		params:   params,
	}, nil
}

// MustPattern is a convenience wrapper for [NewPattern] that panics on error.
func MustPattern(tokens ...Token) Pattern {
	p, err := NewPattern(tokens...)
	if err != nil {
		panic(err)
	}
	return p
}

// IsStatic reports whether the pattern is made of a single literal token. Static patterns are matched
// with a plain prefix or equality check and never touch the params.
func (p Pattern) IsStatic() bool {
	return len(p.tokens) == 1 && p.tokens[0].kind == kindLiteral
}

// Static returns the literal of a static pattern, or an empty string otherwise.
func (p Pattern) Static() string {
	if !p.IsStatic() {
		return ""
	}
	return p.tokens[0].value
}

// Len returns the number of tokens.
func (p Pattern) Len() int {
	return len(p.tokens)
}

// Tokens returns an iterator over the pattern tokens and their index.
func (p Pattern) Tokens() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, tk := range p.tokens {
			if !yield(i, tk) {
				return
			}
		}
	}
}

// ParamsLen returns the number of parameter tokens.
func (p Pattern) ParamsLen() int {
	return p.params
}

// Params returns an iterator over all parameters name, in order of appearance.
func (p Pattern) Params() iter.Seq[string] {
	return iterutil.Map(iterutil.Filter(iterutil.Right(p.Tokens()), Token.IsParam), Token.Value)
}

// SegmentAligned reports whether the pattern can be matched by a [TokenCursor], that is, if it
// starts with a literal beginning with '/'. Static patterns are always matched segment by segment.
func (p Pattern) SegmentAligned() bool {
	return p.segments != nil
}

func (p Pattern) String() string {
	var sb strings.Builder
	for _, tk := range p.tokens {
		sb.WriteString(tk.String())
	}
	return sb.String()
}

// segment is one '/' delimited slice of a pattern, as seen by the TokenCursor.
type segment struct {
	tokens []Token
	// open reports whether the '/' before the segment is the last byte of a literal token, and close
	// whether the '/' after the segment is the first byte of one. Offset based matching may only run out
	// of path on a token boundary, and these flags carry that knowledge over segment boundaries.
	open  bool
	close bool
}

// segmentsOf splits tokens on the '/' found in literals, discarding the leading empty segment.
// A segment with no token stands for an empty path segment.
//
// Examples:
//
//	/users/{id}       → [users] [{id}]
//	/files/{name}.txt → [files] [{name} .txt]
//	/                 → [] (one empty segment)
func segmentsOf(tokens []Token) []segment {
	first := tokens[0]
	if first.kind != kindLiteral || first.value == "" || first.value[0] != slashDelim {
		return nil
	}

	var (
		segments []segment
		current  segment
		started  bool
	)

	for _, tk := range tokens {
		if tk.kind == kindParam {
			current.tokens = append(current.tokens, tk)
			continue
		}

		text := tk.value
		offset := 0
		for {
			idx := strings.IndexByte(text, slashDelim)
			if idx < 0 {
				break
			}
			if idx > 0 {
				current.tokens = append(current.tokens, Literal(text[:idx]))
			}
			at := offset + idx
			if started {
				current.close = at == 0
				segments = append(segments, current)
			}
			started = true
			current = segment{open: at == len(tk.value)-1}
			text = text[idx+1:]
			offset = at + 1
		}
		if text != "" {
			current.tokens = append(current.tokens, Literal(text))
		}
	}

	return append(segments, current)
}
