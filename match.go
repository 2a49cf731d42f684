// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"strings"
)

// stagedParams is the number of captures MatchDynamic stages without allocating.
const stagedParams = 8

// MatchStatic compares literal against path starting at start. It returns a [FullMatch] if literal consumes
// the rest of the path exactly, a [PartialMatch] at start+len(literal) if path continues past literal, and
// [NoMatch] otherwise. The empty literal only matches a path that is already fully consumed.
func MatchStatic(path string, start int, literal string) Result {
	if start < 0 || start > len(path) {
		return noMatch()
	}
	if !strings.HasPrefix(path[start:], literal) {
		return noMatch()
	}
	if len(path)-start == len(literal) {
		return fullMatch()
	}
	if literal == "" {
		return noMatch()
	}
	return partialMatch(start + len(literal))
}

// MatchStaticExact is like [MatchStatic] but only reports a [FullMatch] or [NoMatch].
func MatchStaticExact(path string, start int, literal string) Result {
	if start == 0 {
		if path == literal {
			return fullMatch()
		}
		return noMatch()
	}
	if start < 0 || start > len(path) {
		return noMatch()
	}
	if path[start:] == literal {
		return fullMatch()
	}
	return noMatch()
}

// MatchDynamic walks the pattern tokens against path from start. A literal must match verbatim, and a
// parameter captures every byte up to the next '/' or the end of the path, possibly nothing. If the path
// ends while tokens remain, the attempt is a [PartialMatch] at len(path) when allowPartial is true. If the
// tokens are exhausted before the path, the attempt is a [PartialMatch] at the current position when
// allowPartial is true. In every other case, a mismatch yields [NoMatch].
//
// Captured parameters are written into params only if the attempt matches, all at once. On [NoMatch],
// params is left untouched, including the spare capacity of its backing array. A nil params discards
// captures. Static patterns are delegated to [MatchStatic] or [MatchStaticExact] and never touch params.
// A path already fully consumed (start >= len(path)) never matches a dynamic pattern.
func MatchDynamic(path string, start int, pattern Pattern, allowPartial bool, params *Params) Result {
	if pattern.IsStatic() {
		if allowPartial {
			return MatchStatic(path, start, pattern.tokens[0].value)
		}
		return MatchStaticExact(path, start, pattern.tokens[0].value)
	}

	if start < 0 || start >= len(path) {
		return noMatch()
	}

	// Staged aside, merged on success only.
	var buf [stagedParams]Param
	staged := Params(buf[:0])
	if pattern.params > len(buf) {
		staged = make(Params, 0, pattern.params)
	}

	r := matchTokens(path, start, pattern.tokens, allowPartial, &staged)
	if r.kind != NoMatch && params != nil {
		params.merge(staged)
	}
	return r
}

// MatchDynamicPartial is a shortcut for [MatchDynamic] with partial matching allowed.
func MatchDynamicPartial(path string, start int, pattern Pattern, params *Params) Result {
	return MatchDynamic(path, start, pattern, true, params)
}

// MatchDynamicFull is a shortcut for [MatchDynamic] requiring the pattern to consume the whole path.
func MatchDynamicFull(path string, start int, pattern Pattern, params *Params) Result {
	return MatchDynamic(path, start, pattern, false, params)
}

// Match reports whether pattern matches the entire path, and returns the captured parameters if any.
// It is suitable for a flat route table where no mount point is involved.
func Match(path string, pattern Pattern) (Params, bool) {
	if pattern.IsStatic() {
		return nil, path == pattern.tokens[0].value
	}

	params := make(Params, 0, pattern.params)
	if !MatchDynamicFull(path, 0, pattern, &params).Full() {
		return nil, false
	}
	return params, true
}

// matchTokens is the matching core shared by every strategy. Captures are appended to staged,
// which the caller must roll back on no match.
func matchTokens(path string, start int, tokens []Token, allowPartial bool, staged *Params) Result {
	pos := start

	for _, tk := range tokens {
		if pos >= len(path) {
			if allowPartial {
				return partialMatch(len(path))
			}
			return noMatch()
		}

		if tk.kind == kindLiteral {
			if !strings.HasPrefix(path[pos:], tk.value) {
				return noMatch()
			}
			pos += len(tk.value)
			continue
		}

		end := strings.IndexByte(path[pos:], slashDelim)
		if end < 0 {
			*staged = append(*staged, Param{Key: tk.value, Value: path[pos:]})
			pos = len(path)
			continue
		}
		*staged = append(*staged, Param{Key: tk.value, Value: path[pos : pos+end]})
		pos += end
	}

	if pos < len(path) {
		if allowPartial {
			return partialMatch(pos)
		}
		return noMatch()
	}

	return fullMatch()
}
