// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	cases := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "empty path",
			path: "",
			want: []string{},
		},
		{
			name: "root",
			path: "/",
			want: []string{""},
		},
		{
			name: "two segments",
			path: "/a/b",
			want: []string{"a", "b"},
		},
		{
			name: "trailing slash",
			path: "/a/",
			want: []string{"a", ""},
		},
		{
			name: "no leading slash",
			path: "a/b",
			want: nil,
		},
		{
			name: "empty segment",
			path: "//a",
			want: []string{"", "a"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitPath(tc.path))
		})
	}
}

func TestTokenCursor_Chain(t *testing.T) {
	c := NewTokenCursor("/api/users/42", nil)
	assert.False(t, c.Done())
	assert.Equal(t, []string{"api", "users", "42"}, c.Remaining())

	r := c.StaticPartialMatch("/api")
	assert.Equal(t, partialMatch(1), r)
	assert.Equal(t, 1, c.Pos())
	assert.Equal(t, []string{"users", "42"}, c.Remaining())

	r = c.DynamicFullMatch(MustPattern(Literal("/users/"), Var("id")))
	assert.Equal(t, fullMatch(), r)
	assert.True(t, c.Done())
	assert.Equal(t, Params{{Key: "id", Value: "42"}}, c.Params())

	assert.Equal(t, fullMatch(), c.StaticFullMatch(""))
	assert.Equal(t, fullMatch(), c.StaticPartialMatch(""))
	assert.Equal(t, noMatch(), c.StaticPartialMatch("/"))
	assert.Equal(t, noMatch(), c.DynamicPartialMatch(MustPattern(Literal("/"), Var("x"))))
}

func TestTokenCursor_Static(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		literal string
		partial bool
		want    Result
	}{
		{
			name:    "full match",
			path:    "/api/users",
			literal: "/api/users",
			want:    fullMatch(),
		},
		{
			name:    "partial match",
			path:    "/api/users",
			literal: "/api",
			partial: true,
			want:    partialMatch(1),
		},
		{
			name:    "partial not allowed",
			path:    "/api/users",
			literal: "/api",
			want:    noMatch(),
		},
		{
			name:    "prefix within a segment",
			path:    "/apiv2/users",
			literal: "/api",
			partial: true,
			want:    noMatch(),
		},
		{
			name:    "literal ends in the middle of a segment",
			path:    "/api",
			literal: "/ap",
			partial: true,
			want:    noMatch(),
		},
		{
			name:    "literal longer than path",
			path:    "/api",
			literal: "/api/users",
			partial: true,
			want:    noMatch(),
		},
		{
			name:    "root",
			path:    "/",
			literal: "/",
			want:    fullMatch(),
		},
		{
			name:    "trailing slash",
			path:    "/api/",
			literal: "/api/",
			want:    fullMatch(),
		},
		{
			name:    "literal without leading slash",
			path:    "/api",
			literal: "api",
			partial: true,
			want:    noMatch(),
		},
		{
			name:    "empty literal on remaining path",
			path:    "/api",
			literal: "",
			partial: true,
			want:    noMatch(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewTokenCursor(tc.path, nil)
			var r Result
			if tc.partial {
				r = c.StaticPartialMatch(tc.literal)
			} else {
				r = c.StaticFullMatch(tc.literal)
			}
			assert.Equal(t, tc.want, r)
			if r.Kind() == NoMatch {
				assert.Equal(t, 0, c.Pos())
			}
		})
	}
}

func TestTokenCursor_Dynamic(t *testing.T) {
	cases := []struct {
		name       string
		path       string
		pattern    Pattern
		partial    bool
		want       Result
		wantParams Params
	}{
		{
			name:       "single param",
			path:       "/users/42",
			pattern:    MustPattern(Literal("/users/"), Var("id")),
			want:       fullMatch(),
			wantParams: Params{{Key: "id", Value: "42"}},
		},
		{
			name:       "partial with remaining segments",
			path:       "/a/b/c",
			pattern:    MustPattern(Literal("/"), Var("x")),
			partial:    true,
			want:       partialMatch(1),
			wantParams: Params{{Key: "x", Value: "a"}},
		},
		{
			name:    "remaining segments without partial",
			path:    "/a/b/c",
			pattern: MustPattern(Literal("/"), Var("x")),
			want:    noMatch(),
		},
		{
			name:       "literal prefix in a segment",
			path:       "/v2/users",
			pattern:    MustPattern(Literal("/v"), Var("version"), Literal("/users")),
			want:       fullMatch(),
			wantParams: Params{{Key: "version", Value: "2"}},
		},
		{
			name:       "path runs out on a token boundary",
			path:       "/users/42",
			pattern:    MustPattern(Literal("/users/"), Var("id"), Literal("/posts")),
			partial:    true,
			want:       partialMatch(2),
			wantParams: Params{{Key: "id", Value: "42"}},
		},
		{
			name:    "path runs out inside a literal",
			path:    "/a",
			pattern: MustPattern(Literal("/a/"), Var("x")),
			partial: true,
			want:    noMatch(),
		},
		{
			name:       "param runs out in the last segment",
			path:       "/a",
			pattern:    MustPattern(Literal("/a"), Var("x")),
			partial:    true,
			want:       partialMatch(1),
			wantParams: Params{},
		},
		{
			name:    "trailing slash before param without partial",
			path:    "/users/",
			pattern: MustPattern(Literal("/users/"), Var("id")),
			want:    noMatch(),
		},
		{
			name:       "trailing slash before param with partial",
			path:       "/users/",
			pattern:    MustPattern(Literal("/users/"), Var("id")),
			partial:    true,
			want:       partialMatch(2),
			wantParams: Params{},
		},
		{
			name:       "empty capture in a middle segment",
			path:       "/users//posts",
			pattern:    MustPattern(Literal("/users/"), Var("id"), Literal("/posts")),
			want:       fullMatch(),
			wantParams: Params{{Key: "id", Value: ""}},
		},
		{
			name:    "literal mismatch after param",
			path:    "/users/42/comments",
			pattern: MustPattern(Literal("/users/"), Var("id"), Literal("/posts")),
			partial: true,
			want:    noMatch(),
		},
		{
			name:    "pattern not segment aligned",
			path:    "/users/42",
			pattern: MustPattern(Var("x"), Literal("/42")),
			partial: true,
			want:    noMatch(),
		},
		{
			name:    "trailing literal in the last segment",
			path:    "/files/report.txt",
			pattern: MustPattern(Literal("/files/"), Var("name"), Literal(".txt")),
			want:    noMatch(),
		},
		{
			name:       "static pattern",
			path:       "/api/users",
			pattern:    MustPattern(Literal("/api")),
			partial:    true,
			want:       partialMatch(1),
			wantParams: Params{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewTokenCursor(tc.path, nil)
			var r Result
			if tc.partial {
				r = c.DynamicPartialMatch(tc.pattern)
			} else {
				r = c.DynamicFullMatch(tc.pattern)
			}
			assert.Equal(t, tc.want, r)
			if r.Kind() == NoMatch {
				assert.Equal(t, 0, c.Pos())
				assert.Empty(t, c.Params())
				return
			}
			if len(tc.wantParams) == 0 {
				assert.Empty(t, c.Params())
				return
			}
			assert.Equal(t, tc.wantParams, c.Params())
		})
	}
}

func TestTokenCursor_CallerParams(t *testing.T) {
	params := Params{{Key: "id", Value: "stale"}}
	c := NewTokenCursor("/users/42", &params)

	require.True(t, c.DynamicFullMatch(MustPattern(Literal("/users/"), Var("id"))).Full())
	assert.Equal(t, Params{{Key: "id", Value: "42"}}, params)
}

func TestTokenCursor_Reset(t *testing.T) {
	c := NewTokenCursor("/a/b/c/d", nil)
	require.True(t, c.StaticPartialMatch("/a/b").Matched())
	buf := c.segments[:cap(c.segments)]

	c.Reset("/x/y", nil)
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, []string{"x", "y"}, c.Remaining())
	assert.Same(t, &buf[0], &c.segments[0])
	assert.Empty(t, c.Params())

	assert.True(t, c.DynamicFullMatch(MustPattern(Literal("/x/"), Var("y"))).Full())
	assert.Equal(t, Params{{Key: "y", Value: "y"}}, c.Params())
}

func TestTokenCursor_FromSegments(t *testing.T) {
	m := MustNew(WithStrategy(TokenStrategy))
	segments := SplitPath("/tenants/acme/users")

	c := m.NewTokenCursorFromSegments(segments, nil)
	assert.Equal(t, []string{"tenants", "acme", "users"}, c.Remaining())

	r := c.DynamicPartialMatch(MustPattern(Literal("/tenants/"), Var("tenant")))
	assert.Equal(t, partialMatch(2), r)
	assert.Equal(t, fullMatch(), c.StaticFullMatch("/users"))
	assert.Equal(t, Params{{Key: "tenant", Value: "acme"}}, c.Params())
}

func TestTokenCursor_NoLeadingSlash(t *testing.T) {
	c := NewTokenCursor("api/x", nil)
	assert.False(t, c.Done())
	assert.Empty(t, c.Remaining())
	assert.Equal(t, noMatch(), c.StaticPartialMatch("/api"))
	assert.Equal(t, noMatch(), c.StaticFullMatch(""))
	assert.Equal(t, noMatch(), c.DynamicPartialMatch(MustPattern(Literal("/"), Var("x"))))
	assert.Empty(t, c.Params())

	c.Reset("/api/x", nil)
	assert.Equal(t, partialMatch(1), c.StaticPartialMatch("/api"))
}

func TestTokenCursor_EmptyPath(t *testing.T) {
	c := NewTokenCursor("", nil)
	assert.True(t, c.Done())
	assert.Equal(t, fullMatch(), c.StaticFullMatch(""))
	assert.Equal(t, noMatch(), c.StaticPartialMatch("/"))
	assert.Equal(t, noMatch(), c.DynamicFullMatch(MustPattern(Literal("/"), Var("x"))))
}
