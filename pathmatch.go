// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

// Package pathmatch matches request paths against compiled route patterns. Beyond plain full matching, it
// supports partial matching: a pattern may consume only a prefix of the path, and hand the rest over to a
// nested matcher (a mount point) without copying the path or allocating a result.
//
// The stateless functions [MatchStatic], [MatchStaticExact] and [MatchDynamic] suit a flat route table.
// To walk nested mount points, create one [Cursor] per request and chain matches against it.
package pathmatch

import (
	"fmt"
	"log/slog"
)

const defaultMaxParams = 4

// Matcher holds the configuration shared by every cursor it creates. A Matcher is immutable and safe for
// concurrent use. Cursors are not: create a new one for each request.
type Matcher struct {
	logger    *slog.Logger
	maxParams int
	strategy  Strategy
}

// New returns a ready to use [Matcher] configured with the provided options.
func New(opts ...Option) (*Matcher, error) {
	m := &Matcher{
		maxParams: defaultMaxParams,
		strategy:  IndexStrategy,
	}

	for _, opt := range opts {
		if err := opt.apply(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is a convenience wrapper for [New] that panics on error.
func MustNew(opts ...Option) *Matcher {
	m, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("pathmatch: %s", err))
	}
	return m
}

// Strategy returns the strategy used by [Matcher.NewCursor].
func (m *Matcher) Strategy() Strategy {
	return m.strategy
}

// NewCursor returns a new [Cursor] for path using the configured [Strategy]. Captured parameters are committed
// to params, which may be nil, in which case the cursor owns its parameters.
func (m *Matcher) NewCursor(path string, params *Params) Cursor {
	if m.strategy == TokenStrategy {
		return m.NewTokenCursor(path, params)
	}
	return m.NewIndexCursor(path, params)
}

// NewIndexCursor returns a new [IndexCursor] for path.
func (m *Matcher) NewIndexCursor(path string, params *Params) *IndexCursor {
	c := &IndexCursor{
		scratch: make(Params, 0, m.maxParams),
		log:     m.logger,
	}
	c.Reset(path, params)
	return c
}

// NewTokenCursor returns a new [TokenCursor] for path.
func (m *Matcher) NewTokenCursor(path string, params *Params) *TokenCursor {
	c := &TokenCursor{
		scratch: make(Params, 0, m.maxParams),
		log:     m.logger,
	}
	c.Reset(path, params)
	return c
}

var defaultMatcher = MustNew()

// NewIndexCursor returns a new [IndexCursor] for path with the default configuration.
func NewIndexCursor(path string, params *Params) *IndexCursor {
	return defaultMatcher.NewIndexCursor(path, params)
}

// NewTokenCursor returns a new [TokenCursor] for path with the default configuration.
func NewTokenCursor(path string, params *Params) *TokenCursor {
	return defaultMatcher.NewTokenCursor(path, params)
}
