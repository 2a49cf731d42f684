// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"fmt"
	"log/slog"

	"github.com/fox-toolkit/pathmatch/internal/slogpretty"
)

// Strategy selects the cursor representation returned by [Matcher.NewCursor].
type Strategy uint8

const (
	// IndexStrategy matches by moving an offset into the raw path.
	IndexStrategy Strategy = iota
	// TokenStrategy splits the path into segments once and matches by narrowing the remaining segments.
	TokenStrategy

	strategySentinel
)

func (s Strategy) String() string {
	switch s {
	case IndexStrategy:
		return "index"
	case TokenStrategy:
		return "token"
	default:
		return "unknown"
	}
}

type Option interface {
	apply(*Matcher) error
}

type optionFunc func(*Matcher) error

func (o optionFunc) apply(m *Matcher) error {
	return o(m)
}

// WithStrategy sets the cursor strategy used by [Matcher.NewCursor]. By default, [IndexStrategy] is used.
func WithStrategy(strategy Strategy) Option {
	return optionFunc(func(m *Matcher) error {
		if strategy >= strategySentinel {
			return fmt.Errorf("%w: unknown strategy %d", ErrInvalidConfig, strategy)
		}
		m.strategy = strategy
		return nil
	})
}

// WithLogger traces every match attempt made by cursors created from the [Matcher] using the provided
// [slog.Handler]. Full matches are logged at [slog.LevelInfo], other outcomes at [slog.LevelDebug].
// Tracing is disabled by default, and costs nothing when disabled.
func WithLogger(handler slog.Handler) Option {
	return optionFunc(func(m *Matcher) error {
		if handler == nil {
			return fmt.Errorf("%w: log handler cannot be nil", ErrInvalidConfig)
		}
		m.logger = slog.New(handler)
		return nil
	})
}

// WithPrettyLogs traces every match attempt with human-readable, colorized output optimized for terminal.
// This option prioritizes readability over performance and is meant for debugging route tables.
func WithPrettyLogs() Option {
	return optionFunc(func(m *Matcher) error {
		m.logger = slog.New(slogpretty.DefaultHandler)
		return nil
	})
}

// WithMaxParams pre-sizes the parameters buffer owned by each cursor. This is a hint, cursors grow
// as needed.
func WithMaxParams(max int) Option {
	return optionFunc(func(m *Matcher) error {
		if max < 0 {
			return fmt.Errorf("%w: max params cannot be negative", ErrInvalidConfig)
		}
		m.maxParams = max
		return nil
	})
}
