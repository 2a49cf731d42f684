// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"context"
	"log/slog"
)

const (
	opStaticPartial  = "static_partial"
	opStaticFull     = "static_full"
	opDynamicPartial = "dynamic_partial"
	opDynamicFull    = "dynamic_full"
)

// trace logs a match attempt made at pos. The record message is the path being matched.
func trace(log *slog.Logger, strategy Strategy, op, path, pattern string, pos int, r Result) {
	ctx := context.Background()
	lvl := level(r.kind)
	if !log.Enabled(ctx, lvl) {
		return
	}

	if r.kind == PartialMatch {
		log.LogAttrs(
			ctx,
			lvl,
			path,
			slog.String("strategy", strategy.String()),
			slog.String("op", op),
			slog.String("pattern", pattern),
			slog.Int("pos", pos),
			slog.String("result", r.kind.String()),
			slog.Int("next", r.pos),
		)
		return
	}

	log.LogAttrs(
		ctx,
		lvl,
		path,
		slog.String("strategy", strategy.String()),
		slog.String("op", op),
		slog.String("pattern", pattern),
		slog.Int("pos", pos),
		slog.String("result", r.kind.String()),
	)
}

func level(kind Kind) slog.Level {
	switch kind {
	case FullMatch:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
