// Copyright 2023 GreyXor. All rights reserved.
// Mount of this source code is governed by a MIT license that can be found
// at https://gitlab.com/greyxor/slogor/-/blob/main/LICENSE?ref_type=heads.

package ansi

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Escape sequences used by the pretty log handler.
const (
	Reset           = "\033[0m"
	Bold            = "\033[1m"
	Faint           = "\033[2m"
	NormalIntensity = "\033[22m"

	FgRed     = "\033[31m"
	FgGreen   = "\033[32m"
	FgYellow  = "\033[33m"
	FgMagenta = "\033[35m"
	FgCyan    = "\033[36m"

	BgRed     = "\033[41m"
	BgYellow  = "\033[43m"
	BgBlue    = "\033[44m"
	BgMagenta = "\033[45m"
)

// Supported reports whether f is a terminal able to render escape sequences. It honors the NO_COLOR
// convention (https://no-color.org).
func Supported(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Append appends s to buf wrapped between code and [Reset].
func Append(buf []byte, code, s string) []byte {
	buf = append(buf, code...)
	buf = append(buf, s...)
	return append(buf, Reset...)
}
