// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"errors"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidConfig  = errors.New("invalid config")
)
