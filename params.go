// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/pathmatch/blob/master/LICENSE.txt.

package pathmatch

import (
	"context"
	"iter"

	"github.com/fox-toolkit/pathmatch/internal/slicesutil"
)

// paramsKey is the key that holds the Params in a context.Context.
var paramsKey = struct{}{}

type Param struct {
	Key   string
	Value string
}

// Params maps parameter names to captured values. Keys are unique: capturing a parameter that already
// exists overwrites its value. Order is irrelevant.
type Params []Param

// Get the captured value by name.
func (p Params) Get(name string) string {
	for i := range p {
		if p[i].Key == name {
			return p[i].Value
		}
	}
	return ""
}

// Has checks whether the parameter exists by name.
func (p Params) Has(name string) bool {
	return p.index(name) >= 0
}

// Clone make a copy of Params.
func (p Params) Clone() Params {
	cloned := make(Params, len(p))
	copy(cloned, p)
	return cloned
}

// Equal reports whether p and other hold the same parameters, regardless of order.
func (p Params) Equal(other Params) bool {
	return slicesutil.EqualUnsorted(p, other)
}

// All returns an iterator over all parameters name and value.
func (p Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := range p {
			if !yield(p[i].Key, p[i].Value) {
				return
			}
		}
	}
}

func (p Params) index(name string) int {
	for i := range p {
		if p[i].Key == name {
			return i
		}
	}
	return -1
}

// merge commits staged into p.
func (p *Params) merge(staged Params) {
	for _, param := range staged {
		if i := p.index(param.Key); i >= 0 {
			(*p)[i].Value = param.Value
			continue
		}
		*p = append(*p, param)
	}
}

// WithParams returns a copy of ctx carrying params.
func WithParams(ctx context.Context, params Params) context.Context {
	return context.WithValue(ctx, paramsKey, params)
}

// ParamsFromContext allows extracting params from the given context.
func ParamsFromContext(ctx context.Context) Params {
	p, _ := ctx.Value(paramsKey).(Params)

	return p
}
