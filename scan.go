// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package di

import (
	"context"

	"github.com/meatsby/di/dievent"
	"github.com/meatsby/di/marker"
	"github.com/pkg/errors"
)

// NewForPackage builds a container from the types registered beneath the
// package path root.
//
// The configured discovery.Discoverer (discovery.Default() unless
// WithDiscoverer is given) lists the candidate types. Only types carrying at
// least one role marker (see Markers) become beans, and only fields tagged
// with the inject tag (see InjectTag) are wired. Finding no marked type is
// not an error; the container is then empty.
//
// ctx is passed to the Discoverer only.
func NewForPackage(ctx context.Context, root string, opts ...Option) (*Container, error) {
	cfg := newConfig(opts)
	b := newBuilder(cfg, taggedFields(cfg.tag))

	types, err := cfg.discoverer.Discover(ctx, root)
	if err != nil {
		err = errors.Wrapf(err, "could not discover types under %q", root)
		b.log(&dievent.Discovered{Root: root, Err: err})
		b.log(&dievent.Ready{Err: err})
		return nil, err
	}

	var (
		tokens = make([]interface{}, 0, len(types))
		names  = make([]string, 0, len(types))
	)
	for _, t := range types {
		if marker.IsInjectable(t, cfg.markers...) {
			tokens = append(tokens, t)
			names = append(names, t.String())
		}
	}
	b.log(&dievent.Discovered{
		Root:      root,
		TypeNames: names,
		Skipped:   len(types) - len(tokens),
	})

	return b.build(tokens)
}
