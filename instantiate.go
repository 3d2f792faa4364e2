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
	"time"

	"github.com/meatsby/di/dievent"
	"github.com/meatsby/di/internal/descriptor"
	"golang.org/x/sync/errgroup"
)

// instantiate calls every constructor once. Results land in the slot of
// their descriptor, so the bean order matches the resolution order even when
// constructors run in parallel.
func (b *builder) instantiate(descs []descriptor.Descriptor) ([]bean, error) {
	beans := make([]bean, len(descs))
	err := b.each(len(descs), func(i int) error {
		d := descs[i]

		start := time.Now()
		v, err := d.Construct()
		if err != nil {
			err = &InstantiationError{Type: d.Type(), Constructor: d.Name(), Err: err}
		}
		b.log(&dievent.Instantiated{
			TypeName:        d.Type().String(),
			ConstructorName: d.Name(),
			Runtime:         time.Since(start),
			Err:             err,
		})
		if err != nil {
			return err
		}

		beans[i] = bean{desc: d, value: v}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return beans, nil
}

// each runs fn for every index in [0, n). It stops at the first error.
//
// With parallelism above one, up to that many calls run at once, and calls
// that have not started yet are skipped after a failure. each returns only
// once every started call has returned.
func (b *builder) each(n int, fn func(int) error) error {
	if b.parallelism <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(b.parallelism)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			return fn(i)
		})
	}
	return g.Wait()
}
