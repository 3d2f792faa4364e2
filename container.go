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
	"bytes"
	"fmt"
	"reflect"
	"sync"

	"github.com/meatsby/di/dievent"
	"github.com/meatsby/di/internal/descriptor"
	"github.com/meatsby/di/internal/direflect"
	"github.com/meatsby/di/marker"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Container holds one bean per registered type, fully wired. It is
// read-only once built and safe for concurrent use.
type Container struct {
	reg *registry
}

// New builds a container from an explicit list of types, wiring every
// declared field of every bean.
//
// Each element of types is a reflect.Type, a value or typed nil pointer
// standing for its type (UserService{} or (*UserService)(nil)), or a
// constructor function taking no arguments and returning T or (T, error).
// A struct type S is constructed with new(S) and registered as *S. Types
// that appear more than once are constructed once.
//
// If any type cannot be resolved, constructed or wired, New returns an
// error and no container.
func New(types []interface{}, opts ...Option) (*Container, error) {
	cfg := newConfig(opts)
	return newBuilder(cfg, allFields).build(types)
}

// eligibility decides which fields of a bean are injection points.
type eligibility func(descriptor.Field) bool

func allFields(descriptor.Field) bool { return true }

func taggedFields(tag string) eligibility {
	return func(f descriptor.Field) bool {
		return marker.IsInjectionPoint(f.StructField(), tag)
	}
}

type builder struct {
	logger      dievent.Logger
	parallelism int
	eligible    eligibility
}

func newBuilder(cfg *config, eligible eligibility) *builder {
	return &builder{
		logger:      &syncLogger{logger: cfg.logger},
		parallelism: cfg.parallelism,
		eligible:    eligible,
	}
}

func (b *builder) log(e dievent.Event) { b.logger.LogEvent(e) }

func (b *builder) build(types []interface{}) (*Container, error) {
	c, err := b.run(types)
	if err != nil {
		b.log(&dievent.Ready{Err: err})
		return nil, err
	}
	b.log(&dievent.Ready{Beans: c.Len()})
	return c, nil
}

func (b *builder) run(types []interface{}) (*Container, error) {
	descs, err := b.resolve(types)
	if err != nil {
		return nil, err
	}

	beans, err := b.instantiate(descs)
	if err != nil {
		return nil, err
	}

	reg := newRegistry(beans)
	if err := b.wire(reg); err != nil {
		return nil, err
	}
	return &Container{reg: reg}, nil
}

// resolve turns every token into a descriptor, dropping repeated key
// types. All failures are reported together.
func (b *builder) resolve(types []interface{}) ([]descriptor.Descriptor, error) {
	var (
		errs  error
		descs = make([]descriptor.Descriptor, 0, len(types))
		seen  = make(map[reflect.Type]struct{}, len(types))
	)

	for _, tok := range types {
		d, err := descriptor.Resolve(tok)
		if err != nil {
			var derr *descriptor.Error
			if errors.As(err, &derr) {
				err = &NoDefaultConstructorError{Type: derr.Type, Reason: derr.Reason}
			}
			b.log(&dievent.Resolved{TypeName: tokenName(tok), Err: err})
			errs = multierr.Append(errs, err)
			continue
		}

		if _, ok := seen[d.Type()]; ok {
			continue
		}
		seen[d.Type()] = struct{}{}
		descs = append(descs, d)
		b.log(&dievent.Resolved{TypeName: d.Type().String(), ConstructorName: d.Name()})
	}

	if errs != nil {
		return nil, errs
	}
	return descs, nil
}

func tokenName(tok interface{}) string {
	if t, ok := tok.(reflect.Type); ok {
		return direflect.TypeName(t)
	}
	return direflect.ValueTypeName(tok)
}

// Bean returns the first bean, in registration order, whose type is
// assignable to t. It fails with *NoSuchBeanError if there is none.
func (c *Container) Bean(t reflect.Type) (interface{}, error) {
	if t != nil {
		if b, ok := c.reg.lookup(t); ok {
			return b.value.Interface(), nil
		}
	}
	return nil, &NoSuchBeanError{Type: t}
}

// Beans returns every bean in registration order.
func (c *Container) Beans() []interface{} {
	beans := make([]interface{}, len(c.reg.beans))
	for i, b := range c.reg.beans {
		beans[i] = b.value.Interface()
	}
	return beans
}

// Len returns the number of beans in the container.
func (c *Container) Len() int {
	return len(c.reg.beans)
}

func (c *Container) String() string {
	b := &bytes.Buffer{}
	fmt.Fprintln(b, "{beans:")
	for _, bn := range c.reg.beans {
		fmt.Fprintln(b, bn.value.Type(), "<=", bn.desc.Name())
	}
	fmt.Fprintln(b, "}")
	return b.String()
}

// syncLogger serializes events emitted by parallel builds.
type syncLogger struct {
	mu     sync.Mutex
	logger dievent.Logger
}

func (l *syncLogger) LogEvent(e dievent.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.LogEvent(e)
}
