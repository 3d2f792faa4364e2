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
	"reflect"

	"github.com/meatsby/di/internal/descriptor"
)

type bean struct {
	desc  descriptor.Descriptor
	value reflect.Value
}

// registry is the ordered set of beans of a container. It never changes
// after construction.
type registry struct {
	beans []bean
}

// newRegistry keeps the first bean of every concrete type. Constructors
// declaring an interface result are only known by their concrete type once
// they ran.
func newRegistry(beans []bean) *registry {
	seen := make(map[reflect.Type]struct{}, len(beans))
	kept := make([]bean, 0, len(beans))
	for _, b := range beans {
		t := b.value.Type()
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		kept = append(kept, b)
	}
	return &registry{beans: kept}
}

// matches returns the beans assignable to t, in registration order.
func (r *registry) matches(t reflect.Type) []bean {
	var found []bean
	for _, b := range r.beans {
		if b.value.Type().AssignableTo(t) {
			found = append(found, b)
		}
	}
	return found
}

// lookup returns the first bean assignable to t.
func (r *registry) lookup(t reflect.Type) (bean, bool) {
	for _, b := range r.beans {
		if b.value.Type().AssignableTo(t) {
			return b, true
		}
	}
	return bean{}, false
}
