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

	"github.com/pkg/errors"
)

// Populate sets each target, which must be a non-nil pointer, to the bean
// that Bean would return for the pointed-to type.
//
//	var (
//		svc  *UserService
//		repo Repository // interface
//	)
//	err := c.Populate(&svc, &repo)
//
// Populate stops at the first target it cannot fill.
func (c *Container) Populate(targets ...interface{}) error {
	for _, target := range targets {
		v := reflect.ValueOf(target)
		if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() {
			return errors.Errorf("Populate expected a non-nil pointer, got %T", target)
		}

		t := v.Type().Elem()
		b, ok := c.reg.lookup(t)
		if !ok {
			return &NoSuchBeanError{Type: t}
		}
		v.Elem().Set(b.value)
	}
	return nil
}
