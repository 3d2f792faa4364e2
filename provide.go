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
	"go.uber.org/dig"
	"go.uber.org/multierr"
)

// Provide makes every bean available to a dig container under its own
// type, so dig constructors and Invoke functions can depend on beans built
// here.
//
// Beans that dig rejects, such as a type that is already provided, do not
// stop the others; their errors are combined in the result.
func (c *Container) Provide(dc *dig.Container) error {
	var errs error
	for _, b := range c.reg.beans {
		if err := dc.Provide(supplyConstructor(b.value)); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "could not provide %v", b.value.Type()))
		}
	}
	return errs
}

// supplyConstructor builds a func() T that always returns v.
func supplyConstructor(v reflect.Value) interface{} {
	returnTypes := []reflect.Type{v.Type()}
	returnValues := []reflect.Value{v}

	ft := reflect.FuncOf([]reflect.Type{}, returnTypes, false)
	fv := reflect.MakeFunc(ft, func([]reflect.Value) []reflect.Value {
		return returnValues
	})

	return fv.Interface()
}
