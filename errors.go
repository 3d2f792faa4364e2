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
	"fmt"
	"reflect"

	"github.com/meatsby/di/internal/direflect"
)

// NoDefaultConstructorError is returned when a registered type cannot be
// constructed without arguments.
type NoDefaultConstructorError struct {
	Type   reflect.Type
	Reason string
}

func (e *NoDefaultConstructorError) Error() string {
	return fmt.Sprintf("no zero-argument constructor for %v: %s", direflect.TypeName(e.Type), e.Reason)
}

// InstantiationError is returned when a constructor fails, panics, or
// returns nil.
type InstantiationError struct {
	Type        reflect.Type
	Constructor string
	Err         error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("could not instantiate %v using %s: %v", e.Type, e.Constructor, e.Err)
}

func (e *InstantiationError) Unwrap() error { return e.Err }

// FieldAssignmentError is returned when a matching bean cannot be written
// into a field.
type FieldAssignmentError struct {
	// Type is the type of the bean that owns the field.
	Type      reflect.Type
	Field     string
	FieldType reflect.Type
	Err       error
}

func (e *FieldAssignmentError) Error() string {
	return fmt.Sprintf("could not assign field %s (%v) of %v: %v", e.Field, e.FieldType, e.Type, e.Err)
}

func (e *FieldAssignmentError) Unwrap() error { return e.Err }

// NoSuchBeanError is returned by lookups when no bean is assignable to the
// requested type.
type NoSuchBeanError struct {
	Type reflect.Type
}

func (e *NoSuchBeanError) Error() string {
	return fmt.Sprintf("no bean assignable to %v", direflect.TypeName(e.Type))
}
