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

// Package descriptor resolves type tokens into zero-argument constructors
// and lists the declared fields of constructed beans.
package descriptor

import (
	"fmt"
	"reflect"

	"github.com/meatsby/di/internal/direflect"
)

// Descriptor is a resolved candidate type. Construct is called exactly once
// per container.
type Descriptor interface {
	// Type is the bean key type. At most one bean per Type exists in a
	// container.
	Type() reflect.Type

	// Name identifies where the bean comes from, for logs and errors.
	Name() string

	// Construct builds a new instance. Interface results are unwrapped to
	// their dynamic value.
	Construct() (reflect.Value, error)
}

// Error is returned by Resolve when a token has no usable zero-argument
// constructor.
type Error struct {
	Type   reflect.Type
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v has no zero-argument constructor: %s", direflect.TypeName(e.Type), e.Reason)
}

// Resolve turns a type token into a Descriptor.
//
// Accepted tokens are a reflect.Type, a value or typed nil pointer standing
// for its own type, or a constructor function that takes no required
// arguments and returns T or (T, error). Struct types are constructed with
// reflect.New regardless of whether they are exported; their key type is
// the pointer to the struct.
func Resolve(token interface{}) (Descriptor, error) {
	if token == nil {
		return nil, &Error{Reason: "untyped nil is not a type"}
	}

	if t, ok := token.(reflect.Type); ok {
		return resolveType(t)
	}

	t := reflect.TypeOf(token)
	if t.Kind() == reflect.Func {
		return resolveFunc(reflect.ValueOf(token))
	}
	return resolveType(t)
}

func resolveType(t reflect.Type) (Descriptor, error) {
	switch {
	case t.Kind() == reflect.Struct:
		return structDescriptor{t: t}, nil
	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		return structDescriptor{t: t.Elem()}, nil
	case t.Kind() == reflect.Interface:
		return nil, &Error{Type: t, Reason: "interface types cannot be constructed"}
	case t.Kind() == reflect.Func:
		return nil, &Error{Type: t, Reason: "function types must be passed as constructor values"}
	default:
		return nil, &Error{Type: t, Reason: fmt.Sprintf("%v is not a struct or a pointer to a struct", t.Kind())}
	}
}

func resolveFunc(fn reflect.Value) (Descriptor, error) {
	ft := fn.Type()
	if fn.IsNil() {
		return nil, &Error{Type: ft, Reason: "constructor is nil"}
	}

	switch in := ft.NumIn(); {
	case in == 0:
	case in == 1 && ft.IsVariadic():
	default:
		return nil, &Error{Type: ft, Reason: fmt.Sprintf("constructor requires %d argument(s)", in)}
	}

	switch ft.NumOut() {
	case 1:
		if direflect.IsError(ft.Out(0)) {
			return nil, &Error{Type: ft, Reason: "constructor must not return only an error"}
		}
	case 2:
		if direflect.IsError(ft.Out(0)) || !direflect.IsError(ft.Out(1)) {
			return nil, &Error{Type: ft, Reason: "constructor must return (T, error)"}
		}
	default:
		return nil, &Error{Type: ft, Reason: "constructor must return T or (T, error)"}
	}

	return funcDescriptor{fn: fn}, nil
}

type structDescriptor struct {
	t reflect.Type // struct type; beans are *t
}

func (d structDescriptor) Type() reflect.Type { return reflect.PtrTo(d.t) }

func (d structDescriptor) Name() string { return fmt.Sprintf("new(%v)", d.t) }

func (d structDescriptor) Construct() (reflect.Value, error) {
	return reflect.New(d.t), nil
}

type funcDescriptor struct {
	fn reflect.Value
}

func (d funcDescriptor) Type() reflect.Type { return d.fn.Type().Out(0) }

func (d funcDescriptor) Name() string { return direflect.FuncName(d.fn.Interface()) }

func (d funcDescriptor) Construct() (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()

	out := d.fn.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}

	v = out[0]
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if isNil(v) {
		return reflect.Value{}, fmt.Errorf("constructor returned nil")
	}
	return v, nil
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
