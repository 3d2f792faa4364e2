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

package descriptor

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/meatsby/di/internal/direflect"
)

// Field describes one declared field of a bean's struct type.
type Field struct {
	Name     string
	Index    int
	Type     reflect.Type
	Tag      reflect.StructTag
	Exported bool
}

// StructField returns the reflect form of f.
func (f Field) StructField() reflect.StructField {
	return reflect.StructField{
		Name:  f.Name,
		Type:  f.Type,
		Tag:   f.Tag,
		Index: []int{f.Index},
	}
}

var _fieldCache sync.Map // reflect.Type -> []Field

// Fields lists the declared fields of t, which may be a struct or a pointer
// to a struct. Blank fields are skipped. Other kinds have no fields.
//
// The returned slice is shared and must not be modified.
func Fields(t reflect.Type) []Field {
	if t == nil {
		return nil
	}
	if t = direflect.Indirect(t); t.Kind() != reflect.Struct {
		return nil
	}

	if fs, ok := _fieldCache.Load(t); ok {
		return fs.([]Field)
	}

	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}
		fields = append(fields, Field{
			Name:     sf.Name,
			Index:    i,
			Type:     sf.Type,
			Tag:      sf.Tag,
			Exported: sf.PkgPath == "",
		})
	}

	fs, _ := _fieldCache.LoadOrStore(t, fields)
	return fs.([]Field)
}

// Settable returns a writable handle to field f of bean, exported or not.
//
// bean must be a non-nil pointer to a struct, or an addressable struct.
func Settable(bean reflect.Value, f Field) (reflect.Value, error) {
	v := bean
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("bean is a nil %v", v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("bean of type %v is not a struct", bean.Type())
	}
	if f.Index >= v.NumField() {
		return reflect.Value{}, fmt.Errorf("%v has no field #%d", v.Type(), f.Index)
	}

	fv := v.Field(f.Index)
	if !fv.CanAddr() {
		return reflect.Value{}, fmt.Errorf("field %v.%s is not addressable", v.Type(), f.Name)
	}
	if f.Exported {
		return fv, nil
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem(), nil
}
