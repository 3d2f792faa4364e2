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

// Package marker tags types as injectable and fields as injection points.
//
// A type carries a role marker when its struct embeds the marker type:
//
//	type UserService struct {
//		marker.Service
//
//		Repo *UserRepository `inject:""`
//	}
//
// Interface types may also serve as markers; a type carries such a marker
// when it, or a pointer to it, implements the interface.
package marker

import (
	"reflect"
)

// InjectTag is the struct tag that marks a field as an injection point.
const InjectTag = "inject"

// Service marks a type as a service-role bean.
type Service struct{}

// Repository marks a type as a repository-role bean.
type Repository struct{}

// Component marks a type as a general-purpose bean.
type Component struct{}

// Marker is a type-level tag recognized by the container.
type Marker struct {
	t reflect.Type
}

// Of builds a Marker from a marker value, a typed nil pointer to an
// interface, or a reflect.Type.
//
//	marker.Of(marker.Service{})
//	marker.Of((*Auditable)(nil))
func Of(v interface{}) Marker {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	if t == nil {
		panic("marker: untyped nil passed to Of")
	}
	if t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Interface {
		t = t.Elem()
	}
	return Marker{t: t}
}

var _defaults = []Marker{
	Of(Service{}),
	Of(Repository{}),
	Of(Component{}),
}

// Defaults returns the markers recognized when none are configured:
// Service, Repository and Component.
func Defaults() []Marker {
	ms := make([]Marker, len(_defaults))
	copy(ms, _defaults)
	return ms
}

// Type returns the marker's type.
func (m Marker) Type() reflect.Type { return m.t }

func (m Marker) String() string {
	if m.t == nil {
		return "<nil>"
	}
	return m.t.String()
}

// Present reports whether t carries the marker. t may be a struct type or
// a pointer to one.
func (m Marker) Present(t reflect.Type) bool {
	if m.t == nil || t == nil {
		return false
	}

	if m.t.Kind() == reflect.Interface {
		if t.Implements(m.t) {
			return true
		}
		return t.Kind() != reflect.Ptr && reflect.PtrTo(t).Implements(m.t)
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if f.Type == m.t || (f.Type.Kind() == reflect.Ptr && f.Type.Elem() == m.t) {
			return true
		}
	}
	return false
}

// IsInjectable reports whether t carries at least one of markers.
func IsInjectable(t reflect.Type, markers ...Marker) bool {
	for _, m := range markers {
		if m.Present(t) {
			return true
		}
	}
	return false
}

// IsInjectionPoint reports whether f carries the given tag. An empty tag
// means InjectTag.
func IsInjectionPoint(f reflect.StructField, tag string) bool {
	if tag == "" {
		tag = InjectTag
	}
	_, ok := f.Tag.Lookup(tag)
	return ok
}
