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

package dievent

import (
	"time"
)

// Event defines an event emitted while building a container.
type Event interface {
	event() // Only dievent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Discovered) event()   {}
func (*Resolved) event()     {}
func (*Instantiated) event() {}
func (*Injected) event()     {}
func (*Ready) event()        {}

// Discovered is emitted after the type discovery of a package scan.
type Discovered struct {
	// Root is the package path that was scanned.
	Root string

	// TypeNames lists the discovered types carrying a role marker.
	TypeNames []string

	// Skipped is the number of discovered types without a role marker.
	Skipped int

	Err error
}

// Resolved is emitted once a type has been resolved into a constructor.
type Resolved struct {
	TypeName        string
	ConstructorName string
	Err             error
}

// Instantiated is emitted after a bean's constructor has run.
type Instantiated struct {
	TypeName        string
	ConstructorName string
	Runtime         time.Duration
	Err             error
}

// Injected is emitted after a field of a bean was assigned.
type Injected struct {
	// TypeName is the type of the bean that owns the field.
	TypeName      string
	FieldName     string
	FieldTypeName string

	// BeanTypeNames lists every bean assigned to the field, in assignment
	// order. The last one is the field's final value.
	BeanTypeNames []string

	Err error
}

// Ready is emitted when the container is built, or failed to build.
type Ready struct {
	Beans int
	Err   error
}
