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

// Package discovery finds the candidate types that live beneath a root
// package path.
//
// Go cannot enumerate the types of a package at run time, so packages that
// want to be discoverable register their types, usually from init:
//
//	func init() {
//		discovery.Register(
//			(*UserService)(nil),
//			(*UserRepository)(nil),
//		)
//	}
//
// Containers built with di.NewForPackage then look them up by package path.
package discovery

import (
	"context"
	"reflect"
)

// Discoverer returns every type registered beneath a root package path.
//
// Results must be exhaustive for root and free of duplicates.
type Discoverer interface {
	Discover(ctx context.Context, root string) ([]reflect.Type, error)
}

// DiscoverFunc adapts a function to the Discoverer interface.
type DiscoverFunc func(ctx context.Context, root string) ([]reflect.Type, error)

// Discover calls f.
func (f DiscoverFunc) Discover(ctx context.Context, root string) ([]reflect.Type, error) {
	return f(ctx, root)
}

// Default catalog is used for all the top-level calls
var defaultCatalog = NewCatalog()

// Default returns the process-wide catalog filled by Register.
func Default() *Catalog {
	return defaultCatalog
}

// Register records types in the default catalog.
func Register(tokens ...interface{}) {
	defaultCatalog.Register(tokens...)
}
