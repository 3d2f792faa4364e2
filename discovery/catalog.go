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

package discovery

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/meatsby/di/internal/direflect"
)

// Catalog is an in-memory Discoverer. It is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	seen  map[reflect.Type]struct{}
	types []reflect.Type // in registration order
}

var _ Discoverer = (*Catalog)(nil)

// NewCatalog builds an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{seen: make(map[reflect.Type]struct{})}
}

// Register records types in the catalog. Each token is a reflect.Type, a
// value, or a typed nil pointer; pointers are recorded as their element
// type. Registering a type twice is a no-op.
//
// Register panics if a token is nil or does not name a package-level type,
// since such types cannot be found by package path.
func (c *Catalog) Register(tokens ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tok := range tokens {
		t := typeOf(tok)
		if _, ok := c.seen[t]; ok {
			continue
		}
		c.seen[t] = struct{}{}
		c.types = append(c.types, t)
	}
}

// Discover returns the types whose package path is root or lies beneath it.
func (c *Catalog) Discover(ctx context.Context, root string) ([]reflect.Type, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var found []reflect.Type
	for _, t := range c.types {
		if beneath(t.PkgPath(), root) {
			found = append(found, t)
		}
	}
	return found, nil
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types)
}

func (c *Catalog) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b := &bytes.Buffer{}
	fmt.Fprintln(b, "{types:")
	for _, t := range c.types {
		fmt.Fprintln(b, t.PkgPath(), "->", t)
	}
	fmt.Fprintln(b, "}")
	return b.String()
}

func typeOf(tok interface{}) reflect.Type {
	t, ok := tok.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(tok)
	}
	if t == nil {
		panic("discovery: untyped nil passed to Register")
	}
	t = direflect.Indirect(t)
	if t.PkgPath() == "" || t.Name() == "" {
		panic(fmt.Sprintf("discovery: %v is not a named package-level type", t))
	}
	return t
}

// beneath reports whether pkg is root or a sub-package of root.
func beneath(pkg, root string) bool {
	root = strings.TrimSuffix(root, "/...")
	root = strings.TrimSuffix(root, "/")
	if root == "" {
		return true
	}
	return pkg == root || strings.HasPrefix(pkg, root+"/")
}
