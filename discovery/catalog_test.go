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
	"reflect"
	"testing"

	"github.com/meatsby/di/marker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alpha struct{}

type beta struct{}

var (
	_alphaType  = reflect.TypeOf(alpha{})
	_betaType   = reflect.TypeOf(beta{})
	_bufferType = reflect.TypeOf(bytes.Buffer{})
	_markerType = reflect.TypeOf(marker.Service{})
)

func TestCatalogRegister(t *testing.T) {
	c := NewCatalog()
	c.Register((*alpha)(nil), beta{}, _alphaType, &bytes.Buffer{})
	assert.Equal(t, 3, c.Len(), "duplicates must be collapsed")

	assert.Panics(t, func() { c.Register(nil) })
	assert.Panics(t, func() { c.Register(struct{ A int }{}) }, "anonymous types have no package path")
	assert.Panics(t, func() { c.Register(42) }, "predeclared types have no package path")
}

func TestCatalogDiscover(t *testing.T) {
	c := NewCatalog()
	c.Register(alpha{}, marker.Service{}, beta{}, bytes.Buffer{})

	tests := []struct {
		give string
		want []reflect.Type
	}{
		{"github.com/meatsby/di/discovery", []reflect.Type{_alphaType, _betaType}},
		{"github.com/meatsby/di", []reflect.Type{_alphaType, _markerType, _betaType}},
		{"github.com/meatsby/di/...", []reflect.Type{_alphaType, _markerType, _betaType}},
		{"github.com/meatsby/di/", []reflect.Type{_alphaType, _markerType, _betaType}},
		{"github.com/meatsby/d", nil},
		{"bytes", []reflect.Type{_bufferType}},
		{"", []reflect.Type{_alphaType, _markerType, _betaType, _bufferType}},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			got, err := c.Discover(context.Background(), tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogDiscoverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCatalog().Discover(ctx, "bytes")
	assert.Equal(t, context.Canceled, err)
}

func TestCatalogString(t *testing.T) {
	c := NewCatalog()
	c.Register(alpha{})
	assert.Equal(t, "{types:\ngithub.com/meatsby/di/discovery -> discovery.alpha\n}\n", c.String())
}

func TestDiscoverFunc(t *testing.T) {
	var d Discoverer = DiscoverFunc(func(_ context.Context, root string) ([]reflect.Type, error) {
		assert.Equal(t, "root", root)
		return []reflect.Type{_alphaType}, nil
	})

	got, err := d.Discover(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{_alphaType}, got)
}

func TestDefault(t *testing.T) {
	Register((*alpha)(nil))
	n := Default().Len()
	Register((*alpha)(nil))
	assert.Equal(t, n, Default().Len())

	got, err := Default().Discover(context.Background(), "github.com/meatsby/di/discovery")
	require.NoError(t, err)
	assert.Contains(t, got, _alphaType)
}
