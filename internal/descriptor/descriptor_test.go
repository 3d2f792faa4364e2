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
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repo struct {
	name string
}

type Service struct {
	Repo   *repo
	hidden io.Reader
	_      int
	Count  int `inject:""`
}

func newService() *Service { return &Service{} }

func TestResolve(t *testing.T) {
	t.Run("Struct", func(t *testing.T) {
		tests := []struct {
			desc string
			give interface{}
		}{
			{"value", Service{}},
			{"typed nil pointer", (*Service)(nil)},
			{"reflect.Type", reflect.TypeOf(Service{})},
			{"pointer reflect.Type", reflect.TypeOf(&Service{})},
		}

		for _, tt := range tests {
			t.Run(tt.desc, func(t *testing.T) {
				d, err := Resolve(tt.give)
				require.NoError(t, err)
				assert.Equal(t, reflect.TypeOf(&Service{}), d.Type())
				assert.Equal(t, "new(descriptor.Service)", d.Name())

				v, err := d.Construct()
				require.NoError(t, err)
				assert.IsType(t, &Service{}, v.Interface())
			})
		}
	})

	t.Run("UnexportedStruct", func(t *testing.T) {
		d, err := Resolve((*repo)(nil))
		require.NoError(t, err)

		v, err := d.Construct()
		require.NoError(t, err)
		assert.IsType(t, &repo{}, v.Interface())
	})

	t.Run("Constructor", func(t *testing.T) {
		d, err := Resolve(newService)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeOf(&Service{}), d.Type())
		assert.Equal(t, "github.com/meatsby/di/internal/descriptor.newService()", d.Name())

		v, err := d.Construct()
		require.NoError(t, err)
		assert.IsType(t, &Service{}, v.Interface())
	})

	t.Run("VariadicConstructor", func(t *testing.T) {
		d, err := Resolve(func(names ...string) *repo {
			return &repo{name: strings.Join(names, ",")}
		})
		require.NoError(t, err)

		v, err := d.Construct()
		require.NoError(t, err)
		assert.Equal(t, "", v.Interface().(*repo).name)
	})

	t.Run("InterfaceResultIsUnwrapped", func(t *testing.T) {
		d, err := Resolve(func() io.Reader { return strings.NewReader("x") })
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeOf((*io.Reader)(nil)).Elem(), d.Type())

		v, err := d.Construct()
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeOf(&strings.Reader{}), v.Type())
	})
}

func TestResolveFailures(t *testing.T) {
	var nilCtor func() *Service

	tests := []struct {
		desc       string
		give       interface{}
		wantReason string
	}{
		{"untyped nil", nil, "untyped nil"},
		{"interface", reflect.TypeOf((*io.Reader)(nil)).Elem(), "interface types cannot be constructed"},
		{"int", 42, "int is not a struct"},
		{"map", map[string]int{}, "map is not a struct"},
		{"pointer to int", new(int), "ptr is not a struct"},
		{"func type", reflect.TypeOf(newService), "passed as constructor values"},
		{"nil constructor", nilCtor, "constructor is nil"},
		{"arguments", func(*repo) *Service { return nil }, "requires 1 argument(s)"},
		{"no results", func() {}, "must return T or (T, error)"},
		{"only error", func() error { return nil }, "must not return only an error"},
		{"second not error", func() (*Service, int) { return nil, 0 }, "must return (T, error)"},
		{"three results", func() (int, int, error) { return 0, 0, nil }, "must return T or (T, error)"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			d, err := Resolve(tt.give)
			require.Error(t, err)
			assert.Nil(t, d)

			var rerr *Error
			require.True(t, errors.As(err, &rerr), "expected *Error, got %T", err)
			assert.Contains(t, rerr.Reason, tt.wantReason)
			assert.Contains(t, err.Error(), "has no zero-argument constructor")
		})
	}
}

func TestConstructFailures(t *testing.T) {
	tests := []struct {
		desc    string
		give    interface{}
		wantErr string
	}{
		{
			desc:    "error",
			give:    func() (*Service, error) { return nil, errors.New("great sadness") },
			wantErr: "great sadness",
		},
		{
			desc:    "panic",
			give:    func() *Service { panic("oops") },
			wantErr: "constructor panicked: oops",
		},
		{
			desc:    "nil pointer",
			give:    func() *Service { return nil },
			wantErr: "constructor returned nil",
		},
		{
			desc:    "nil interface",
			give:    func() io.Reader { return nil },
			wantErr: "constructor returned nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			d, err := Resolve(tt.give)
			require.NoError(t, err)

			_, err = d.Construct()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
