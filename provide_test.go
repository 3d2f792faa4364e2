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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
	"go.uber.org/multierr"
)

func TestProvide(t *testing.T) {
	c, err := New([]interface{}{(*userService)(nil), (*userRepository)(nil)})
	require.NoError(t, err)

	t.Run("InvokeSeesBeans", func(t *testing.T) {
		dc := dig.New()
		require.NoError(t, c.Provide(dc))

		var (
			want *userService
			got  *userService
		)
		require.NoError(t, c.Populate(&want))
		require.NoError(t, dc.Invoke(func(svc *userService, repo *userRepository) {
			got = svc
			assert.Same(t, repo, svc.repo)
		}))
		assert.Same(t, want, got)
	})

	t.Run("DigConstructorsDependOnBeans", func(t *testing.T) {
		type handler struct{ svc *userService }

		dc := dig.New()
		require.NoError(t, c.Provide(dc))
		require.NoError(t, dc.Provide(func(svc *userService) *handler {
			return &handler{svc: svc}
		}))

		require.NoError(t, dc.Invoke(func(h *handler) {
			assert.NotNil(t, h.svc.repo)
		}))
	})

	t.Run("AlreadyProvided", func(t *testing.T) {
		dc := dig.New()
		require.NoError(t, dc.Provide(func() *userRepository { return &userRepository{} }))

		err := c.Provide(dc)
		require.Error(t, err)
		errs := multierr.Errors(err)
		require.Len(t, errs, 1, "only the repository clashes")
		assert.Contains(t, errs[0].Error(), "could not provide *di.userRepository")

		assert.NoError(t, dc.Invoke(func(*userService) {}), "other beans are still provided")
	})
}
