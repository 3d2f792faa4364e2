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
)

func TestPopulate(t *testing.T) {
	c, err := New([]interface{}{(*userService)(nil), (*userRepository)(nil)})
	require.NoError(t, err)

	t.Run("Pointers", func(t *testing.T) {
		var (
			svc  *userService
			repo *userRepository
		)
		require.NoError(t, c.Populate(&svc, &repo))
		require.NotNil(t, svc)
		assert.Same(t, repo, svc.repo)
	})

	t.Run("Interface", func(t *testing.T) {
		var repo Repository
		require.NoError(t, c.Populate(&repo))
		assert.Equal(t, "user", repo.Name())
	})

	t.Run("NoTargets", func(t *testing.T) {
		assert.NoError(t, c.Populate())
	})

	t.Run("NotAPointer", func(t *testing.T) {
		var svc *userService
		err := c.Populate(svc)
		assert.EqualError(t, err, "Populate expected a non-nil pointer, got *di.userService")

		err = c.Populate(nil)
		assert.EqualError(t, err, "Populate expected a non-nil pointer, got <nil>")

		err = c.Populate(userService{})
		assert.EqualError(t, err, "Populate expected a non-nil pointer, got di.userService")
	})

	t.Run("NoSuchBean", func(t *testing.T) {
		var (
			repo  *userRepository
			order *orderService
		)
		err := c.Populate(&repo, &order)
		require.Error(t, err)
		assert.IsType(t, &NoSuchBeanError{}, err)
		assert.NotNil(t, repo, "targets before the failure are filled")
		assert.Nil(t, order)
	})
}
