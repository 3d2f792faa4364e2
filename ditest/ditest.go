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

// Package ditest builds containers in tests, failing the test instead of
// returning errors.
package ditest

import (
	"context"
	"strings"

	"github.com/meatsby/di"
	"github.com/meatsby/di/dievent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

type testWriter struct{ TB }

func (w testWriter) Write(p []byte) (int, error) {
	w.Logf("%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// NewTestLogger returns an event logger that writes to the test log.
func NewTestLogger(t TB) dievent.Logger {
	return &dievent.ConsoleLogger{W: testWriter{t}}
}

// New builds a container with di.New, logging build events to t. The test
// fails immediately if the container cannot be built.
//
// A logger given in opts replaces the test logger.
func New(t TB, types []interface{}, opts ...di.Option) *di.Container {
	opts = append([]di.Option{di.WithLogger(NewTestLogger(t))}, opts...)
	c, err := di.New(types, opts...)
	if err != nil {
		t.Errorf("container didn't build: %+v", err)
		t.FailNow()
	}
	return c
}

// NewForPackage builds a container with di.NewForPackage, logging build
// events to t. The test fails immediately if the container cannot be built.
func NewForPackage(t TB, root string, opts ...di.Option) *di.Container {
	opts = append([]di.Option{di.WithLogger(NewTestLogger(t))}, opts...)
	c, err := di.NewForPackage(context.Background(), root, opts...)
	if err != nil {
		t.Errorf("container didn't build: %+v", err)
		t.FailNow()
	}
	return c
}

// MustPopulate calls c.Populate, failing the test if an error is
// encountered.
func MustPopulate(t TB, c *di.Container, targets ...interface{}) {
	if err := c.Populate(targets...); err != nil {
		t.Errorf("container couldn't populate targets: %v", err)
		t.FailNow()
	}
}
