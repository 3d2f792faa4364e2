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
	"fmt"
	"io"
	"strings"
)

// ConsoleLogger is an event logger that attempts to write human-readable
// messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[DI] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Discovered:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to discover types under %q: %v", e.Root, e.Err)
		} else {
			l.logf("SCAN\t\t%s: %d candidate(s), %d skipped", e.Root, len(e.TypeNames), e.Skipped)
		}
	case *Resolved:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to resolve %v: %v", e.TypeName, e.Err)
		} else {
			l.logf("RESOLVE\t%v <= %v", e.TypeName, e.ConstructorName)
		}
	case *Instantiated:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to instantiate %v: %v", e.TypeName, e.Err)
		} else {
			l.logf("NEW\t\t%v in %v", e.TypeName, e.Runtime)
		}
	case *Injected:
		switch {
		case e.Err != nil:
			l.logf("ERROR\t\tFailed to inject %v.%s: %v", e.TypeName, e.FieldName, e.Err)
		case len(e.BeanTypeNames) > 1:
			l.logf("INJECT\t%v.%s <= %v (ambiguous: %s)", e.TypeName, e.FieldName,
				e.BeanTypeNames[len(e.BeanTypeNames)-1], strings.Join(e.BeanTypeNames, ", "))
		case len(e.BeanTypeNames) == 1:
			l.logf("INJECT\t%v.%s <= %v", e.TypeName, e.FieldName, e.BeanTypeNames[0])
		}
	case *Ready:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to build container: %v", e.Err)
		} else {
			l.logf("READY\t\t%d bean(s)", e.Beans)
		}
	}
}
