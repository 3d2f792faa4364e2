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
	"go.uber.org/zap"
)

// ZapLogger is an event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Discovered:
		if e.Err != nil {
			l.Logger.Error("discovery failed",
				zap.String("root", e.Root),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("discovered",
				zap.String("root", e.Root),
				zap.Strings("types", e.TypeNames),
				zap.Int("skipped", e.Skipped),
			)
		}
	case *Resolved:
		if e.Err != nil {
			l.Logger.Error("resolve failed",
				zap.String("type", e.TypeName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("resolved",
				zap.String("type", e.TypeName),
				zap.String("constructor", e.ConstructorName),
			)
		}
	case *Instantiated:
		if e.Err != nil {
			l.Logger.Error("instantiate failed",
				zap.String("type", e.TypeName),
				zap.String("constructor", e.ConstructorName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("instantiated",
				zap.String("type", e.TypeName),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *Injected:
		fields := []zap.Field{
			zap.String("type", e.TypeName),
			zap.String("field", e.FieldName),
			zap.String("fieldType", e.FieldTypeName),
		}
		switch {
		case e.Err != nil:
			l.Logger.Error("inject failed", append(fields, zap.Error(e.Err))...)
		case len(e.BeanTypeNames) > 1:
			l.Logger.Warn("ambiguous injection, last match wins",
				append(fields, zap.Strings("candidates", e.BeanTypeNames))...)
		case len(e.BeanTypeNames) == 1:
			l.Logger.Info("injected", append(fields, zap.String("bean", e.BeanTypeNames[0]))...)
		}
	case *Ready:
		if e.Err != nil {
			l.Logger.Error("container build failed", zap.Error(e.Err))
		} else {
			l.Logger.Info("container ready", zap.Int("beans", e.Beans))
		}
	}
}
