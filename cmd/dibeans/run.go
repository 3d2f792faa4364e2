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

package main

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/meatsby/di"
	"github.com/meatsby/di/dievent"
	"github.com/meatsby/di/discovery"
	"github.com/meatsby/di/internal/sample"
	"github.com/meatsby/di/marker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type options struct {
	root        string
	format      string
	verbose     bool
	parallelism int
	allFields   bool
}

func run(ctx context.Context, stdout, stderr io.Writer, opts options) error {
	if opts.format != formatText && opts.format != formatYAML {
		return errors.Errorf("unknown format %q", opts.format)
	}
	if opts.root == "" {
		opts.root = sample.Root
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger := zap.NewNop()
	if opts.verbose {
		logger = newVerboseLogger(stderr)
	}
	defer logger.Sync() //nolint:errcheck

	rec := &recorder{next: &dievent.ZapLogger{Logger: logger}}
	diOpts := []di.Option{
		di.WithLogger(rec),
		di.Parallelism(opts.parallelism),
	}

	c, err := build(ctx, opts, diOpts)
	if err != nil {
		return err
	}

	rep := newReport(opts.root, c, rec.injected())
	if opts.format == formatYAML {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return errors.Wrap(err, "could not encode report")
		}
		return enc.Close()
	}
	_, err = io.WriteString(stdout, rep.String())
	return err
}

// build scans the root for marked types. With allFields set the marked
// types are handed to di.New instead, so that untagged fields get wired
// too.
func build(ctx context.Context, opts options, diOpts []di.Option) (*di.Container, error) {
	if !opts.allFields {
		return di.NewForPackage(ctx, opts.root, diOpts...)
	}

	types, err := discovery.Default().Discover(ctx, opts.root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not discover types under %q", opts.root)
	}
	var tokens []interface{}
	for _, t := range types {
		if marker.IsInjectable(t, marker.Defaults()...) {
			tokens = append(tokens, t)
		}
	}
	return di.New(tokens, diOpts...)
}

func newVerboseLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

// recorder keeps the Injected events of a build and forwards every event.
// Events reach it serialized.
type recorder struct {
	next   dievent.Logger
	events []*dievent.Injected
}

func (r *recorder) LogEvent(e dievent.Event) {
	if ie, ok := e.(*dievent.Injected); ok && ie.Err == nil {
		r.events = append(r.events, ie)
	}
	r.next.LogEvent(e)
}

func (r *recorder) injected() []*dievent.Injected { return r.events }

type report struct {
	Root  string     `yaml:"root"`
	Beans []beanInfo `yaml:"beans"`
}

type beanInfo struct {
	Type   string      `yaml:"type"`
	Fields []fieldInfo `yaml:"fields,omitempty"`
}

type fieldInfo struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Bean       string   `yaml:"bean"`
	Candidates []string `yaml:"candidates,omitempty"`
}

func newReport(root string, c *di.Container, injected []*dievent.Injected) report {
	byType := make(map[string][]fieldInfo)
	for _, e := range injected {
		fi := fieldInfo{
			Name: e.FieldName,
			Type: e.FieldTypeName,
			Bean: e.BeanTypeNames[len(e.BeanTypeNames)-1],
		}
		if len(e.BeanTypeNames) > 1 {
			fi.Candidates = e.BeanTypeNames
		}
		byType[e.TypeName] = append(byType[e.TypeName], fi)
	}

	rep := report{Root: root}
	for _, b := range c.Beans() {
		name := reflect.TypeOf(b).String()
		rep.Beans = append(rep.Beans, beanInfo{Type: name, Fields: byType[name]})
	}
	return rep
}

func (r report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "root: %s\n", r.Root)
	for _, b := range r.Beans {
		fmt.Fprintln(&sb, b.Type)
		for _, f := range b.Fields {
			fmt.Fprintf(&sb, "  %s %s <= %s", f.Name, f.Type, f.Bean)
			if len(f.Candidates) > 0 {
				fmt.Fprintf(&sb, " (ambiguous: %s)", strings.Join(f.Candidates, ", "))
			}
			fmt.Fprintln(&sb)
		}
	}
	return sb.String()
}
