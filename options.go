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
	"fmt"
	"strings"

	"github.com/meatsby/di/dievent"
	"github.com/meatsby/di/discovery"
	"github.com/meatsby/di/marker"
)

// An Option configures how a container is built.
type Option interface {
	fmt.Stringer

	apply(*config)
}

type config struct {
	logger      dievent.Logger
	parallelism int
	markers     []marker.Marker
	tag         string
	discoverer  discovery.Discoverer
}

func newConfig(opts []Option) *config {
	cfg := &config{
		logger:      dievent.NopLogger,
		parallelism: 1,
		markers:     marker.Defaults(),
		tag:         marker.InjectTag,
		discoverer:  discovery.Default(),
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	return cfg
}

// Options groups a list of options together into a single option.
func Options(opts ...Option) Option {
	return optionGroup(opts)
}

type optionGroup []Option

func (og optionGroup) apply(cfg *config) {
	for _, opt := range og {
		opt.apply(cfg)
	}
}

func (og optionGroup) String() string {
	items := make([]string, len(og))
	for i, opt := range og {
		items[i] = fmt.Sprint(opt)
	}
	return fmt.Sprintf("di.Options(%s)", strings.Join(items, ", "))
}

// WithLogger sends build events to the given logger. A nil logger
// discards them.
func WithLogger(l dievent.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ logger dievent.Logger }

func (o loggerOption) apply(cfg *config) {
	if o.logger == nil {
		cfg.logger = dievent.NopLogger
		return
	}
	cfg.logger = o.logger
}

func (o loggerOption) String() string {
	return fmt.Sprintf("di.WithLogger(%T)", o.logger)
}

// Parallelism calls up to n constructors at once, and wires up to n beans
// at once. Wiring never starts before every constructor has returned.
// Values below 2 build sequentially, which is the default.
func Parallelism(n int) Option {
	return parallelismOption(n)
}

type parallelismOption int

func (o parallelismOption) apply(cfg *config) {
	cfg.parallelism = int(o)
	if cfg.parallelism < 1 {
		cfg.parallelism = 1
	}
}

func (o parallelismOption) String() string {
	return fmt.Sprintf("di.Parallelism(%d)", int(o))
}

// Markers replaces the role markers NewForPackage looks for. A type is
// kept if it carries any of them. Defaults to marker.Defaults().
func Markers(ms ...marker.Marker) Option {
	return markersOption(ms)
}

type markersOption []marker.Marker

func (o markersOption) apply(cfg *config) {
	cfg.markers = append([]marker.Marker(nil), o...)
}

func (o markersOption) String() string {
	items := make([]string, len(o))
	for i, m := range o {
		items[i] = m.String()
	}
	return fmt.Sprintf("di.Markers(%s)", strings.Join(items, ", "))
}

// InjectTag changes the struct tag that marks injection points for
// NewForPackage. Defaults to marker.InjectTag.
func InjectTag(name string) Option {
	return tagOption(name)
}

type tagOption string

func (o tagOption) apply(cfg *config) {
	cfg.tag = string(o)
	if cfg.tag == "" {
		cfg.tag = marker.InjectTag
	}
}

func (o tagOption) String() string {
	return fmt.Sprintf("di.InjectTag(%q)", string(o))
}

// WithDiscoverer changes where NewForPackage looks for types. Defaults to
// discovery.Default().
func WithDiscoverer(d discovery.Discoverer) Option {
	return discovererOption{d}
}

type discovererOption struct{ d discovery.Discoverer }

func (o discovererOption) apply(cfg *config) {
	if o.d != nil {
		cfg.discoverer = o.d
	}
}

func (o discovererOption) String() string {
	return fmt.Sprintf("di.WithDiscoverer(%T)", o.d)
}
