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

// Package user is a sample domain used by cmd/dibeans.
package user

import (
	"errors"
	"sync"

	"github.com/meatsby/di/discovery"
	"github.com/meatsby/di/marker"
)

func init() {
	discovery.Register(
		(*Repository)(nil),
		(*Service)(nil),
		(*Profile)(nil),
	)
}

// Repository stores user names by id.
type Repository struct {
	marker.Repository

	mu    sync.RWMutex
	names map[string]string
}

// Save stores a user.
func (r *Repository) Save(id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.names == nil {
		r.names = make(map[string]string)
	}
	r.names[id] = name
}

// Find looks a user up.
func (r *Repository) Find(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.names[id]
	return name, ok
}

// Service registers users.
type Service struct {
	marker.Service

	Repo *Repository `inject:""`
}

// Join registers a new user.
func (s *Service) Join(id, name string) error {
	if s.Repo == nil {
		return errors.New("user: repository is not wired")
	}
	if _, ok := s.Repo.Find(id); ok {
		return errors.New("user: " + id + " already joined")
	}
	s.Repo.Save(id, name)
	return nil
}

// Profile is a plain value type. It carries no marker and never becomes
// a bean.
type Profile struct {
	Name string
}
