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

// Package order is a sample domain used by cmd/dibeans.
package order

import (
	"fmt"
	"sync"

	"github.com/meatsby/di/discovery"
	"github.com/meatsby/di/internal/sample/user"
	"github.com/meatsby/di/marker"
)

func init() {
	discovery.Register(
		(*MemoryRepository)(nil),
		(*JournalRepository)(nil),
		(*Service)(nil),
	)
}

// Order is a placed order.
type Order struct {
	UserID string
	Item   string
}

// Repository stores orders.
type Repository interface {
	Add(Order)
	Count() int
}

// MemoryRepository keeps orders in a slice.
type MemoryRepository struct {
	marker.Repository

	mu     sync.Mutex
	orders []Order
}

var _ Repository = (*MemoryRepository)(nil)

// Add stores o.
func (r *MemoryRepository) Add(o Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
}

// Count returns the number of stored orders.
func (r *MemoryRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

// JournalRepository records orders as journal lines.
type JournalRepository struct {
	marker.Repository

	mu    sync.Mutex
	lines []string
}

var _ Repository = (*JournalRepository)(nil)

// Add appends a journal line for o.
func (r *JournalRepository) Add(o Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf("%s ordered %s", o.UserID, o.Item))
}

// Count returns the number of journal lines.
func (r *JournalRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// Service places orders for known users.
//
// Both repositories satisfy Orders; the one registered last is kept.
type Service struct {
	marker.Service

	Users  *user.Service `inject:""`
	Orders Repository    `inject:""`
}

// Place records an order for a user that has joined.
func (s *Service) Place(userID, item string) error {
	if _, ok := s.Users.Repo.Find(userID); !ok {
		return fmt.Errorf("order: unknown user %q", userID)
	}
	s.Orders.Add(Order{UserID: userID, Item: item})
	return nil
}
