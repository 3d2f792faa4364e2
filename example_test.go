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

package di_test

import (
	"context"
	"fmt"
	"log"
	"reflect"

	"github.com/meatsby/di"
	"github.com/meatsby/di/discovery"
	"github.com/meatsby/di/marker"
)

type UserRepository struct {
	users map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]string{"gugu": "Gugu"}}
}

func (r *UserRepository) Find(id string) string { return r.users[id] }

type UserService struct {
	repo *UserRepository
}

func (s *UserService) Greet(id string) string {
	return "hello, " + s.repo.Find(id)
}

func ExampleNew() {
	c, err := di.New([]interface{}{
		(*UserService)(nil),
		NewUserRepository,
	})
	if err != nil {
		log.Fatal(err)
	}

	var svc *UserService
	if err := c.Populate(&svc); err != nil {
		log.Fatal(err)
	}
	fmt.Println(svc.Greet("gugu"))

	// Output:
	// hello, gugu
}

func ExampleContainer_Bean() {
	c, err := di.New([]interface{}{(*UserService)(nil)})
	if err != nil {
		log.Fatal(err)
	}

	_, err = c.Bean(reflect.TypeOf(&UserRepository{}))
	fmt.Println(err)

	// Output:
	// no bean assignable to *di_test.UserRepository
}

type TaggedRepository struct {
	marker.Repository

	name string
}

type TaggedService struct {
	marker.Service

	Repo  *TaggedRepository `inject:""`
	Cache *TaggedRepository
}

type Untagged struct{}

func ExampleNewForPackage() {
	catalog := discovery.NewCatalog()
	catalog.Register(
		(*TaggedService)(nil),
		(*TaggedRepository)(nil),
		(*Untagged)(nil),
	)

	c, err := di.NewForPackage(context.Background(), "github.com/meatsby/di_test",
		di.WithDiscoverer(catalog))
	if err != nil {
		log.Fatal(err)
	}

	var svc *TaggedService
	if err := c.Populate(&svc); err != nil {
		log.Fatal(err)
	}
	fmt.Println(c.Len(), svc.Repo != nil, svc.Cache != nil)

	// Output:
	// 2 true false
}
