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

// Package di is a reflective field-injection container.
//
// A container is built from a set of types. It constructs exactly one bean
// per type with that type's zero-argument constructor, then fills the
// fields of every bean with the beans whose types are assignable to them.
// No configuration code is needed beyond the list of types.
//
//	type UserRepository struct{}
//
//	type UserService struct {
//		repo *UserRepository
//	}
//
//	c, err := di.New([]interface{}{
//		(*UserService)(nil),
//		(*UserRepository)(nil),
//	})
//
//	var svc *UserService
//	err = c.Populate(&svc) // svc.repo is the container's *UserRepository
//
// # Building
//
// New wires every declared field, exported or not. NewForPackage asks a
// discovery.Discoverer for the types registered beneath a package path,
// keeps those that embed one of the role markers from package marker, and
// wires only the fields tagged `inject:""`.
//
// Building runs in three phases: every type is resolved into a constructor,
// every constructor is called, and then every field is wired. Any failure
// aborts the build and no container is returned.
//
// # Ambiguity
//
// When more than one bean is assignable to a field, each of them is
// assigned in turn, in registration order, so the last one wins. This is not
// an error. A field that no bean matches keeps its zero value.
//
// # Lookups
//
// Bean, Populate and Beans read the finished container. Lookups return the
// first bean, in registration order, assignable to the requested type, or a
// *NoSuchBeanError.
package di
