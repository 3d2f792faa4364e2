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
	"github.com/meatsby/di/dievent"
	"github.com/meatsby/di/internal/descriptor"
)

// wire fills the injection points of every bean. It must only run once
// every bean has been constructed.
func (b *builder) wire(reg *registry) error {
	return b.each(len(reg.beans), func(i int) error {
		return b.wireBean(reg, reg.beans[i])
	})
}

// wireBean assigns every bean assignable to an eligible field into that
// field, in registration order. The last match stays in the field.
func (b *builder) wireBean(reg *registry, bn bean) error {
	typ := bn.value.Type()

	for _, f := range descriptor.Fields(typ) {
		if !b.eligible(f) {
			continue
		}

		matches := reg.matches(f.Type)
		if len(matches) == 0 {
			continue
		}

		fv, err := descriptor.Settable(bn.value, f)
		if err != nil {
			err = &FieldAssignmentError{Type: typ, Field: f.Name, FieldType: f.Type, Err: err}
			b.log(&dievent.Injected{
				TypeName:      typ.String(),
				FieldName:     f.Name,
				FieldTypeName: f.Type.String(),
				Err:           err,
			})
			return err
		}

		names := make([]string, len(matches))
		for i, m := range matches {
			fv.Set(m.value)
			names[i] = m.value.Type().String()
		}

		b.log(&dievent.Injected{
			TypeName:      typ.String(),
			FieldName:     f.Name,
			FieldTypeName: f.Type.String(),
			BeanTypeNames: names,
		})
	}
	return nil
}

