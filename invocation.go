// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// invocation is the entire run-time state of a delegate.
//
// object is the non-owning receiver reference, nil for patterns that need
// none. stub is the trampoline: an interface whose dynamic type is a
// zero-size generic struct, one per binding pattern and compile-time target.
// The dynamic type identifies the routine, so two stubs compare equal exactly
// when they dispatch to the same code. Boxing a zero-size value into an
// interface does not allocate.
//
// Invariant: stub is nil only when object is nil.
type invocation[S comparable] struct {
	object unsafe.Pointer
	stub   S
}

func bound[S comparable](object unsafe.Pointer, stub S) invocation[S] {
	return invocation[S]{object: object, stub: stub}
}

func (i *invocation[S]) clear() {
	var zero S
	i.object = nil
	i.stub = zero
}

func (i invocation[S]) equal(o invocation[S]) bool {
	return i.object == o.object && i.stub == o.stub
}

func (i invocation[S]) valid() bool {
	var zero S
	return i.stub != zero
}

// stub is the uniform calling convention for single-argument trampolines.
type stub[A, R any] interface {
	invoke(object unsafe.Pointer, a A) R
}

// stub2 is the uniform calling convention for two-argument trampolines.
type stub2[A, B, R any] interface {
	invoke(object unsafe.Pointer, a A, b B) R
}
