// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Binding patterns for single-argument delegates.
//
// Compile-time targets are expressed as stateless selector types: Go has no
// function-valued type parameters, so a type with a fixed method stands in
// for the function, member, or receiver. Each distinct selector instantiates
// its own trampoline, and the compiler resolves the selector's method
// statically inside it.
//
// Every pattern that stores a receiver takes a pointer. Temporaries such as
// f() or func literals are not addressable and are refused by the compiler.

// Invoker is implemented by callables with signature func(A) R: stateless
// function selectors and function objects.
//
// [Delegate] does not implement Invoker, so a delegate cannot be bound
// through a function-object constructor. Copy delegates by assignment.
type Invoker[A, R any] interface {
	Invoke(a A) R
}

// MethodOf selects a pointer-receiver method of T at compile time.
//
// Example:
//
//	type incr struct{}
//	func (incr) Apply(c *Counter, n int) int { return c.Add(n) }
type MethodOf[T, A, R any] interface {
	Apply(recv *T, a A) R
}

// ConstMethodOf selects a value-receiver method of T at compile time.
// The method observes a copy of the receiver and cannot mutate it.
type ConstMethodOf[T, A, R any] interface {
	Apply(recv T, a A) R
}

// InstanceOf selects a receiver fixed at compile time, typically a
// package-level variable.
//
// Example:
//
//	var counter Counter
//	type theCounter struct{}
//	func (theCounter) Instance() *Counter { return &counter }
type InstanceOf[P any] interface {
	Instance() P
}

type functionStub[F Invoker[A, R], A, R any] struct{}

func (functionStub[F, A, R]) invoke(_ unsafe.Pointer, a A) R {
	var f F
	return f.Invoke(a)
}

type lambdaStub[A, R any] struct{}

func (lambdaStub[A, R]) invoke(object unsafe.Pointer, a A) R {
	return (*(*func(A) R)(object))(a)
}

type functorStub[T any, P interface {
	*T
	Invoker[A, R]
}, A, R any] struct{}

func (functorStub[T, P, A, R]) invoke(object unsafe.Pointer, a A) R {
	return P((*T)(object)).Invoke(a)
}

type constFunctorStub[T Invoker[A, R], A, R any] struct{}

func (constFunctorStub[T, A, R]) invoke(object unsafe.Pointer, a A) R {
	return (*(*T)(object)).Invoke(a)
}

type methodStub[M MethodOf[T, A, R], T, A, R any] struct{}

func (methodStub[M, T, A, R]) invoke(object unsafe.Pointer, a A) R {
	var m M
	return m.Apply((*T)(object), a)
}

type constMethodStub[M ConstMethodOf[T, A, R], T, A, R any] struct{}

func (constMethodStub[M, T, A, R]) invoke(object unsafe.Pointer, a A) R {
	var m M
	return m.Apply(*(*T)(object), a)
}

type fixedStub[I InstanceOf[*T], M MethodOf[T, A, R], T, A, R any] struct{}

func (fixedStub[I, M, T, A, R]) invoke(_ unsafe.Pointer, a A) R {
	var i I
	var m M
	return m.Apply(i.Instance(), a)
}

type fixedConstStub[I InstanceOf[*T], M ConstMethodOf[T, A, R], T, A, R any] struct{}

func (fixedConstStub[I, M, T, A, R]) invoke(_ unsafe.Pointer, a A) R {
	var i I
	var m M
	return m.Apply(*i.Instance(), a)
}

type fixedFunctorStub[I InstanceOf[P], P Invoker[A, R], A, R any] struct{}

func (fixedFunctorStub[I, P, A, R]) invoke(_ unsafe.Pointer, a A) R {
	var i I
	return i.Instance().Invoke(a)
}

// Function binds the free function selected by F.
// No receiver is stored; A and R are inferred from F's Invoke method:
//
//	type double struct{}
//	func (double) Invoke(x int) int { return 2 * x }
//
//	d := delegate.Function[double]()
//
// F is never instantiated: its zero value is the selector. A pointer type
// such as *Accumulator satisfies [Invoker] but its zero value is nil, so F
// must be a non-pointer selector or a pointer whose Invoke ignores the
// receiver.
func Function[F Invoker[A, R], A, R any]() Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](nil, functionStub[F, A, R]{})}
}

// Lambda binds the closure held in *fn by reference.
// The variable is read on every call, so reassigning it changes the target.
func Lambda[A, R any](fn *func(A) R) Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](unsafe.Pointer(fn), lambdaStub[A, R]{})}
}

// Functor binds a function object whose Invoke method has a pointer receiver.
// The object may mutate itself on each call.
func Functor[A, R, T any, P interface {
	*T
	Invoker[A, R]
}](obj P) Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](unsafe.Pointer((*T)(obj)), functorStub[T, P, A, R]{})}
}

// ConstFunctor binds a function object whose Invoke method has a value receiver.
func ConstFunctor[T Invoker[A, R], A, R any](obj *T) Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](unsafe.Pointer(obj), constFunctorStub[T, A, R]{})}
}

// Method binds the method selected by M on the run-time receiver obj.
func Method[M MethodOf[T, A, R], T, A, R any](obj *T) Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](unsafe.Pointer(obj), methodStub[M, T, A, R]{})}
}

// ConstMethod binds the value-receiver method selected by M on the run-time
// receiver obj.
func ConstMethod[M ConstMethodOf[T, A, R], T, A, R any](obj *T) Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](unsafe.Pointer(obj), constMethodStub[M, T, A, R]{})}
}

// Fixed binds the method selected by M on the receiver selected by I.
// Both are fixed at compile time and no receiver is stored.
func Fixed[I InstanceOf[*T], M MethodOf[T, A, R], T, A, R any]() Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](nil, fixedStub[I, M, T, A, R]{})}
}

// FixedConst binds the value-receiver method selected by M on the receiver
// selected by I.
func FixedConst[I InstanceOf[*T], M ConstMethodOf[T, A, R], T, A, R any]() Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](nil, fixedConstStub[I, M, T, A, R]{})}
}

// FixedFunctor binds the Invoke method of the function object selected by I.
func FixedFunctor[I InstanceOf[P], P Invoker[A, R], A, R any]() Delegate[A, R] {
	return Delegate[A, R]{inv: bound[stub[A, R]](nil, fixedFunctorStub[I, P, A, R]{})}
}
