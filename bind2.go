// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Binding patterns for two-argument delegates. See bind.go.

// Invoker2 is implemented by callables with signature func(A, B) R.
type Invoker2[A, B, R any] interface {
	Invoke(a A, b B) R
}

// MethodOf2 selects a two-argument pointer-receiver method of T.
type MethodOf2[T, A, B, R any] interface {
	Apply(recv *T, a A, b B) R
}

// ConstMethodOf2 selects a two-argument value-receiver method of T.
type ConstMethodOf2[T, A, B, R any] interface {
	Apply(recv T, a A, b B) R
}

type functionStub2[F Invoker2[A, B, R], A, B, R any] struct{}

func (functionStub2[F, A, B, R]) invoke(_ unsafe.Pointer, a A, b B) R {
	var f F
	return f.Invoke(a, b)
}

type lambdaStub2[A, B, R any] struct{}

func (lambdaStub2[A, B, R]) invoke(object unsafe.Pointer, a A, b B) R {
	return (*(*func(A, B) R)(object))(a, b)
}

type functorStub2[T any, P interface {
	*T
	Invoker2[A, B, R]
}, A, B, R any] struct{}

func (functorStub2[T, P, A, B, R]) invoke(object unsafe.Pointer, a A, b B) R {
	return P((*T)(object)).Invoke(a, b)
}

type constFunctorStub2[T Invoker2[A, B, R], A, B, R any] struct{}

func (constFunctorStub2[T, A, B, R]) invoke(object unsafe.Pointer, a A, b B) R {
	return (*(*T)(object)).Invoke(a, b)
}

type methodStub2[M MethodOf2[T, A, B, R], T, A, B, R any] struct{}

func (methodStub2[M, T, A, B, R]) invoke(object unsafe.Pointer, a A, b B) R {
	var m M
	return m.Apply((*T)(object), a, b)
}

type constMethodStub2[M ConstMethodOf2[T, A, B, R], T, A, B, R any] struct{}

func (constMethodStub2[M, T, A, B, R]) invoke(object unsafe.Pointer, a A, b B) R {
	var m M
	return m.Apply(*(*T)(object), a, b)
}

type fixedStub2[I InstanceOf[*T], M MethodOf2[T, A, B, R], T, A, B, R any] struct{}

func (fixedStub2[I, M, T, A, B, R]) invoke(_ unsafe.Pointer, a A, b B) R {
	var i I
	var m M
	return m.Apply(i.Instance(), a, b)
}

type fixedConstStub2[I InstanceOf[*T], M ConstMethodOf2[T, A, B, R], T, A, B, R any] struct{}

func (fixedConstStub2[I, M, T, A, B, R]) invoke(_ unsafe.Pointer, a A, b B) R {
	var i I
	var m M
	return m.Apply(*i.Instance(), a, b)
}

type fixedFunctorStub2[I InstanceOf[P], P Invoker2[A, B, R], A, B, R any] struct{}

func (fixedFunctorStub2[I, P, A, B, R]) invoke(_ unsafe.Pointer, a A, b B) R {
	var i I
	return i.Instance().Invoke(a, b)
}

// Function2 binds the free function selected by F.
// F's zero value is the selector, as in [Function].
func Function2[F Invoker2[A, B, R], A, B, R any]() Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](nil, functionStub2[F, A, B, R]{})}
}

// Lambda2 binds the closure held in *fn by reference.
func Lambda2[A, B, R any](fn *func(A, B) R) Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](unsafe.Pointer(fn), lambdaStub2[A, B, R]{})}
}

// Functor2 binds a function object whose Invoke method has a pointer receiver.
func Functor2[A, B, R, T any, P interface {
	*T
	Invoker2[A, B, R]
}](obj P) Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](unsafe.Pointer((*T)(obj)), functorStub2[T, P, A, B, R]{})}
}

// ConstFunctor2 binds a function object whose Invoke method has a value receiver.
func ConstFunctor2[T Invoker2[A, B, R], A, B, R any](obj *T) Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](unsafe.Pointer(obj), constFunctorStub2[T, A, B, R]{})}
}

// Method2 binds the method selected by M on the run-time receiver obj.
func Method2[M MethodOf2[T, A, B, R], T, A, B, R any](obj *T) Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](unsafe.Pointer(obj), methodStub2[M, T, A, B, R]{})}
}

// ConstMethod2 binds the value-receiver method selected by M on obj.
func ConstMethod2[M ConstMethodOf2[T, A, B, R], T, A, B, R any](obj *T) Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](unsafe.Pointer(obj), constMethodStub2[M, T, A, B, R]{})}
}

// Fixed2 binds the method selected by M on the receiver selected by I.
func Fixed2[I InstanceOf[*T], M MethodOf2[T, A, B, R], T, A, B, R any]() Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](nil, fixedStub2[I, M, T, A, B, R]{})}
}

// FixedConst2 binds the value-receiver method selected by M on the receiver
// selected by I.
func FixedConst2[I InstanceOf[*T], M ConstMethodOf2[T, A, B, R], T, A, B, R any]() Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](nil, fixedConstStub2[I, M, T, A, B, R]{})}
}

// FixedFunctor2 binds the Invoke method of the function object selected by I.
func FixedFunctor2[I InstanceOf[P], P Invoker2[A, B, R], A, B, R any]() Delegate2[A, B, R] {
	return Delegate2[A, B, R]{inv: bound[stub2[A, B, R]](nil, fixedFunctorStub2[I, P, A, B, R]{})}
}
