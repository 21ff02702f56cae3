// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

// Delegate2 is a single-target callable reference with signature func(A, B) R.
// It has the same value semantics as [Delegate].
type Delegate2[A, B, R any] struct {
	inv invocation[stub2[A, B, R]]
}

// Action2 is a two-argument delegate whose signature produces no value.
type Action2[A, B any] = Delegate2[A, B, Unit]

func (Delegate2[A, B, R]) isDelegate() {}

// Call invokes the bound target with a and b.
// An unbound delegate is reported as in [Delegate.Call].
func (d Delegate2[A, B, R]) Call(a A, b B) R {
	if checks && !d.inv.valid() {
		return uninitialized[R]()
	}
	return d.inv.stub.invoke(d.inv.object, a, b)
}

// TryCall invokes the target if bound and reports whether it did.
func (d Delegate2[A, B, R]) TryCall(a A, b B) bool {
	if !d.inv.valid() {
		return false
	}
	d.inv.stub.invoke(d.inv.object, a, b)
	return true
}

// CallIf invokes the target if bound, returning an absent [Optional] otherwise.
func (d Delegate2[A, B, R]) CallIf(a A, b B) Optional[R] {
	if !d.inv.valid() {
		return Optional[R]{}
	}
	return Some(d.inv.stub.invoke(d.inv.object, a, b))
}

// CallOr invokes the target if bound, otherwise alt.
func (d Delegate2[A, B, R]) CallOr(alt func(A, B) R, a A, b B) R {
	if !d.inv.valid() {
		return alt(a, b)
	}
	return d.inv.stub.invoke(d.inv.object, a, b)
}

// CallOrFunction2 invokes d if bound, otherwise the compile-time selected
// function F. F's zero value is used as the selector, as in [Function].
func CallOrFunction2[F Invoker2[A, B, R], A, B, R any](d Delegate2[A, B, R], a A, b B) R {
	if !d.inv.valid() {
		var f F
		return f.Invoke(a, b)
	}
	return d.inv.stub.invoke(d.inv.object, a, b)
}

// IsValid reports whether the delegate is bound.
func (d Delegate2[A, B, R]) IsValid() bool {
	return d.inv.valid()
}

// Equal reports whether d and o are bound identically. Equivalent to d == o.
func (d Delegate2[A, B, R]) Equal(o Delegate2[A, B, R]) bool {
	return d.inv.equal(o.inv)
}

// Clear unbinds the delegate.
func (d *Delegate2[A, B, R]) Clear() {
	d.inv.clear()
}
