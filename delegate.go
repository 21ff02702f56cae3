// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

// Unit is the result type of delegates that produce no value.
type Unit = struct{}

// Delegate is a single-target callable reference with signature func(A) R.
//
// The zero value is unbound. A Delegate is a plain comparable value: copies
// share the same (unowned) receiver and trampoline, and == reports whether
// two delegates dispatch to the same target on the same receiver.
//
// The delegate never owns its receiver. Binding and calling never allocate.
type Delegate[A, R any] struct {
	inv invocation[stub[A, R]]
}

// Action is a delegate whose signature produces no value.
type Action[A any] = Delegate[A, Unit]

func (Delegate[A, R]) isDelegate() {}

// Call invokes the bound target with a.
//
// Calling an unbound delegate is a programmer error reported through the
// failure policy (see [SetPolicy]). When the policy lets control return,
// Call returns the zero R.
func (d Delegate[A, R]) Call(a A) R {
	if checks && !d.inv.valid() {
		return uninitialized[R]()
	}
	return d.inv.stub.invoke(d.inv.object, a)
}

// TryCall invokes the target if the delegate is bound.
// Reports whether the target was invoked; the result is discarded.
func (d Delegate[A, R]) TryCall(a A) bool {
	if !d.inv.valid() {
		return false
	}
	d.inv.stub.invoke(d.inv.object, a)
	return true
}

// CallIf invokes the target if the delegate is bound.
// Returns the result as a present [Optional], or an absent one when unbound.
func (d Delegate[A, R]) CallIf(a A) Optional[R] {
	if !d.inv.valid() {
		return Optional[R]{}
	}
	return Some(d.inv.stub.invoke(d.inv.object, a))
}

// CallOr invokes the target if bound, otherwise alt with the same argument.
// alt is not evaluated when the delegate is bound.
func (d Delegate[A, R]) CallOr(alt func(A) R, a A) R {
	if !d.inv.valid() {
		return alt(a)
	}
	return d.inv.stub.invoke(d.inv.object, a)
}

// CallOrFunction invokes d if bound, otherwise the compile-time selected
// function F with the same argument. F's zero value is used as the selector,
// as in [Function].
func CallOrFunction[F Invoker[A, R], A, R any](d Delegate[A, R], a A) R {
	if !d.inv.valid() {
		var f F
		return f.Invoke(a)
	}
	return d.inv.stub.invoke(d.inv.object, a)
}

// IsValid reports whether the delegate is bound.
func (d Delegate[A, R]) IsValid() bool {
	return d.inv.valid()
}

// Equal reports whether d and o dispatch to the same target on the same
// receiver. Equivalent to d == o.
func (d Delegate[A, R]) Equal(o Delegate[A, R]) bool {
	return d.inv.equal(o.inv)
}

// Clear unbinds the delegate. Clearing an unbound delegate is a no-op.
func (d *Delegate[A, R]) Clear() {
	d.inv.clear()
}

// IsDelegate reports whether v is a [Delegate] or [Delegate2] of any signature.
func IsDelegate(v any) bool {
	_, ok := v.(interface{ isDelegate() })
	return ok
}
